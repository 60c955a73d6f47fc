package services

import (
	"context"

	"rental-system/internal/dto"
	"rental-system/internal/entities"
	"rental-system/internal/repositories"
	"rental-system/pkg/utils"

	"go.uber.org/zap"
)

type RoleServiceInterface interface {
	GetRoles(ctx context.Context, limit, offset uint64) ([]dto.RoleDTO, uint64, error)
	FindRole(ctx context.Context, id uint64) (*dto.RoleDTO, error)
	CreateRole(ctx context.Context, payload dto.CreateRoleDTO) (*dto.RoleDTO, error)
}

type RoleService struct {
	repo   repositories.RoleRepositoryInterface
	logger *zap.Logger
}

func NewRoleService(repo repositories.RoleRepositoryInterface, logger *zap.Logger) RoleServiceInterface {
	return &RoleService{repo: repo, logger: logger}
}

func (s *RoleService) GetRoles(ctx context.Context, limit, offset uint64) ([]dto.RoleDTO, uint64, error) {
	roles, total, err := s.repo.GetRoles(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]dto.RoleDTO, 0, len(roles))
	for _, role := range roles {
		dtos = append(dtos, *roleEntityToDTO(&role))
	}
	return dtos, total, nil
}

func (s *RoleService) FindRole(ctx context.Context, id uint64) (*dto.RoleDTO, error) {
	entity, err := s.repo.FindRole(ctx, id)
	if err != nil {
		return nil, err
	}
	return roleEntityToDTO(entity), nil
}

func (s *RoleService) CreateRole(ctx context.Context, payload dto.CreateRoleDTO) (*dto.RoleDTO, error) {
	entity := entities.Role{
		Name:        payload.Name,
		Description: utils.NullStringToStrPtr(payload.Description),
		Permissions: payload.Permissions,
	}

	created, err := s.repo.CreateRole(ctx, entity)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Роль создана", zap.Uint64("role_id", created.ID), zap.String("role_name", created.Name))
	return roleEntityToDTO(created), nil
}

func roleEntityToDTO(entity *entities.Role) *dto.RoleDTO {
	d := &dto.RoleDTO{
		ID:          entity.ID,
		Name:        entity.Name,
		Permissions: entity.Permissions,
	}
	if entity.Description != nil {
		d.Description = *entity.Description
	}
	return d
}
