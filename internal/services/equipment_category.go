package services

import (
	"context"

	"rental-system/internal/dto"
	"rental-system/internal/entities"
	"rental-system/internal/repositories"
	"rental-system/pkg/utils"

	"go.uber.org/zap"
)

type EquipmentCategoryServiceInterface interface {
	GetCategories(ctx context.Context, limit, offset uint64) ([]dto.EquipmentCategoryDTO, uint64, error)
	FindCategory(ctx context.Context, id uint64) (*dto.EquipmentCategoryDTO, error)
	CreateCategory(ctx context.Context, payload dto.CreateEquipmentCategoryDTO) (*dto.EquipmentCategoryDTO, error)
}

type EquipmentCategoryService struct {
	repo   repositories.EquipmentCategoryRepositoryInterface
	logger *zap.Logger
}

func NewEquipmentCategoryService(repo repositories.EquipmentCategoryRepositoryInterface, logger *zap.Logger) EquipmentCategoryServiceInterface {
	return &EquipmentCategoryService{repo: repo, logger: logger}
}

func (s *EquipmentCategoryService) GetCategories(ctx context.Context, limit, offset uint64) ([]dto.EquipmentCategoryDTO, uint64, error) {
	categories, total, err := s.repo.GetCategories(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]dto.EquipmentCategoryDTO, 0, len(categories))
	for _, category := range categories {
		dtos = append(dtos, *categoryEntityToDTO(&category))
	}
	return dtos, total, nil
}

func (s *EquipmentCategoryService) FindCategory(ctx context.Context, id uint64) (*dto.EquipmentCategoryDTO, error) {
	entity, err := s.repo.FindCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	return categoryEntityToDTO(entity), nil
}

func (s *EquipmentCategoryService) CreateCategory(ctx context.Context, payload dto.CreateEquipmentCategoryDTO) (*dto.EquipmentCategoryDTO, error) {
	entity := entities.EquipmentCategory{
		Name:        payload.Name,
		Description: utils.NullStringToStrPtr(payload.Description),
		IsActive:    utils.NullBoolOrDefault(payload.IsActive, true),
	}

	created, err := s.repo.CreateCategory(ctx, entity)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Категория создана", zap.Uint64("category_id", created.ID))
	return categoryEntityToDTO(created), nil
}

func categoryEntityToDTO(entity *entities.EquipmentCategory) *dto.EquipmentCategoryDTO {
	d := &dto.EquipmentCategoryDTO{
		ID:       entity.ID,
		Name:     entity.Name,
		IsActive: entity.IsActive,
	}
	if entity.Description != nil {
		d.Description = *entity.Description
	}
	return d
}
