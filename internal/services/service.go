package services

import (
	"context"

	"rental-system/internal/dto"
	"rental-system/internal/entities"
	"rental-system/internal/repositories"
	"rental-system/pkg/utils"

	"go.uber.org/zap"
)

type ServiceServiceInterface interface {
	GetServices(ctx context.Context, limit, offset uint64) ([]dto.ServiceDTO, uint64, error)
	FindService(ctx context.Context, id uint64) (*dto.ServiceDTO, error)
	CreateService(ctx context.Context, payload dto.CreateServiceDTO) (*dto.ServiceDTO, error)
}

type ServiceService struct {
	repo   repositories.ServiceRepositoryInterface
	logger *zap.Logger
}

func NewServiceService(repo repositories.ServiceRepositoryInterface, logger *zap.Logger) ServiceServiceInterface {
	return &ServiceService{repo: repo, logger: logger}
}

func (s *ServiceService) GetServices(ctx context.Context, limit, offset uint64) ([]dto.ServiceDTO, uint64, error) {
	services, total, err := s.repo.GetServices(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]dto.ServiceDTO, 0, len(services))
	for _, svc := range services {
		dtos = append(dtos, *serviceEntityToDTO(&svc))
	}
	return dtos, total, nil
}

func (s *ServiceService) FindService(ctx context.Context, id uint64) (*dto.ServiceDTO, error) {
	entity, err := s.repo.FindService(ctx, id)
	if err != nil {
		return nil, err
	}
	return serviceEntityToDTO(entity), nil
}

func (s *ServiceService) CreateService(ctx context.Context, payload dto.CreateServiceDTO) (*dto.ServiceDTO, error) {
	entity := entities.Service{
		Name:          payload.Name,
		Description:   utils.NullStringToStrPtr(payload.Description),
		CategoryID:    utils.NullIntToUint64Ptr(payload.CategoryID),
		HourlyRate:    *payload.HourlyRate,
		DailyRate:     utils.NullFloatToFloat64Ptr(payload.DailyRate),
		DepositAmount: utils.NullFloatToFloat64Ptr(payload.DepositAmount),
		IsActive:      utils.NullBoolOrDefault(payload.IsActive, true),
	}

	created, err := s.repo.CreateService(ctx, entity)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Услуга создана", zap.Uint64("service_id", created.ID), zap.String("service_name", created.Name))
	return serviceEntityToDTO(created), nil
}

func serviceEntityToDTO(entity *entities.Service) *dto.ServiceDTO {
	d := &dto.ServiceDTO{
		ID:            entity.ID,
		Name:          entity.Name,
		CategoryID:    entity.CategoryID,
		HourlyRate:    entity.HourlyRate,
		DailyRate:     entity.DailyRate,
		DepositAmount: entity.DepositAmount,
		IsActive:      entity.IsActive,
		CreatedAt:     utils.TimeToString(entity.CreatedAt),
		UpdatedAt:     utils.TimeToString(entity.UpdatedAt),
	}
	if entity.Description != nil {
		d.Description = *entity.Description
	}
	return d
}
