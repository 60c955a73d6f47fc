package services

import (
	"context"

	"rental-system/internal/dto"
	"rental-system/internal/entities"
	"rental-system/internal/repositories"
	"rental-system/pkg/utils"

	"go.uber.org/zap"
)

type ConsumableServiceInterface interface {
	GetConsumables(ctx context.Context, limit, offset uint64) ([]dto.ConsumableDTO, uint64, error)
	FindConsumable(ctx context.Context, id uint64) (*dto.ConsumableDTO, error)
	CreateConsumable(ctx context.Context, payload dto.CreateConsumableDTO) (*dto.ConsumableDTO, error)
}

type ConsumableService struct {
	repo   repositories.ConsumableRepositoryInterface
	logger *zap.Logger
}

func NewConsumableService(repo repositories.ConsumableRepositoryInterface, logger *zap.Logger) ConsumableServiceInterface {
	return &ConsumableService{repo: repo, logger: logger}
}

func (s *ConsumableService) GetConsumables(ctx context.Context, limit, offset uint64) ([]dto.ConsumableDTO, uint64, error) {
	items, total, err := s.repo.GetConsumables(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]dto.ConsumableDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, *consumableEntityToDTO(&item))
	}
	return dtos, total, nil
}

func (s *ConsumableService) FindConsumable(ctx context.Context, id uint64) (*dto.ConsumableDTO, error) {
	entity, err := s.repo.FindConsumable(ctx, id)
	if err != nil {
		return nil, err
	}
	return consumableEntityToDTO(entity), nil
}

func (s *ConsumableService) CreateConsumable(ctx context.Context, payload dto.CreateConsumableDTO) (*dto.ConsumableDTO, error) {
	entity := entities.Consumable{
		ItemName:      payload.ItemName,
		ItemDesc:      utils.NullStringToStrPtr(payload.ItemDesc),
		UnitOfMeasure: utils.NullStringToStrPtr(payload.UnitOfMeasure),
		CurrentStock:  utils.NullFloatOrZero(payload.CurrentStock),
		MinimumStock:  utils.NullFloatOrZero(payload.MinimumStock),
		UnitCost:      utils.NullFloatToFloat64Ptr(payload.UnitCost),
		Supplier:      utils.NullStringToStrPtr(payload.Supplier),
		IsActive:      utils.NullBoolOrDefault(payload.IsActive, true),
	}

	created, err := s.repo.CreateConsumable(ctx, entity)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Расходник создан", zap.Uint64("consumable_id", created.ID), zap.String("item_name", created.ItemName))
	return consumableEntityToDTO(created), nil
}

func consumableEntityToDTO(entity *entities.Consumable) *dto.ConsumableDTO {
	d := &dto.ConsumableDTO{
		ID:           entity.ID,
		ItemName:     entity.ItemName,
		CurrentStock: entity.CurrentStock,
		MinimumStock: entity.MinimumStock,
		UnitCost:     entity.UnitCost,
		LastUpdated:  utils.TimeToString(entity.LastUpdated),
		IsActive:     entity.IsActive,
	}
	if entity.ItemDesc != nil {
		d.ItemDesc = *entity.ItemDesc
	}
	if entity.UnitOfMeasure != nil {
		d.UnitOfMeasure = *entity.UnitOfMeasure
	}
	if entity.Supplier != nil {
		d.Supplier = *entity.Supplier
	}
	return d
}
