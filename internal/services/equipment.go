package services

import (
	"context"

	"rental-system/internal/dto"
	"rental-system/internal/entities"
	"rental-system/internal/repositories"
	"rental-system/pkg/utils"

	"go.uber.org/zap"
)

type EquipmentServiceInterface interface {
	GetEquipment(ctx context.Context, limit, offset uint64) ([]dto.EquipmentDTO, uint64, error)
	FindEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error)
}

type EquipmentService struct {
	repo   repositories.EquipmentRepositoryInterface
	logger *zap.Logger
}

func NewEquipmentService(repo repositories.EquipmentRepositoryInterface, logger *zap.Logger) EquipmentServiceInterface {
	return &EquipmentService{repo: repo, logger: logger}
}

func (s *EquipmentService) GetEquipment(ctx context.Context, limit, offset uint64) ([]dto.EquipmentDTO, uint64, error) {
	items, total, err := s.repo.GetEquipment(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]dto.EquipmentDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, *equipmentEntityToDTO(&item))
	}
	return dtos, total, nil
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error) {
	entity, err := s.repo.FindEquipment(ctx, id)
	if err != nil {
		return nil, err
	}
	return equipmentEntityToDTO(entity), nil
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error) {
	condition := entities.EquipmentConditionExcellent
	if payload.ConditionStatus.Valid {
		condition = entities.EquipmentCondition(payload.ConditionStatus.String)
	}

	entity := entities.Equipment{
		CategoryID:          payload.CategoryID,
		Brand:               utils.NullStringToStrPtr(payload.Brand),
		Model:               utils.NullStringToStrPtr(payload.Model),
		Size:                utils.NullStringToStrPtr(payload.Size),
		ConditionStatus:     condition,
		PurchaseDate:        utils.NullDateToTimePtr(payload.PurchaseDate),
		LastMaintenanceDate: utils.NullDateToTimePtr(payload.LastMaintenanceDate),
		IsAvailable:         utils.NullBoolOrDefault(payload.IsAvailable, true),
		Barcode:             utils.NullStringToStrPtr(payload.Barcode),
		Notes:               utils.NullStringToStrPtr(payload.Notes),
	}

	created, err := s.repo.CreateEquipment(ctx, entity)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Снаряжение создано", zap.Uint64("equipment_id", created.ID))
	return equipmentEntityToDTO(created), nil
}

func equipmentEntityToDTO(entity *entities.Equipment) *dto.EquipmentDTO {
	d := &dto.EquipmentDTO{
		ID:                  entity.ID,
		CategoryID:          entity.CategoryID,
		ConditionStatus:     string(entity.ConditionStatus),
		PurchaseDate:        utils.DateToString(entity.PurchaseDate),
		LastMaintenanceDate: utils.DateToString(entity.LastMaintenanceDate),
		IsAvailable:         entity.IsAvailable,
	}
	if entity.Brand != nil {
		d.Brand = *entity.Brand
	}
	if entity.Model != nil {
		d.Model = *entity.Model
	}
	if entity.Size != nil {
		d.Size = *entity.Size
	}
	if entity.Barcode != nil {
		d.Barcode = *entity.Barcode
	}
	if entity.Notes != nil {
		d.Notes = *entity.Notes
	}
	return d
}
