package services

import (
	"context"

	"rental-system/internal/dto"
	"rental-system/internal/entities"
	"rental-system/internal/repositories"
	"rental-system/pkg/utils"

	"go.uber.org/zap"
)

type EquipmentReturnServiceInterface interface {
	GetReturns(ctx context.Context, limit, offset uint64) ([]dto.EquipmentReturnDTO, uint64, error)
	FindReturn(ctx context.Context, id uint64) (*dto.EquipmentReturnDTO, error)
	CreateReturn(ctx context.Context, payload dto.CreateEquipmentReturnDTO) (*dto.EquipmentReturnDTO, error)
}

type EquipmentReturnService struct {
	repo   repositories.EquipmentReturnRepositoryInterface
	logger *zap.Logger
}

func NewEquipmentReturnService(repo repositories.EquipmentReturnRepositoryInterface, logger *zap.Logger) EquipmentReturnServiceInterface {
	return &EquipmentReturnService{repo: repo, logger: logger}
}

func (s *EquipmentReturnService) GetReturns(ctx context.Context, limit, offset uint64) ([]dto.EquipmentReturnDTO, uint64, error) {
	returns, total, err := s.repo.GetReturns(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]dto.EquipmentReturnDTO, 0, len(returns))
	for _, ret := range returns {
		dtos = append(dtos, *returnEntityToDTO(&ret))
	}
	return dtos, total, nil
}

func (s *EquipmentReturnService) FindReturn(ctx context.Context, id uint64) (*dto.EquipmentReturnDTO, error) {
	entity, err := s.repo.FindReturn(ctx, id)
	if err != nil {
		return nil, err
	}
	return returnEntityToDTO(entity), nil
}

func (s *EquipmentReturnService) CreateReturn(ctx context.Context, payload dto.CreateEquipmentReturnDTO) (*dto.EquipmentReturnDTO, error) {
	condition := entities.ReturnConditionGood
	if payload.ConditionOnReturn.Valid {
		condition = entities.ReturnCondition(payload.ConditionOnReturn.String)
	}

	entity := entities.EquipmentReturn{
		OrderID:           payload.OrderID,
		EquipmentID:       payload.EquipmentID,
		ReturnedByUserID:  payload.ReturnedByUserID,
		ConditionOnReturn: condition,
		DamageDescription: utils.NullStringToStrPtr(payload.DamageDescription),
		AdditionalCharges: utils.NullFloatOrZero(payload.AdditionalCharges),
		Notes:             utils.NullStringToStrPtr(payload.Notes),
	}

	created, err := s.repo.CreateReturn(ctx, entity)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Возврат снаряжения оформлен",
		zap.Uint64("return_id", created.ID), zap.Uint64("order_id", created.OrderID))
	return returnEntityToDTO(created), nil
}

func returnEntityToDTO(entity *entities.EquipmentReturn) *dto.EquipmentReturnDTO {
	d := &dto.EquipmentReturnDTO{
		ID:                entity.ID,
		OrderID:           entity.OrderID,
		EquipmentID:       entity.EquipmentID,
		ReturnedByUserID:  entity.ReturnedByUserID,
		ReturnDate:        utils.TimeToString(entity.ReturnDate),
		ConditionOnReturn: string(entity.ConditionOnReturn),
		AdditionalCharges: entity.AdditionalCharges,
	}
	if entity.DamageDescription != nil {
		d.DamageDescription = *entity.DamageDescription
	}
	if entity.Notes != nil {
		d.Notes = *entity.Notes
	}
	return d
}
