package services

import (
	"context"

	"rental-system/internal/dto"
	"rental-system/internal/entities"
	"rental-system/internal/repositories"
	"rental-system/pkg/utils"

	"go.uber.org/zap"
)

type OrderLineServiceInterface interface {
	GetOrderServices(ctx context.Context, limit, offset uint64) ([]dto.OrderServiceDTO, uint64, error)
	FindOrderService(ctx context.Context, id uint64) (*dto.OrderServiceDTO, error)
	CreateOrderService(ctx context.Context, payload dto.CreateOrderServiceDTO) (*dto.OrderServiceDTO, error)
}

type OrderLineService struct {
	repo   repositories.OrderServiceRepositoryInterface
	logger *zap.Logger
}

func NewOrderLineService(repo repositories.OrderServiceRepositoryInterface, logger *zap.Logger) OrderLineServiceInterface {
	return &OrderLineService{repo: repo, logger: logger}
}

func (s *OrderLineService) GetOrderServices(ctx context.Context, limit, offset uint64) ([]dto.OrderServiceDTO, uint64, error) {
	items, total, err := s.repo.GetOrderServices(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]dto.OrderServiceDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, *orderServiceEntityToDTO(&item))
	}
	return dtos, total, nil
}

func (s *OrderLineService) FindOrderService(ctx context.Context, id uint64) (*dto.OrderServiceDTO, error) {
	entity, err := s.repo.FindOrderService(ctx, id)
	if err != nil {
		return nil, err
	}
	return orderServiceEntityToDTO(entity), nil
}

func (s *OrderLineService) CreateOrderService(ctx context.Context, payload dto.CreateOrderServiceDTO) (*dto.OrderServiceDTO, error) {
	quantity := 1
	if payload.Quantity.Valid {
		quantity = int(payload.Quantity.Int)
	}

	var rentalHours *int
	if payload.RentalHours.Valid {
		h := int(payload.RentalHours.Int)
		rentalHours = &h
	}

	entity := entities.OrderService{
		OrderID:     payload.OrderID,
		ServiceID:   payload.ServiceID,
		EquipmentID: utils.NullIntToUint64Ptr(payload.EquipmentID),
		Quantity:    quantity,
		UnitPrice:   *payload.UnitPrice,
		TotalPrice:  *payload.TotalPrice,
		RentalHours: rentalHours,
		Notes:       utils.NullStringToStrPtr(payload.Notes),
	}

	created, err := s.repo.CreateOrderService(ctx, entity)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Позиция заказа создана",
		zap.Uint64("order_service_id", created.ID), zap.Uint64("order_id", created.OrderID))
	return orderServiceEntityToDTO(created), nil
}

func orderServiceEntityToDTO(entity *entities.OrderService) *dto.OrderServiceDTO {
	d := &dto.OrderServiceDTO{
		ID:          entity.ID,
		OrderID:     entity.OrderID,
		ServiceID:   entity.ServiceID,
		EquipmentID: entity.EquipmentID,
		Quantity:    entity.Quantity,
		UnitPrice:   entity.UnitPrice,
		TotalPrice:  entity.TotalPrice,
		RentalHours: entity.RentalHours,
	}
	if entity.Notes != nil {
		d.Notes = *entity.Notes
	}
	return d
}
