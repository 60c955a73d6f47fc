package services

import (
	"context"
	"net/http"

	"rental-system/internal/dto"
	"rental-system/internal/entities"
	"rental-system/internal/repositories"
	apperrors "rental-system/pkg/errors"
	"rental-system/pkg/utils"

	"go.uber.org/zap"
)

type OrderServiceInterface interface {
	GetOrders(ctx context.Context, limit, offset uint64) ([]dto.OrderDTO, uint64, error)
	FindOrder(ctx context.Context, id uint64) (*dto.OrderDTO, error)
	CreateOrder(ctx context.Context, payload dto.CreateOrderDTO) (*dto.OrderDTO, error)
}

type OrderService struct {
	repo   repositories.OrderRepositoryInterface
	logger *zap.Logger
}

func NewOrderService(repo repositories.OrderRepositoryInterface, logger *zap.Logger) OrderServiceInterface {
	return &OrderService{repo: repo, logger: logger}
}

func (s *OrderService) GetOrders(ctx context.Context, limit, offset uint64) ([]dto.OrderDTO, uint64, error) {
	orders, total, err := s.repo.GetOrders(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]dto.OrderDTO, 0, len(orders))
	for _, order := range orders {
		dtos = append(dtos, *orderEntityToDTO(&order))
	}
	return dtos, total, nil
}

func (s *OrderService) FindOrder(ctx context.Context, id uint64) (*dto.OrderDTO, error) {
	entity, err := s.repo.FindOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	return orderEntityToDTO(entity), nil
}

func (s *OrderService) CreateOrder(ctx context.Context, payload dto.CreateOrderDTO) (*dto.OrderDTO, error) {
	// Интервал аренды должен быть неотрицательным.
	if payload.StartDate.After(payload.EndDate) {
		return nil, apperrors.NewHttpError(http.StatusBadRequest,
			"дата начала аренды позже даты окончания", apperrors.ErrBadRequest,
			map[string]interface{}{"start_date": payload.StartDate, "end_date": payload.EndDate})
	}

	status := entities.OrderStatusActive
	if payload.Status.Valid {
		status = entities.OrderStatus(payload.Status.String)
	}

	entity := entities.Order{
		OrderNumber:   payload.OrderNumber,
		ClientID:      payload.ClientID,
		UserID:        payload.UserID,
		StartDate:     payload.StartDate,
		EndDate:       payload.EndDate,
		TotalAmount:   utils.NullFloatOrZero(payload.TotalAmount),
		DepositAmount: utils.NullFloatToFloat64Ptr(payload.DepositAmount),
		Status:        status,
		Barcode:       utils.NullStringToStrPtr(payload.Barcode),
		Notes:         utils.NullStringToStrPtr(payload.Notes),
	}

	created, err := s.repo.CreateOrder(ctx, entity)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Заказ создан", zap.Uint64("order_id", created.ID), zap.String("order_number", created.OrderNumber))
	return orderEntityToDTO(created), nil
}

func orderEntityToDTO(entity *entities.Order) *dto.OrderDTO {
	d := &dto.OrderDTO{
		ID:            entity.ID,
		OrderNumber:   entity.OrderNumber,
		ClientID:      entity.ClientID,
		UserID:        entity.UserID,
		OrderDate:     utils.TimeToString(entity.OrderDate),
		StartDate:     entity.StartDate,
		EndDate:       entity.EndDate,
		TotalAmount:   entity.TotalAmount,
		DepositAmount: entity.DepositAmount,
		Status:        string(entity.Status),
		CreatedAt:     utils.TimeToString(entity.CreatedAt),
	}
	if entity.Barcode != nil {
		d.Barcode = *entity.Barcode
	}
	if entity.Notes != nil {
		d.Notes = *entity.Notes
	}
	return d
}
