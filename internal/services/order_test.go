package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"rental-system/internal/dto"
	"rental-system/internal/entities"
	apperrors "rental-system/pkg/errors"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeOrderRepository struct {
	orders []entities.Order
	nextID uint64
}

func newFakeOrderRepository() *fakeOrderRepository {
	return &fakeOrderRepository{nextID: 1}
}

func (r *fakeOrderRepository) GetOrders(_ context.Context, limit, offset uint64) ([]entities.Order, uint64, error) {
	total := uint64(len(r.orders))
	if offset >= total {
		return []entities.Order{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return r.orders[offset:end], total, nil
}

func (r *fakeOrderRepository) FindOrder(_ context.Context, id uint64) (*entities.Order, error) {
	for i := range r.orders {
		if r.orders[i].ID == id {
			return &r.orders[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeOrderRepository) CreateOrder(_ context.Context, order entities.Order) (*entities.Order, error) {
	for i := range r.orders {
		if r.orders[i].OrderNumber == order.OrderNumber {
			return nil, apperrors.ErrConflict
		}
	}
	order.ID = r.nextID
	r.nextID++
	now := time.Now()
	order.OrderDate = &now
	r.orders = append(r.orders, order)
	return &order, nil
}

func validOrderPayload() dto.CreateOrderDTO {
	return dto.CreateOrderDTO{
		OrderNumber: "ORD-0001",
		ClientID:    1,
		UserID:      1,
		StartDate:   time.Date(2026, 1, 10, 10, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 1, 10, 18, 0, 0, 0, time.UTC),
	}
}

func TestOrderServiceCreateOrderDefaults(t *testing.T) {
	svc := NewOrderService(newFakeOrderRepository(), zap.NewNop())

	created, err := svc.CreateOrder(context.Background(), validOrderPayload())
	require.NoError(t, err)
	assert.Equal(t, "active", created.Status)
	assert.Equal(t, float64(0), created.TotalAmount)
	assert.Nil(t, created.DepositAmount)
}

func TestOrderServiceCreateOrderExplicitStatus(t *testing.T) {
	svc := NewOrderService(newFakeOrderRepository(), zap.NewNop())

	payload := validOrderPayload()
	payload.Status = null.StringFrom("completed")
	payload.TotalAmount = null.Float64From(1500)

	created, err := svc.CreateOrder(context.Background(), payload)
	require.NoError(t, err)
	assert.Equal(t, "completed", created.Status)
	assert.Equal(t, float64(1500), created.TotalAmount)
}

func TestOrderServiceCreateOrderInvertedDates(t *testing.T) {
	svc := NewOrderService(newFakeOrderRepository(), zap.NewNop())

	payload := validOrderPayload()
	payload.StartDate = time.Date(2026, 1, 11, 0, 0, 0, 0, time.UTC)
	payload.EndDate = time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)

	_, err := svc.CreateOrder(context.Background(), payload)
	require.Error(t, err)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestOrderServiceCreateOrderEqualDates(t *testing.T) {
	svc := NewOrderService(newFakeOrderRepository(), zap.NewNop())

	payload := validOrderPayload()
	payload.EndDate = payload.StartDate

	_, err := svc.CreateOrder(context.Background(), payload)
	assert.NoError(t, err, "совпадающие даты начала и окончания допустимы")
}

func TestOrderServiceCreateOrderDuplicateNumber(t *testing.T) {
	svc := NewOrderService(newFakeOrderRepository(), zap.NewNop())

	_, err := svc.CreateOrder(context.Background(), validOrderPayload())
	require.NoError(t, err)

	_, err = svc.CreateOrder(context.Background(), validOrderPayload())
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}
