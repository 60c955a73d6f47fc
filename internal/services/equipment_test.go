package services

import (
	"context"
	"testing"

	"rental-system/internal/dto"
	"rental-system/internal/entities"
	apperrors "rental-system/pkg/errors"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeEquipmentRepository struct {
	items      []entities.Equipment
	categories map[uint64]bool
	nextID     uint64
}

func newFakeEquipmentRepository(categoryIDs ...uint64) *fakeEquipmentRepository {
	categories := make(map[uint64]bool, len(categoryIDs))
	for _, id := range categoryIDs {
		categories[id] = true
	}
	return &fakeEquipmentRepository{categories: categories, nextID: 1}
}

func (r *fakeEquipmentRepository) GetEquipment(_ context.Context, limit, offset uint64) ([]entities.Equipment, uint64, error) {
	total := uint64(len(r.items))
	if offset >= total {
		return []entities.Equipment{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return r.items[offset:end], total, nil
}

func (r *fakeEquipmentRepository) FindEquipment(_ context.Context, id uint64) (*entities.Equipment, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			return &r.items[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeEquipmentRepository) CreateEquipment(_ context.Context, item entities.Equipment) (*entities.Equipment, error) {
	if !r.categories[item.CategoryID] {
		return nil, apperrors.ErrForeignKeyViolation
	}
	item.ID = r.nextID
	r.nextID++
	r.items = append(r.items, item)
	return &item, nil
}

func TestEquipmentServiceCreateDefaults(t *testing.T) {
	svc := NewEquipmentService(newFakeEquipmentRepository(1), zap.NewNop())

	created, err := svc.CreateEquipment(context.Background(), dto.CreateEquipmentDTO{CategoryID: 1})
	require.NoError(t, err)
	assert.Equal(t, "excellent", created.ConditionStatus)
	assert.True(t, created.IsAvailable)
}

func TestEquipmentServiceCreateExplicitCondition(t *testing.T) {
	svc := NewEquipmentService(newFakeEquipmentRepository(1), zap.NewNop())

	payload := dto.CreateEquipmentDTO{
		CategoryID:      1,
		Brand:           null.StringFrom("Atomic"),
		Model:           null.StringFrom("Redster X9"),
		Size:            null.StringFrom("170"),
		ConditionStatus: null.StringFrom("needs_repair"),
		IsAvailable:     null.BoolFrom(false),
	}

	created, err := svc.CreateEquipment(context.Background(), payload)
	require.NoError(t, err)
	assert.Equal(t, "needs_repair", created.ConditionStatus)
	assert.False(t, created.IsAvailable)
	assert.Equal(t, "Atomic", created.Brand)
}

func TestEquipmentServiceCreateUnknownCategory(t *testing.T) {
	svc := NewEquipmentService(newFakeEquipmentRepository(1), zap.NewNop())

	_, err := svc.CreateEquipment(context.Background(), dto.CreateEquipmentDTO{CategoryID: 42})
	assert.ErrorIs(t, err, apperrors.ErrForeignKeyViolation)
}
