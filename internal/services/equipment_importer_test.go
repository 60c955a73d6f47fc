package services

import (
	"bytes"
	"context"
	"testing"

	"rental-system/internal/entities"
	apperrors "rental-system/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type fakeCategoryRepository struct {
	byName map[string]entities.EquipmentCategory
}

func (r *fakeCategoryRepository) GetCategories(_ context.Context, _, _ uint64) ([]entities.EquipmentCategory, uint64, error) {
	return nil, 0, nil
}

func (r *fakeCategoryRepository) FindCategory(_ context.Context, id uint64) (*entities.EquipmentCategory, error) {
	for _, c := range r.byName {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeCategoryRepository) FindCategoryByName(_ context.Context, name string) (*entities.EquipmentCategory, error) {
	if c, ok := r.byName[name]; ok {
		return &c, nil
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeCategoryRepository) CreateCategory(_ context.Context, category entities.EquipmentCategory) (*entities.EquipmentCategory, error) {
	return &category, nil
}

func buildImportFile(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestEquipmentImportFromExcel(t *testing.T) {
	equipmentRepo := newFakeEquipmentRepository(1)
	categoryRepo := &fakeCategoryRepository{byName: map[string]entities.EquipmentCategory{
		"Горные лыжи": {ID: 1, Name: "Горные лыжи"},
	}}
	svc := NewEquipmentImportService(equipmentRepo, categoryRepo, zap.NewNop())

	buf := buildImportFile(t, [][]interface{}{
		{"Категория", "Бренд", "Модель", "Размер", "Штрихкод"},
		{"Горные лыжи", "Atomic", "Redster X9", "170", "SKI-001"},
		{"Горные лыжи", "Head", "Supershape", "165", "SKI-002"},
		{"", "", "", "", ""},
		{"Сноуборды", "Burton", "Custom", "158", "SNB-001"},
	})

	result, err := svc.ImportFromExcel(context.Background(), buf)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 1, result.Skipped)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0].Message, "Сноуборды")

	items, total, err := equipmentRepo.GetEquipment(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), total)
	assert.Equal(t, entities.EquipmentConditionExcellent, items[0].ConditionStatus)
	assert.True(t, items[0].IsAvailable)
}

func TestEquipmentImportFromExcelNotAnXlsx(t *testing.T) {
	svc := NewEquipmentImportService(newFakeEquipmentRepository(), &fakeCategoryRepository{}, zap.NewNop())

	_, err := svc.ImportFromExcel(context.Background(), bytes.NewBufferString("это не xlsx"))
	assert.Error(t, err)
}
