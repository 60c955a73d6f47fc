package dto

import (
	"encoding/json"
	"testing"
	"time"

	"rental-system/pkg/utils"

	"github.com/aarondl/null/v8"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEquipmentDTODateOnlyBinding(t *testing.T) {
	var payload CreateEquipmentDTO
	body := `{"category_id":1,"purchase_date":"2024-05-01","last_maintenance_date":"2025-11-15T09:00:00Z"}`

	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	require.True(t, payload.PurchaseDate.Valid)
	assert.True(t, payload.PurchaseDate.Time.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)))
	require.True(t, payload.LastMaintenanceDate.Valid)
	assert.True(t, payload.LastMaintenanceDate.Time.Equal(time.Date(2025, 11, 15, 9, 0, 0, 0, time.UTC)))
}

func TestCreateClientDTODateOnlyBinding(t *testing.T) {
	var payload CreateClientDTO
	body := `{"client_code":"CL-001","first_name":"Иван","last_name":"Иванов","birth_date":"1990-05-01"}`

	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	require.True(t, payload.BirthDate.Valid)
	assert.True(t, payload.BirthDate.Time.Equal(time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC)))
}

func TestNullableReferenceIDsValidation(t *testing.T) {
	cv := utils.NewValidator(validator.New())
	hourlyRate := 100.0
	unitPrice := 50.0

	t.Run("отрицательный category_id отклоняется", func(t *testing.T) {
		err := cv.Validate(&CreateServiceDTO{
			Name:       "Прокат лыж",
			HourlyRate: &hourlyRate,
			CategoryID: null.IntFrom(-1),
		})
		assert.Error(t, err)
	})

	t.Run("незаполненный category_id проходит", func(t *testing.T) {
		err := cv.Validate(&CreateServiceDTO{
			Name:       "Прокат лыж",
			HourlyRate: &hourlyRate,
		})
		assert.NoError(t, err)
	})

	t.Run("отрицательный equipment_id отклоняется", func(t *testing.T) {
		err := cv.Validate(&CreateOrderServiceDTO{
			OrderID:     1,
			ServiceID:   1,
			UnitPrice:   &unitPrice,
			TotalPrice:  &unitPrice,
			EquipmentID: null.IntFrom(-7),
		})
		assert.Error(t, err)
	})

	t.Run("корректный equipment_id проходит", func(t *testing.T) {
		err := cv.Validate(&CreateOrderServiceDTO{
			OrderID:     1,
			ServiceID:   1,
			UnitPrice:   &unitPrice,
			TotalPrice:  &unitPrice,
			EquipmentID: null.IntFrom(3),
		})
		assert.NoError(t, err)
	})
}
