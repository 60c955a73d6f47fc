package entities

import "rental-system/pkg/types"

type Service struct {
	ID            uint64   `json:"service_id" db:"service_id"`
	Name          string   `json:"service_name" db:"service_name"`
	Description   *string  `json:"service_description" db:"service_description"`
	CategoryID    *uint64  `json:"category_id" db:"category_id"`
	HourlyRate    float64  `json:"hourly_rate" db:"hourly_rate"`
	DailyRate     *float64 `json:"daily_rate" db:"daily_rate"`
	DepositAmount *float64 `json:"deposit_amount" db:"deposit_amount"`
	IsActive      bool     `json:"is_active" db:"is_active"`

	types.BaseEntity
}
