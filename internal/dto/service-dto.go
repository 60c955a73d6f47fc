package dto

import "github.com/aarondl/null/v8"

type CreateServiceDTO struct {
	Name          string       `json:"service_name" validate:"required,max=200"`
	Description   null.String  `json:"service_description"`
	CategoryID    null.Int     `json:"category_id" validate:"omitempty,gte=1"`
	HourlyRate    *float64     `json:"hourly_rate" validate:"required,gte=0"`
	DailyRate     null.Float64 `json:"daily_rate" validate:"omitempty,gte=0"`
	DepositAmount null.Float64 `json:"deposit_amount" validate:"omitempty,gte=0"`
	IsActive      null.Bool    `json:"is_active"`
}

type ServiceDTO struct {
	ID            uint64   `json:"service_id"`
	Name          string   `json:"service_name"`
	Description   string   `json:"service_description"`
	CategoryID    *uint64  `json:"category_id"`
	HourlyRate    float64  `json:"hourly_rate"`
	DailyRate     *float64 `json:"daily_rate"`
	DepositAmount *float64 `json:"deposit_amount"`
	IsActive      bool     `json:"is_active"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
}
