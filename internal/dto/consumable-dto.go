package dto

import "github.com/aarondl/null/v8"

type CreateConsumableDTO struct {
	ItemName      string       `json:"item_name" validate:"required,max=200"`
	ItemDesc      null.String  `json:"item_description"`
	UnitOfMeasure null.String  `json:"unit_of_measure" validate:"omitempty,max=20"`
	CurrentStock  null.Float64 `json:"current_stock" validate:"omitempty,gte=0"`
	MinimumStock  null.Float64 `json:"minimum_stock" validate:"omitempty,gte=0"`
	UnitCost      null.Float64 `json:"unit_cost" validate:"omitempty,gte=0"`
	Supplier      null.String  `json:"supplier" validate:"omitempty,max=200"`
	IsActive      null.Bool    `json:"is_active"`
}

type ConsumableDTO struct {
	ID            uint64   `json:"consumable_id"`
	ItemName      string   `json:"item_name"`
	ItemDesc      string   `json:"item_description"`
	UnitOfMeasure string   `json:"unit_of_measure"`
	CurrentStock  float64  `json:"current_stock"`
	MinimumStock  float64  `json:"minimum_stock"`
	UnitCost      *float64 `json:"unit_cost"`
	Supplier      string   `json:"supplier"`
	LastUpdated   string   `json:"last_updated"`
	IsActive      bool     `json:"is_active"`
}
