package entities

import "time"

type Consumable struct {
	ID            uint64     `json:"consumable_id" db:"consumable_id"`
	ItemName      string     `json:"item_name" db:"item_name"`
	ItemDesc      *string    `json:"item_description" db:"item_description"`
	UnitOfMeasure *string    `json:"unit_of_measure" db:"unit_of_measure"`
	CurrentStock  float64    `json:"current_stock" db:"current_stock"`
	MinimumStock  float64    `json:"minimum_stock" db:"minimum_stock"`
	UnitCost      *float64   `json:"unit_cost" db:"unit_cost"`
	Supplier      *string    `json:"supplier" db:"supplier"`
	LastUpdated   *time.Time `json:"last_updated" db:"last_updated"`
	IsActive      bool       `json:"is_active" db:"is_active"`
}
