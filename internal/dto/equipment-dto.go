package dto

import (
	"rental-system/pkg/types"

	"github.com/aarondl/null/v8"
)

type CreateEquipmentDTO struct {
	CategoryID          uint64         `json:"category_id" validate:"required"`
	Brand               null.String    `json:"brand" validate:"omitempty,max=100"`
	Model               null.String    `json:"model" validate:"omitempty,max=100"`
	Size                null.String    `json:"size" validate:"omitempty,max=20"`
	ConditionStatus     null.String    `json:"condition_status" validate:"omitempty,oneof=excellent good satisfactory needs_repair"`
	PurchaseDate        types.NullDate `json:"purchase_date"`
	LastMaintenanceDate types.NullDate `json:"last_maintenance_date"`
	IsAvailable         null.Bool      `json:"is_available"`
	Barcode             null.String    `json:"barcode" validate:"omitempty,max=255"`
	Notes               null.String    `json:"notes"`
}

type EquipmentDTO struct {
	ID                  uint64 `json:"equipment_id"`
	CategoryID          uint64 `json:"category_id"`
	Brand               string `json:"brand"`
	Model               string `json:"model"`
	Size                string `json:"size"`
	ConditionStatus     string `json:"condition_status"`
	PurchaseDate        string `json:"purchase_date"`
	LastMaintenanceDate string `json:"last_maintenance_date"`
	IsAvailable         bool   `json:"is_available"`
	Barcode             string `json:"barcode"`
	Notes               string `json:"notes"`
}
