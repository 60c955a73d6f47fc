package entities

import "time"

type Equipment struct {
	ID                  uint64             `json:"equipment_id" db:"equipment_id"`
	CategoryID          uint64             `json:"category_id" db:"category_id"`
	Brand               *string            `json:"brand" db:"brand"`
	Model               *string            `json:"model" db:"model"`
	Size                *string            `json:"size" db:"size"`
	ConditionStatus     EquipmentCondition `json:"condition_status" db:"condition_status"`
	PurchaseDate        *time.Time         `json:"purchase_date" db:"purchase_date"`
	LastMaintenanceDate *time.Time         `json:"last_maintenance_date" db:"last_maintenance_date"`
	IsAvailable         bool               `json:"is_available" db:"is_available"`
	Barcode             *string            `json:"barcode" db:"barcode"`
	Notes               *string            `json:"notes" db:"notes"`
}
