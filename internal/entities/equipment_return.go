package entities

import "time"

type EquipmentReturn struct {
	ID                uint64          `json:"return_id" db:"return_id"`
	OrderID           uint64          `json:"order_id" db:"order_id"`
	EquipmentID       uint64          `json:"equipment_id" db:"equipment_id"`
	ReturnedByUserID  uint64          `json:"returned_by_user_id" db:"returned_by_user_id"`
	ReturnDate        *time.Time      `json:"return_date" db:"return_date"`
	ConditionOnReturn ReturnCondition `json:"condition_on_return" db:"condition_on_return"`
	DamageDescription *string         `json:"damage_description" db:"damage_description"`
	AdditionalCharges float64         `json:"additional_charges" db:"additional_charges"`
	Notes             *string         `json:"notes" db:"notes"`
}
