package dto

import "github.com/aarondl/null/v8"

type CreateEquipmentReturnDTO struct {
	OrderID           uint64       `json:"order_id" validate:"required"`
	EquipmentID       uint64       `json:"equipment_id" validate:"required"`
	ReturnedByUserID  uint64       `json:"returned_by_user_id" validate:"required"`
	ConditionOnReturn null.String  `json:"condition_on_return" validate:"omitempty,oneof=excellent good satisfactory damaged"`
	DamageDescription null.String  `json:"damage_description"`
	AdditionalCharges null.Float64 `json:"additional_charges" validate:"omitempty,gte=0"`
	Notes             null.String  `json:"notes"`
}

type EquipmentReturnDTO struct {
	ID                uint64  `json:"return_id"`
	OrderID           uint64  `json:"order_id"`
	EquipmentID       uint64  `json:"equipment_id"`
	ReturnedByUserID  uint64  `json:"returned_by_user_id"`
	ReturnDate        string  `json:"return_date"`
	ConditionOnReturn string  `json:"condition_on_return"`
	DamageDescription string  `json:"damage_description"`
	AdditionalCharges float64 `json:"additional_charges"`
	Notes             string  `json:"notes"`
}
