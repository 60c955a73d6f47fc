package dto

import "github.com/aarondl/null/v8"

type CreateOrderServiceDTO struct {
	OrderID     uint64      `json:"order_id" validate:"required"`
	ServiceID   uint64      `json:"service_id" validate:"required"`
	EquipmentID null.Int    `json:"equipment_id" validate:"omitempty,gte=1"`
	Quantity    null.Int    `json:"quantity" validate:"omitempty,gt=0"`
	UnitPrice   *float64    `json:"unit_price" validate:"required,gte=0"`
	TotalPrice  *float64    `json:"total_price" validate:"required,gte=0"`
	RentalHours null.Int    `json:"rental_hours" validate:"omitempty,gt=0"`
	Notes       null.String `json:"notes"`
}

type OrderServiceDTO struct {
	ID          uint64  `json:"order_service_id"`
	OrderID     uint64  `json:"order_id"`
	ServiceID   uint64  `json:"service_id"`
	EquipmentID *uint64 `json:"equipment_id"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
	RentalHours *int    `json:"rental_hours"`
	Notes       string  `json:"notes"`
}
