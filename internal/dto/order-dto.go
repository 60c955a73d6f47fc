package dto

import (
	"time"

	"github.com/aarondl/null/v8"
)

type CreateOrderDTO struct {
	OrderNumber   string       `json:"order_number" validate:"required,max=50"`
	ClientID      uint64       `json:"client_id" validate:"required"`
	UserID        uint64       `json:"user_id" validate:"required"`
	StartDate     time.Time    `json:"start_date" validate:"required"`
	EndDate       time.Time    `json:"end_date" validate:"required"`
	TotalAmount   null.Float64 `json:"total_amount" validate:"omitempty,gte=0"`
	DepositAmount null.Float64 `json:"deposit_amount" validate:"omitempty,gte=0"`
	Status        null.String  `json:"status" validate:"omitempty,oneof=active completed cancelled archived"`
	Barcode       null.String  `json:"barcode" validate:"omitempty,max=255"`
	Notes         null.String  `json:"notes"`
}

type OrderDTO struct {
	ID            uint64    `json:"order_id"`
	OrderNumber   string    `json:"order_number"`
	ClientID      uint64    `json:"client_id"`
	UserID        uint64    `json:"user_id"`
	OrderDate     string    `json:"order_date"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	TotalAmount   float64   `json:"total_amount"`
	DepositAmount *float64  `json:"deposit_amount"`
	Status        string    `json:"status"`
	Barcode       string    `json:"barcode"`
	Notes         string    `json:"notes"`
	CreatedAt     string    `json:"created_at"`
}
