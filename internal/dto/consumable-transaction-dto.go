package dto

import "github.com/aarondl/null/v8"

type CreateConsumableTransactionDTO struct {
	ConsumableID    uint64      `json:"consumable_id" validate:"required"`
	UserID          uint64      `json:"user_id" validate:"required"`
	TransactionType string      `json:"transaction_type" validate:"required,oneof=receipt consumption writeoff"`
	Quantity        *float64    `json:"quantity" validate:"required,gt=0"`
	Reason          null.String `json:"reason"`
	DocumentNumber  null.String `json:"document_number" validate:"omitempty,max=100"`
	Notes           null.String `json:"notes"`
}

type ConsumableTransactionDTO struct {
	ID              uint64  `json:"transaction_id"`
	ConsumableID    uint64  `json:"consumable_id"`
	UserID          uint64  `json:"user_id"`
	TransactionType string  `json:"transaction_type"`
	Quantity        float64 `json:"quantity"`
	TransactionDate string  `json:"transaction_date"`
	Reason          string  `json:"reason"`
	DocumentNumber  string  `json:"document_number"`
	Notes           string  `json:"notes"`
}
