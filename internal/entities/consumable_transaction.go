package entities

import "time"

type ConsumableTransaction struct {
	ID              uint64          `json:"transaction_id" db:"transaction_id"`
	ConsumableID    uint64          `json:"consumable_id" db:"consumable_id"`
	UserID          uint64          `json:"user_id" db:"user_id"`
	TransactionType TransactionType `json:"transaction_type" db:"transaction_type"`
	Quantity        float64         `json:"quantity" db:"quantity"`
	TransactionDate *time.Time      `json:"transaction_date" db:"transaction_date"`
	Reason          *string         `json:"reason" db:"reason"`
	DocumentNumber  *string         `json:"document_number" db:"document_number"`
	Notes           *string         `json:"notes" db:"notes"`
}
