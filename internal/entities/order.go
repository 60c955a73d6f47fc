package entities

import "time"

type Order struct {
	ID            uint64      `json:"order_id" db:"order_id"`
	OrderNumber   string      `json:"order_number" db:"order_number"`
	ClientID      uint64      `json:"client_id" db:"client_id"`
	UserID        uint64      `json:"user_id" db:"user_id"`
	OrderDate     *time.Time  `json:"order_date" db:"order_date"`
	StartDate     time.Time   `json:"start_date" db:"start_date"`
	EndDate       time.Time   `json:"end_date" db:"end_date"`
	TotalAmount   float64     `json:"total_amount" db:"total_amount"`
	DepositAmount *float64    `json:"deposit_amount" db:"deposit_amount"`
	Status        OrderStatus `json:"status" db:"status"`
	Barcode       *string     `json:"barcode" db:"barcode"`
	Notes         *string     `json:"notes" db:"notes"`
	CreatedAt     *time.Time  `json:"created_at" db:"created_at"`
}
