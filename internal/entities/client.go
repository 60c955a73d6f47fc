package entities

import (
	"time"

	"rental-system/pkg/types"
)

type Client struct {
	ID             uint64     `json:"client_id" db:"client_id"`
	ClientCode     string     `json:"client_code" db:"client_code"`
	FirstName      string     `json:"first_name" db:"first_name"`
	LastName       string     `json:"last_name" db:"last_name"`
	MiddleName     *string    `json:"middle_name" db:"middle_name"`
	Email          *string    `json:"email" db:"email"`
	Phone          *string    `json:"phone" db:"phone"`
	Address        *string    `json:"address" db:"address"`
	BirthDate      *time.Time `json:"birth_date" db:"birth_date"`
	PassportSeries *string    `json:"passport_series" db:"passport_series"`
	PassportNumber *string    `json:"passport_number" db:"passport_number"`

	types.BaseEntity
}
