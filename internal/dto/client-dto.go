package dto

import (
	"rental-system/pkg/types"

	"github.com/aarondl/null/v8"
)

type CreateClientDTO struct {
	ClientCode     string         `json:"client_code" validate:"required,max=20"`
	FirstName      string         `json:"first_name" validate:"required,max=100"`
	LastName       string         `json:"last_name" validate:"required,max=100"`
	MiddleName     null.String    `json:"middle_name" validate:"omitempty,max=100"`
	Email          null.String    `json:"email" validate:"omitempty,custom_email,max=255"`
	Phone          null.String    `json:"phone" validate:"omitempty,max=20"`
	Address        null.String    `json:"address"`
	BirthDate      types.NullDate `json:"birth_date"`
	PassportSeries null.String    `json:"passport_series" validate:"omitempty,max=10"`
	PassportNumber null.String    `json:"passport_number" validate:"omitempty,max=20"`
}

type ClientDTO struct {
	ID             uint64 `json:"client_id"`
	ClientCode     string `json:"client_code"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	MiddleName     string `json:"middle_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	BirthDate      string `json:"birth_date"`
	PassportSeries string `json:"passport_series"`
	PassportNumber string `json:"passport_number"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}
