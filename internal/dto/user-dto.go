package dto

import "github.com/aarondl/null/v8"

type CreateUserDTO struct {
	Login      string      `json:"login" validate:"required,max=50"`
	Password   string      `json:"password" validate:"required,max=255"`
	FirstName  string      `json:"first_name" validate:"required,max=100"`
	LastName   string      `json:"last_name" validate:"required,max=100"`
	MiddleName null.String `json:"middle_name" validate:"omitempty,max=100"`
	RoleID     uint64      `json:"role_id" validate:"required"`
	PhotoPath  null.String `json:"photo_path" validate:"omitempty,max=500"`
	IsActive   null.Bool   `json:"is_active"`
}

type UserDTO struct {
	ID         uint64 `json:"user_id"`
	Login      string `json:"login"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	MiddleName string `json:"middle_name"`
	RoleID     uint64 `json:"role_id"`
	PhotoPath  string `json:"photo_path"`
	IsActive   bool   `json:"is_active"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}
