package entities

import "rental-system/pkg/types"

type User struct {
	ID           uint64  `json:"user_id" db:"user_id"`
	Login        string  `json:"login" db:"login"`
	PasswordHash string  `json:"-" db:"password_hash"`
	FirstName    string  `json:"first_name" db:"first_name"`
	LastName     string  `json:"last_name" db:"last_name"`
	MiddleName   *string `json:"middle_name" db:"middle_name"`
	RoleID       uint64  `json:"role_id" db:"role_id"`
	PhotoPath    *string `json:"photo_path" db:"photo_path"`
	IsActive     bool    `json:"is_active" db:"is_active"`

	types.BaseEntity
}
