package dto

import (
	"encoding/json"

	"github.com/aarondl/null/v8"
)

type CreateRoleDTO struct {
	Name        string          `json:"role_name" validate:"required,max=50"`
	Description null.String     `json:"role_description" validate:"omitempty,max=1000"`
	Permissions json.RawMessage `json:"permissions"`
}

type RoleDTO struct {
	ID          uint64          `json:"role_id"`
	Name        string          `json:"role_name"`
	Description string          `json:"role_description"`
	Permissions json.RawMessage `json:"permissions"`
}
