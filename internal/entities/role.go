package entities

import "encoding/json"

type Role struct {
	ID          uint64          `json:"role_id" db:"role_id"`
	Name        string          `json:"role_name" db:"role_name"`
	Description *string         `json:"role_description" db:"role_description"`
	Permissions json.RawMessage `json:"permissions" db:"permissions"`
}
