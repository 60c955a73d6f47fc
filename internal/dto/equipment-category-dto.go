package dto

import "github.com/aarondl/null/v8"

type CreateEquipmentCategoryDTO struct {
	Name        string      `json:"category_name" validate:"required,max=100"`
	Description null.String `json:"category_description"`
	IsActive    null.Bool   `json:"is_active"`
}

type EquipmentCategoryDTO struct {
	ID          uint64 `json:"category_id"`
	Name        string `json:"category_name"`
	Description string `json:"category_description"`
	IsActive    bool   `json:"is_active"`
}
