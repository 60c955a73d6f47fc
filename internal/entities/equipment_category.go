package entities

type EquipmentCategory struct {
	ID          uint64  `json:"category_id" db:"category_id"`
	Name        string  `json:"category_name" db:"category_name"`
	Description *string `json:"category_description" db:"category_description"`
	IsActive    bool    `json:"is_active" db:"is_active"`
}
