package entities

type OrderService struct {
	ID          uint64  `json:"order_service_id" db:"order_service_id"`
	OrderID     uint64  `json:"order_id" db:"order_id"`
	ServiceID   uint64  `json:"service_id" db:"service_id"`
	EquipmentID *uint64 `json:"equipment_id" db:"equipment_id"`
	Quantity    int     `json:"quantity" db:"quantity"`
	UnitPrice   float64 `json:"unit_price" db:"unit_price"`
	TotalPrice  float64 `json:"total_price" db:"total_price"`
	RentalHours *int    `json:"rental_hours" db:"rental_hours"`
	Notes       *string `json:"notes" db:"notes"`
}
