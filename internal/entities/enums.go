package entities

// Закрытые перечисления предметной области. В БД хранятся строковыми тегами.

type EquipmentCondition string

const (
	EquipmentConditionExcellent    EquipmentCondition = "excellent"
	EquipmentConditionGood         EquipmentCondition = "good"
	EquipmentConditionSatisfactory EquipmentCondition = "satisfactory"
	EquipmentConditionNeedsRepair  EquipmentCondition = "needs_repair"
)

type OrderStatus string

const (
	OrderStatusActive    OrderStatus = "active"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusArchived  OrderStatus = "archived"
)

type ReturnCondition string

const (
	ReturnConditionExcellent    ReturnCondition = "excellent"
	ReturnConditionGood         ReturnCondition = "good"
	ReturnConditionSatisfactory ReturnCondition = "satisfactory"
	ReturnConditionDamaged      ReturnCondition = "damaged"
)

type TransactionType string

const (
	TransactionTypeReceipt     TransactionType = "receipt"
	TransactionTypeConsumption TransactionType = "consumption"
	TransactionTypeWriteoff    TransactionType = "writeoff"
)
