package repositories

import (
	"context"
	"fmt"

	"rental-system/internal/entities"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	orderServiceTable  = "order_services"
	orderServiceFields = "order_service_id, order_id, service_id, equipment_id, quantity, unit_price, total_price, rental_hours, notes"
)

type OrderServiceRepositoryInterface interface {
	GetOrderServices(ctx context.Context, limit, offset uint64) ([]entities.OrderService, uint64, error)
	FindOrderService(ctx context.Context, id uint64) (*entities.OrderService, error)
	CreateOrderService(ctx context.Context, item entities.OrderService) (*entities.OrderService, error)
}

type orderServiceRepository struct {
	storage *pgxpool.Pool
}

func NewOrderServiceRepository(storage *pgxpool.Pool) OrderServiceRepositoryInterface {
	return &orderServiceRepository{storage: storage}
}

func (r *orderServiceRepository) scanRow(row interface{ Scan(dest ...any) error }) (*entities.OrderService, error) {
	var e entities.OrderService
	err := row.Scan(&e.ID, &e.OrderID, &e.ServiceID, &e.EquipmentID, &e.Quantity,
		&e.UnitPrice, &e.TotalPrice, &e.RentalHours, &e.Notes)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *orderServiceRepository) GetOrderServices(ctx context.Context, limit, offset uint64) ([]entities.OrderService, uint64, error) {
	var total uint64
	countQuery, countArgs, err := psql.Select("COUNT(*)").From(orderServiceTable).ToSql()
	if err != nil {
		return nil, 0, err
	}
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.OrderService{}, 0, nil
	}

	query, args, err := psql.Select(orderServiceFields).From(orderServiceTable).
		OrderBy("order_service_id").Limit(limit).Offset(offset).ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]entities.OrderService, 0)
	for rows.Next() {
		e, err := r.scanRow(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *e)
	}
	return items, total, rows.Err()
}

func (r *orderServiceRepository) FindOrderService(ctx context.Context, id uint64) (*entities.OrderService, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE order_service_id = $1", orderServiceFields, orderServiceTable)
	e, err := r.scanRow(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		return nil, translateDBError(err)
	}
	return e, nil
}

func (r *orderServiceRepository) CreateOrderService(ctx context.Context, item entities.OrderService) (*entities.OrderService, error) {
	query := fmt.Sprintf(
		"INSERT INTO %s (order_id, service_id, equipment_id, quantity, unit_price, total_price, rental_hours, notes) VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING %s",
		orderServiceTable, orderServiceFields)

	e, err := r.scanRow(r.storage.QueryRow(ctx, query,
		item.OrderID, item.ServiceID, item.EquipmentID, item.Quantity,
		item.UnitPrice, item.TotalPrice, item.RentalHours, item.Notes))
	if err != nil {
		return nil, translateDBError(err)
	}
	return e, nil
}
