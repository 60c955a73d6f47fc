package repositories

import (
	"context"
	"fmt"

	"rental-system/internal/entities"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	orderTable  = "orders"
	orderFields = "order_id, order_number, client_id, user_id, order_date, start_date, end_date, total_amount, deposit_amount, status, barcode, notes, created_at"
)

type OrderRepositoryInterface interface {
	GetOrders(ctx context.Context, limit, offset uint64) ([]entities.Order, uint64, error)
	FindOrder(ctx context.Context, id uint64) (*entities.Order, error)
	CreateOrder(ctx context.Context, order entities.Order) (*entities.Order, error)
}

type orderRepository struct {
	storage *pgxpool.Pool
}

func NewOrderRepository(storage *pgxpool.Pool) OrderRepositoryInterface {
	return &orderRepository{storage: storage}
}

func (r *orderRepository) scanOrder(row interface{ Scan(dest ...any) error }) (*entities.Order, error) {
	var e entities.Order
	err := row.Scan(&e.ID, &e.OrderNumber, &e.ClientID, &e.UserID, &e.OrderDate,
		&e.StartDate, &e.EndDate, &e.TotalAmount, &e.DepositAmount, &e.Status,
		&e.Barcode, &e.Notes, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *orderRepository) GetOrders(ctx context.Context, limit, offset uint64) ([]entities.Order, uint64, error) {
	var total uint64
	countQuery, countArgs, err := psql.Select("COUNT(*)").From(orderTable).ToSql()
	if err != nil {
		return nil, 0, err
	}
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Order{}, 0, nil
	}

	query, args, err := psql.Select(orderFields).From(orderTable).
		OrderBy("order_id").Limit(limit).Offset(offset).ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := make([]entities.Order, 0)
	for rows.Next() {
		e, err := r.scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, *e)
	}
	return orders, total, rows.Err()
}

func (r *orderRepository) FindOrder(ctx context.Context, id uint64) (*entities.Order, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE order_id = $1", orderFields, orderTable)
	e, err := r.scanOrder(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		return nil, translateDBError(err)
	}
	return e, nil
}

func (r *orderRepository) CreateOrder(ctx context.Context, order entities.Order) (*entities.Order, error) {
	query := fmt.Sprintf(
		"INSERT INTO %s (order_number, client_id, user_id, start_date, end_date, total_amount, deposit_amount, status, barcode, notes) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING %s",
		orderTable, orderFields)

	e, err := r.scanOrder(r.storage.QueryRow(ctx, query,
		order.OrderNumber, order.ClientID, order.UserID, order.StartDate,
		order.EndDate, order.TotalAmount, order.DepositAmount, order.Status,
		order.Barcode, order.Notes))
	if err != nil {
		return nil, translateDBError(err)
	}
	return e, nil
}
