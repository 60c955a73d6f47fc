package repositories

import (
	"context"
	"fmt"

	"rental-system/internal/entities"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	consumableTable  = "consumables"
	consumableFields = "consumable_id, item_name, item_description, unit_of_measure, current_stock, minimum_stock, unit_cost, supplier, last_updated, is_active"
)

type ConsumableRepositoryInterface interface {
	GetConsumables(ctx context.Context, limit, offset uint64) ([]entities.Consumable, uint64, error)
	FindConsumable(ctx context.Context, id uint64) (*entities.Consumable, error)
	CreateConsumable(ctx context.Context, item entities.Consumable) (*entities.Consumable, error)
}

type consumableRepository struct {
	storage *pgxpool.Pool
}

func NewConsumableRepository(storage *pgxpool.Pool) ConsumableRepositoryInterface {
	return &consumableRepository{storage: storage}
}

func (r *consumableRepository) scanConsumable(row interface{ Scan(dest ...any) error }) (*entities.Consumable, error) {
	var e entities.Consumable
	err := row.Scan(&e.ID, &e.ItemName, &e.ItemDesc, &e.UnitOfMeasure,
		&e.CurrentStock, &e.MinimumStock, &e.UnitCost, &e.Supplier,
		&e.LastUpdated, &e.IsActive)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *consumableRepository) GetConsumables(ctx context.Context, limit, offset uint64) ([]entities.Consumable, uint64, error) {
	var total uint64
	countQuery, countArgs, err := psql.Select("COUNT(*)").From(consumableTable).ToSql()
	if err != nil {
		return nil, 0, err
	}
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Consumable{}, 0, nil
	}

	query, args, err := psql.Select(consumableFields).From(consumableTable).
		OrderBy("consumable_id").Limit(limit).Offset(offset).ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]entities.Consumable, 0)
	for rows.Next() {
		e, err := r.scanConsumable(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *e)
	}
	return items, total, rows.Err()
}

func (r *consumableRepository) FindConsumable(ctx context.Context, id uint64) (*entities.Consumable, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE consumable_id = $1", consumableFields, consumableTable)
	e, err := r.scanConsumable(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		return nil, translateDBError(err)
	}
	return e, nil
}

func (r *consumableRepository) CreateConsumable(ctx context.Context, item entities.Consumable) (*entities.Consumable, error) {
	query := fmt.Sprintf(
		"INSERT INTO %s (item_name, item_description, unit_of_measure, current_stock, minimum_stock, unit_cost, supplier, is_active) VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING %s",
		consumableTable, consumableFields)

	e, err := r.scanConsumable(r.storage.QueryRow(ctx, query,
		item.ItemName, item.ItemDesc, item.UnitOfMeasure, item.CurrentStock,
		item.MinimumStock, item.UnitCost, item.Supplier, item.IsActive))
	if err != nil {
		return nil, translateDBError(err)
	}
	return e, nil
}
