package repositories

import (
	"context"
	"fmt"

	"rental-system/internal/entities"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	equipmentReturnTable  = "equipment_returns"
	equipmentReturnFields = "return_id, order_id, equipment_id, returned_by_user_id, return_date, condition_on_return, damage_description, additional_charges, notes"
)

type EquipmentReturnRepositoryInterface interface {
	GetReturns(ctx context.Context, limit, offset uint64) ([]entities.EquipmentReturn, uint64, error)
	FindReturn(ctx context.Context, id uint64) (*entities.EquipmentReturn, error)
	CreateReturn(ctx context.Context, ret entities.EquipmentReturn) (*entities.EquipmentReturn, error)
}

type equipmentReturnRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentReturnRepository(storage *pgxpool.Pool) EquipmentReturnRepositoryInterface {
	return &equipmentReturnRepository{storage: storage}
}

func (r *equipmentReturnRepository) scanReturn(row interface{ Scan(dest ...any) error }) (*entities.EquipmentReturn, error) {
	var e entities.EquipmentReturn
	err := row.Scan(&e.ID, &e.OrderID, &e.EquipmentID, &e.ReturnedByUserID,
		&e.ReturnDate, &e.ConditionOnReturn, &e.DamageDescription,
		&e.AdditionalCharges, &e.Notes)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *equipmentReturnRepository) GetReturns(ctx context.Context, limit, offset uint64) ([]entities.EquipmentReturn, uint64, error) {
	var total uint64
	countQuery, countArgs, err := psql.Select("COUNT(*)").From(equipmentReturnTable).ToSql()
	if err != nil {
		return nil, 0, err
	}
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.EquipmentReturn{}, 0, nil
	}

	query, args, err := psql.Select(equipmentReturnFields).From(equipmentReturnTable).
		OrderBy("return_id").Limit(limit).Offset(offset).ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	returns := make([]entities.EquipmentReturn, 0)
	for rows.Next() {
		e, err := r.scanReturn(rows)
		if err != nil {
			return nil, 0, err
		}
		returns = append(returns, *e)
	}
	return returns, total, rows.Err()
}

func (r *equipmentReturnRepository) FindReturn(ctx context.Context, id uint64) (*entities.EquipmentReturn, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE return_id = $1", equipmentReturnFields, equipmentReturnTable)
	e, err := r.scanReturn(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		return nil, translateDBError(err)
	}
	return e, nil
}

func (r *equipmentReturnRepository) CreateReturn(ctx context.Context, ret entities.EquipmentReturn) (*entities.EquipmentReturn, error) {
	query := fmt.Sprintf(
		"INSERT INTO %s (order_id, equipment_id, returned_by_user_id, condition_on_return, damage_description, additional_charges, notes) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING %s",
		equipmentReturnTable, equipmentReturnFields)

	e, err := r.scanReturn(r.storage.QueryRow(ctx, query,
		ret.OrderID, ret.EquipmentID, ret.ReturnedByUserID, ret.ConditionOnReturn,
		ret.DamageDescription, ret.AdditionalCharges, ret.Notes))
	if err != nil {
		return nil, translateDBError(err)
	}
	return e, nil
}
