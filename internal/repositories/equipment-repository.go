package repositories

import (
	"context"
	"fmt"

	"rental-system/internal/entities"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	equipmentTable  = "equipment"
	equipmentFields = "equipment_id, category_id, brand, model, size, condition_status, purchase_date, last_maintenance_date, is_available, barcode, notes"
)

type EquipmentRepositoryInterface interface {
	GetEquipment(ctx context.Context, limit, offset uint64) ([]entities.Equipment, uint64, error)
	FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, item entities.Equipment) (*entities.Equipment, error)
}

type equipmentRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentRepository(storage *pgxpool.Pool) EquipmentRepositoryInterface {
	return &equipmentRepository{storage: storage}
}

func (r *equipmentRepository) scanEquipment(row interface{ Scan(dest ...any) error }) (*entities.Equipment, error) {
	var e entities.Equipment
	err := row.Scan(&e.ID, &e.CategoryID, &e.Brand, &e.Model, &e.Size,
		&e.ConditionStatus, &e.PurchaseDate, &e.LastMaintenanceDate,
		&e.IsAvailable, &e.Barcode, &e.Notes)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *equipmentRepository) GetEquipment(ctx context.Context, limit, offset uint64) ([]entities.Equipment, uint64, error) {
	var total uint64
	countQuery, countArgs, err := psql.Select("COUNT(*)").From(equipmentTable).ToSql()
	if err != nil {
		return nil, 0, err
	}
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Equipment{}, 0, nil
	}

	query, args, err := psql.Select(equipmentFields).From(equipmentTable).
		OrderBy("equipment_id").Limit(limit).Offset(offset).ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]entities.Equipment, 0)
	for rows.Next() {
		e, err := r.scanEquipment(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *e)
	}
	return items, total, rows.Err()
}

func (r *equipmentRepository) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE equipment_id = $1", equipmentFields, equipmentTable)
	e, err := r.scanEquipment(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		return nil, translateDBError(err)
	}
	return e, nil
}

func (r *equipmentRepository) CreateEquipment(ctx context.Context, item entities.Equipment) (*entities.Equipment, error) {
	query := fmt.Sprintf(
		"INSERT INTO %s (category_id, brand, model, size, condition_status, purchase_date, last_maintenance_date, is_available, barcode, notes) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING %s",
		equipmentTable, equipmentFields)

	e, err := r.scanEquipment(r.storage.QueryRow(ctx, query,
		item.CategoryID, item.Brand, item.Model, item.Size, item.ConditionStatus,
		item.PurchaseDate, item.LastMaintenanceDate, item.IsAvailable,
		item.Barcode, item.Notes))
	if err != nil {
		return nil, translateDBError(err)
	}
	return e, nil
}
