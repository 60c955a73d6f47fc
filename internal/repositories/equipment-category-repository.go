package repositories

import (
	"context"
	"fmt"

	"rental-system/internal/entities"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	categoryTable  = "equipment_categories"
	categoryFields = "category_id, category_name, category_description, is_active"
)

type EquipmentCategoryRepositoryInterface interface {
	GetCategories(ctx context.Context, limit, offset uint64) ([]entities.EquipmentCategory, uint64, error)
	FindCategory(ctx context.Context, id uint64) (*entities.EquipmentCategory, error)
	FindCategoryByName(ctx context.Context, name string) (*entities.EquipmentCategory, error)
	CreateCategory(ctx context.Context, category entities.EquipmentCategory) (*entities.EquipmentCategory, error)
}

type equipmentCategoryRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentCategoryRepository(storage *pgxpool.Pool) EquipmentCategoryRepositoryInterface {
	return &equipmentCategoryRepository{storage: storage}
}

func (r *equipmentCategoryRepository) GetCategories(ctx context.Context, limit, offset uint64) ([]entities.EquipmentCategory, uint64, error) {
	var total uint64
	countQuery, countArgs, err := psql.Select("COUNT(*)").From(categoryTable).ToSql()
	if err != nil {
		return nil, 0, err
	}
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.EquipmentCategory{}, 0, nil
	}

	query, args, err := psql.Select(categoryFields).From(categoryTable).
		OrderBy("category_id").Limit(limit).Offset(offset).ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	categories := make([]entities.EquipmentCategory, 0)
	for rows.Next() {
		var e entities.EquipmentCategory
		if err := rows.Scan(&e.ID, &e.Name, &e.Description, &e.IsActive); err != nil {
			return nil, 0, err
		}
		categories = append(categories, e)
	}
	return categories, total, rows.Err()
}

func (r *equipmentCategoryRepository) FindCategory(ctx context.Context, id uint64) (*entities.EquipmentCategory, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE category_id = $1", categoryFields, categoryTable)
	var e entities.EquipmentCategory
	err := r.storage.QueryRow(ctx, query, id).Scan(&e.ID, &e.Name, &e.Description, &e.IsActive)
	if err != nil {
		return nil, translateDBError(err)
	}
	return &e, nil
}

func (r *equipmentCategoryRepository) FindCategoryByName(ctx context.Context, name string) (*entities.EquipmentCategory, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE category_name = $1 LIMIT 1", categoryFields, categoryTable)
	var e entities.EquipmentCategory
	err := r.storage.QueryRow(ctx, query, name).Scan(&e.ID, &e.Name, &e.Description, &e.IsActive)
	if err != nil {
		return nil, translateDBError(err)
	}
	return &e, nil
}

func (r *equipmentCategoryRepository) CreateCategory(ctx context.Context, category entities.EquipmentCategory) (*entities.EquipmentCategory, error) {
	query := fmt.Sprintf(
		"INSERT INTO %s (category_name, category_description, is_active) VALUES ($1, $2, $3) RETURNING %s",
		categoryTable, categoryFields)

	var e entities.EquipmentCategory
	err := r.storage.QueryRow(ctx, query, category.Name, category.Description, category.IsActive).
		Scan(&e.ID, &e.Name, &e.Description, &e.IsActive)
	if err != nil {
		return nil, translateDBError(err)
	}
	return &e, nil
}
