package repositories

import (
	"context"
	"fmt"

	"rental-system/internal/entities"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	serviceTable  = "services"
	serviceFields = "service_id, service_name, service_description, category_id, hourly_rate, daily_rate, deposit_amount, is_active, created_at, updated_at"
)

type ServiceRepositoryInterface interface {
	GetServices(ctx context.Context, limit, offset uint64) ([]entities.Service, uint64, error)
	FindService(ctx context.Context, id uint64) (*entities.Service, error)
	CreateService(ctx context.Context, svc entities.Service) (*entities.Service, error)
}

type serviceRepository struct {
	storage *pgxpool.Pool
}

func NewServiceRepository(storage *pgxpool.Pool) ServiceRepositoryInterface {
	return &serviceRepository{storage: storage}
}

func (r *serviceRepository) scanService(row interface{ Scan(dest ...any) error }) (*entities.Service, error) {
	var e entities.Service
	err := row.Scan(&e.ID, &e.Name, &e.Description, &e.CategoryID, &e.HourlyRate,
		&e.DailyRate, &e.DepositAmount, &e.IsActive, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *serviceRepository) GetServices(ctx context.Context, limit, offset uint64) ([]entities.Service, uint64, error) {
	var total uint64
	countQuery, countArgs, err := psql.Select("COUNT(*)").From(serviceTable).ToSql()
	if err != nil {
		return nil, 0, err
	}
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Service{}, 0, nil
	}

	query, args, err := psql.Select(serviceFields).From(serviceTable).
		OrderBy("service_id").Limit(limit).Offset(offset).ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	services := make([]entities.Service, 0)
	for rows.Next() {
		e, err := r.scanService(rows)
		if err != nil {
			return nil, 0, err
		}
		services = append(services, *e)
	}
	return services, total, rows.Err()
}

func (r *serviceRepository) FindService(ctx context.Context, id uint64) (*entities.Service, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE service_id = $1", serviceFields, serviceTable)
	e, err := r.scanService(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		return nil, translateDBError(err)
	}
	return e, nil
}

func (r *serviceRepository) CreateService(ctx context.Context, svc entities.Service) (*entities.Service, error) {
	query := fmt.Sprintf(
		"INSERT INTO %s (service_name, service_description, category_id, hourly_rate, daily_rate, deposit_amount, is_active) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING %s",
		serviceTable, serviceFields)

	e, err := r.scanService(r.storage.QueryRow(ctx, query,
		svc.Name, svc.Description, svc.CategoryID, svc.HourlyRate,
		svc.DailyRate, svc.DepositAmount, svc.IsActive))
	if err != nil {
		return nil, translateDBError(err)
	}
	return e, nil
}
