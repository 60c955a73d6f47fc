package repositories

import (
	"context"
	"fmt"

	"rental-system/internal/entities"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	clientTable  = "clients"
	clientFields = "client_id, client_code, first_name, last_name, middle_name, email, phone, address, birth_date, passport_series, passport_number, created_at, updated_at"
)

type ClientRepositoryInterface interface {
	GetClients(ctx context.Context, limit, offset uint64) ([]entities.Client, uint64, error)
	FindClient(ctx context.Context, id uint64) (*entities.Client, error)
	CreateClient(ctx context.Context, client entities.Client) (*entities.Client, error)
}

type clientRepository struct {
	storage *pgxpool.Pool
}

func NewClientRepository(storage *pgxpool.Pool) ClientRepositoryInterface {
	return &clientRepository{storage: storage}
}

func (r *clientRepository) scanClient(row interface{ Scan(dest ...any) error }) (*entities.Client, error) {
	var e entities.Client
	err := row.Scan(&e.ID, &e.ClientCode, &e.FirstName, &e.LastName, &e.MiddleName,
		&e.Email, &e.Phone, &e.Address, &e.BirthDate, &e.PassportSeries,
		&e.PassportNumber, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *clientRepository) GetClients(ctx context.Context, limit, offset uint64) ([]entities.Client, uint64, error) {
	var total uint64
	countQuery, countArgs, err := psql.Select("COUNT(*)").From(clientTable).ToSql()
	if err != nil {
		return nil, 0, err
	}
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Client{}, 0, nil
	}

	query, args, err := psql.Select(clientFields).From(clientTable).
		OrderBy("client_id").Limit(limit).Offset(offset).ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	clients := make([]entities.Client, 0)
	for rows.Next() {
		e, err := r.scanClient(rows)
		if err != nil {
			return nil, 0, err
		}
		clients = append(clients, *e)
	}
	return clients, total, rows.Err()
}

func (r *clientRepository) FindClient(ctx context.Context, id uint64) (*entities.Client, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE client_id = $1", clientFields, clientTable)
	e, err := r.scanClient(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		return nil, translateDBError(err)
	}
	return e, nil
}

func (r *clientRepository) CreateClient(ctx context.Context, client entities.Client) (*entities.Client, error) {
	query := fmt.Sprintf(
		"INSERT INTO %s (client_code, first_name, last_name, middle_name, email, phone, address, birth_date, passport_series, passport_number) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING %s",
		clientTable, clientFields)

	e, err := r.scanClient(r.storage.QueryRow(ctx, query,
		client.ClientCode, client.FirstName, client.LastName, client.MiddleName,
		client.Email, client.Phone, client.Address, client.BirthDate,
		client.PassportSeries, client.PassportNumber))
	if err != nil {
		return nil, translateDBError(err)
	}
	return e, nil
}
