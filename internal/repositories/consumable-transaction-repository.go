package repositories

import (
	"context"
	"fmt"

	"rental-system/internal/entities"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	transactionTable  = "consumable_transactions"
	transactionFields = "transaction_id, consumable_id, user_id, transaction_type, quantity, transaction_date, reason, document_number, notes"
)

type ConsumableTransactionRepositoryInterface interface {
	GetTransactions(ctx context.Context, limit, offset uint64) ([]entities.ConsumableTransaction, uint64, error)
	FindTransaction(ctx context.Context, id uint64) (*entities.ConsumableTransaction, error)
	CreateTransaction(ctx context.Context, tr entities.ConsumableTransaction) (*entities.ConsumableTransaction, error)
}

type consumableTransactionRepository struct {
	storage *pgxpool.Pool
}

func NewConsumableTransactionRepository(storage *pgxpool.Pool) ConsumableTransactionRepositoryInterface {
	return &consumableTransactionRepository{storage: storage}
}

func (r *consumableTransactionRepository) scanTransaction(row interface{ Scan(dest ...any) error }) (*entities.ConsumableTransaction, error) {
	var e entities.ConsumableTransaction
	err := row.Scan(&e.ID, &e.ConsumableID, &e.UserID, &e.TransactionType,
		&e.Quantity, &e.TransactionDate, &e.Reason, &e.DocumentNumber, &e.Notes)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *consumableTransactionRepository) GetTransactions(ctx context.Context, limit, offset uint64) ([]entities.ConsumableTransaction, uint64, error) {
	var total uint64
	countQuery, countArgs, err := psql.Select("COUNT(*)").From(transactionTable).ToSql()
	if err != nil {
		return nil, 0, err
	}
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.ConsumableTransaction{}, 0, nil
	}

	query, args, err := psql.Select(transactionFields).From(transactionTable).
		OrderBy("transaction_id").Limit(limit).Offset(offset).ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	transactions := make([]entities.ConsumableTransaction, 0)
	for rows.Next() {
		e, err := r.scanTransaction(rows)
		if err != nil {
			return nil, 0, err
		}
		transactions = append(transactions, *e)
	}
	return transactions, total, rows.Err()
}

func (r *consumableTransactionRepository) FindTransaction(ctx context.Context, id uint64) (*entities.ConsumableTransaction, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE transaction_id = $1", transactionFields, transactionTable)
	e, err := r.scanTransaction(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		return nil, translateDBError(err)
	}
	return e, nil
}

func (r *consumableTransactionRepository) CreateTransaction(ctx context.Context, tr entities.ConsumableTransaction) (*entities.ConsumableTransaction, error) {
	query := fmt.Sprintf(
		"INSERT INTO %s (consumable_id, user_id, transaction_type, quantity, reason, document_number, notes) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING %s",
		transactionTable, transactionFields)

	e, err := r.scanTransaction(r.storage.QueryRow(ctx, query,
		tr.ConsumableID, tr.UserID, tr.TransactionType, tr.Quantity,
		tr.Reason, tr.DocumentNumber, tr.Notes))
	if err != nil {
		return nil, translateDBError(err)
	}
	return e, nil
}
