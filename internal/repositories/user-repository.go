package repositories

import (
	"context"
	"errors"
	"fmt"

	"rental-system/internal/entities"
	apperrors "rental-system/pkg/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	userTable  = "users"
	userFields = "user_id, login, password_hash, first_name, last_name, middle_name, role_id, photo_path, is_active, created_at, updated_at"
)

type UserRepositoryInterface interface {
	GetUsers(ctx context.Context, limit, offset uint64) ([]entities.User, uint64, error)
	FindUser(ctx context.Context, id uint64) (*entities.User, error)
	FindUserByLogin(ctx context.Context, login string) (*entities.User, error)
	CreateUser(ctx context.Context, user entities.User) (*entities.User, error)
}

type userRepository struct {
	storage *pgxpool.Pool
}

func NewUserRepository(storage *pgxpool.Pool) UserRepositoryInterface {
	return &userRepository{storage: storage}
}

func (r *userRepository) scanUser(row interface{ Scan(dest ...any) error }) (*entities.User, error) {
	var e entities.User
	err := row.Scan(&e.ID, &e.Login, &e.PasswordHash, &e.FirstName, &e.LastName,
		&e.MiddleName, &e.RoleID, &e.PhotoPath, &e.IsActive, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *userRepository) GetUsers(ctx context.Context, limit, offset uint64) ([]entities.User, uint64, error) {
	var total uint64
	countQuery, countArgs, err := psql.Select("COUNT(*)").From(userTable).ToSql()
	if err != nil {
		return nil, 0, err
	}
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.User{}, 0, nil
	}

	query, args, err := psql.Select(userFields).From(userTable).
		OrderBy("user_id").Limit(limit).Offset(offset).ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	users := make([]entities.User, 0)
	for rows.Next() {
		e, err := r.scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, *e)
	}
	return users, total, rows.Err()
}

func (r *userRepository) FindUser(ctx context.Context, id uint64) (*entities.User, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE user_id = $1", userFields, userTable)
	e, err := r.scanUser(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		return nil, translateDBError(err)
	}
	return e, nil
}

func (r *userRepository) FindUserByLogin(ctx context.Context, login string) (*entities.User, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE login = $1", userFields, userTable)
	e, err := r.scanUser(r.storage.QueryRow(ctx, query, login))
	if err != nil {
		return nil, translateDBError(err)
	}
	return e, nil
}

// CreateUser выполняет один атомарный INSERT. Уникальность логина
// гарантирует индекс в БД, а не предварительное чтение: конкурентный
// дубликат превращается в ErrLoginTaken.
func (r *userRepository) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	query := fmt.Sprintf(
		"INSERT INTO %s (login, password_hash, first_name, last_name, middle_name, role_id, photo_path, is_active) VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING %s",
		userTable, userFields)

	e, err := r.scanUser(r.storage.QueryRow(ctx, query,
		user.Login, user.PasswordHash, user.FirstName, user.LastName,
		user.MiddleName, user.RoleID, user.PhotoPath, user.IsActive))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, apperrors.ErrLoginTaken
		}
		return nil, translateDBError(err)
	}
	return e, nil
}
