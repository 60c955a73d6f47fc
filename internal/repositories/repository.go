package repositories

import (
	"errors"

	apperrors "rental-system/pkg/errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// psql - общий builder запросов с нумерованными плейсхолдерами PostgreSQL.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translateDBError переводит ошибки драйвера в сентинели слоя хранения.
// Существование ссылок не проверяется заранее: единственный авторитет - БД.
func translateDBError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return apperrors.ErrConflict
		case pgForeignKeyViolation:
			return apperrors.ErrForeignKeyViolation
		}
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	return err
}
