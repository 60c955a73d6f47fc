package repositories

import (
	"errors"
	"fmt"
	"testing"

	apperrors "rental-system/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestTranslateDBError(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected error
	}{
		{
			"нарушение уникальности",
			&pgconn.PgError{Code: pgUniqueViolation},
			apperrors.ErrConflict,
		},
		{
			"нарушение внешнего ключа",
			&pgconn.PgError{Code: pgForeignKeyViolation},
			apperrors.ErrForeignKeyViolation,
		},
		{
			"обёрнутая ошибка драйвера",
			fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgForeignKeyViolation}),
			apperrors.ErrForeignKeyViolation,
		},
		{
			"пустая выборка",
			pgx.ErrNoRows,
			apperrors.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, translateDBError(tc.err), tc.expected)
		})
	}
}

func TestTranslateDBErrorPassthrough(t *testing.T) {
	original := errors.New("connection refused")
	assert.Equal(t, original, translateDBError(original))

	otherPgErr := &pgconn.PgError{Code: "42P01"}
	assert.Equal(t, error(otherPgErr), translateDBError(otherPgErr))
}
