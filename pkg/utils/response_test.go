package utils

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "rental-system/pkg/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestErrorResponseSentinels(t *testing.T) {
	testCases := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{"не найдено", apperrors.ErrNotFound, http.StatusNotFound},
		{"конфликт", apperrors.ErrConflict, http.StatusConflict},
		{"логин занят", apperrors.ErrLoginTaken, http.StatusConflict},
		{"нарушение внешнего ключа", apperrors.ErrForeignKeyViolation, http.StatusConflict},
		{"плохой запрос", apperrors.ErrBadRequest, http.StatusBadRequest},
		{"обёрнутая сентинельная ошибка", fmt.Errorf("слой хранения: %w", apperrors.ErrNotFound), http.StatusNotFound},
		{"неизвестная ошибка", errors.New("что-то пошло не так"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, rec := newTestContext()

			err := ErrorResponse(ctx, tc.err, zap.NewNop())
			assert.NoError(t, err)
			assert.Equal(t, tc.expectedCode, rec.Code)
			assert.Contains(t, rec.Body.String(), `"status":false`)
		})
	}
}

func TestErrorResponseHttpError(t *testing.T) {
	ctx, rec := newTestContext()

	httpErr := apperrors.NewHttpError(http.StatusBadRequest, "Неверный ID", errors.New("parse error"), nil)
	err := ErrorResponse(ctx, httpErr, zap.NewNop())

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Неверный ID")
}

func TestSuccessListResponse(t *testing.T) {
	ctx, rec := newTestContext()

	err := SuccessListResponse(ctx, []string{"a", "b"}, "ок", 42, 10, 20)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_count":42`)
	assert.Contains(t, rec.Body.String(), `"limit":10`)
	assert.Contains(t, rec.Body.String(), `"offset":20`)
}
