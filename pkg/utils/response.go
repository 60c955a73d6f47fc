package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	apperrors "rental-system/pkg/errors"
	"rental-system/pkg/types"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type HTTPResponse struct {
	Status  bool        `json:"status"`
	Body    interface{} `json:"body,omitempty"`
	Message string      `json:"message"`
}

type ListBody struct {
	List       interface{}       `json:"list"`
	Pagination *types.Pagination `json:"pagination"`
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int) error {
	return ctx.JSON(code, &HTTPResponse{
		Status:  true,
		Body:    body,
		Message: message,
	})
}

func SuccessListResponse(ctx echo.Context, list interface{}, message string, total, limit, offset uint64) error {
	return ctx.JSON(http.StatusOK, &HTTPResponse{
		Status: true,
		Body: ListBody{
			List: list,
			Pagination: &types.Pagination{
				TotalCount: total,
				Limit:      limit,
				Offset:     offset,
			},
		},
		Message: message,
	})
}

// errorList сопоставляет сентинельные ошибки слоя хранения HTTP-кодам.
var errorList = map[error]int{
	apperrors.ErrNotFound:            http.StatusNotFound,
	apperrors.ErrConflict:            http.StatusConflict,
	apperrors.ErrLoginTaken:          http.StatusConflict,
	apperrors.ErrForeignKeyViolation: http.StatusConflict,
	apperrors.ErrBadRequest:          http.StatusBadRequest,
}

func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Err != nil {
			logger.Error("HTTP Error",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
				zap.Any("context", httpErr.Context),
			)
		}
		return c.JSON(httpErr.Code, &HTTPResponse{Status: false, Message: httpErr.Message})
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var msgs []string
		for _, e := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("Поле '%s' не прошло проверку '%s'", e.Field(), e.Tag()))
		}
		return c.JSON(http.StatusBadRequest, &HTTPResponse{
			Status:  false,
			Message: "Ошибка валидации: " + strings.Join(msgs, "; "),
		})
	}

	for sentinel, statusCode := range errorList {
		if errors.Is(err, sentinel) {
			return c.JSON(statusCode, &HTTPResponse{Status: false, Message: sentinel.Error()})
		}
	}

	logger.Error("Unexpected Error", zap.Error(err))
	return c.JSON(http.StatusInternalServerError, &HTTPResponse{
		Status:  false,
		Message: "Внутренняя ошибка сервера",
	})
}
