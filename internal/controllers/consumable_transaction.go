package controllers

import (
	"net/http"
	"strconv"

	"rental-system/internal/dto"
	"rental-system/internal/services"
	apperrors "rental-system/pkg/errors"
	"rental-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ConsumableTransactionController struct {
	transactionService services.ConsumableTransactionServiceInterface
	logger             *zap.Logger
}

func NewConsumableTransactionController(transactionService services.ConsumableTransactionServiceInterface, logger *zap.Logger) *ConsumableTransactionController {
	return &ConsumableTransactionController{transactionService: transactionService, logger: logger}
}

func (c *ConsumableTransactionController) GetTransactions(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	limit, offset := utils.ParsePaginationParams(ctx.Request().URL.Query())

	list, total, err := c.transactionService.GetTransactions(reqCtx, limit, offset)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessListResponse(ctx, list, "Список движений расходников успешно получен", total, limit, offset)
}

func (c *ConsumableTransactionController) FindTransaction(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный ID", err,
				map[string]interface{}{"param": ctx.Param("id")}),
			c.logger)
	}

	res, err := c.transactionService.FindTransaction(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Движение расходника успешно найдено", http.StatusOK)
}

func (c *ConsumableTransactionController) CreateTransaction(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.CreateConsumableTransactionDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверное тело запроса", err, nil),
			c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	created, err := c.transactionService.CreateTransaction(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, created, "Движение расходника успешно создано", http.StatusCreated)
}
