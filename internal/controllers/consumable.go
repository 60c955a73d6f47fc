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

type ConsumableController struct {
	consumableService services.ConsumableServiceInterface
	logger            *zap.Logger
}

func NewConsumableController(consumableService services.ConsumableServiceInterface, logger *zap.Logger) *ConsumableController {
	return &ConsumableController{consumableService: consumableService, logger: logger}
}

func (c *ConsumableController) GetConsumables(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	limit, offset := utils.ParsePaginationParams(ctx.Request().URL.Query())

	list, total, err := c.consumableService.GetConsumables(reqCtx, limit, offset)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessListResponse(ctx, list, "Список расходников успешно получен", total, limit, offset)
}

func (c *ConsumableController) FindConsumable(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный ID", err,
				map[string]interface{}{"param": ctx.Param("id")}),
			c.logger)
	}

	res, err := c.consumableService.FindConsumable(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Расходник успешно найден", http.StatusOK)
}

func (c *ConsumableController) CreateConsumable(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.CreateConsumableDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверное тело запроса", err, nil),
			c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	created, err := c.consumableService.CreateConsumable(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, created, "Расходник успешно создан", http.StatusCreated)
}
