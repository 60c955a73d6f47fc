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

type OrderServiceController struct {
	lineService services.OrderLineServiceInterface
	logger      *zap.Logger
}

func NewOrderServiceController(lineService services.OrderLineServiceInterface, logger *zap.Logger) *OrderServiceController {
	return &OrderServiceController{lineService: lineService, logger: logger}
}

func (c *OrderServiceController) GetOrderServices(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	limit, offset := utils.ParsePaginationParams(ctx.Request().URL.Query())

	list, total, err := c.lineService.GetOrderServices(reqCtx, limit, offset)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessListResponse(ctx, list, "Список позиций заказов успешно получен", total, limit, offset)
}

func (c *OrderServiceController) FindOrderService(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный ID", err,
				map[string]interface{}{"param": ctx.Param("id")}),
			c.logger)
	}

	res, err := c.lineService.FindOrderService(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Позиция заказа успешно найдена", http.StatusOK)
}

func (c *OrderServiceController) CreateOrderService(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.CreateOrderServiceDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверное тело запроса", err, nil),
			c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	created, err := c.lineService.CreateOrderService(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, created, "Позиция заказа успешно создана", http.StatusCreated)
}
