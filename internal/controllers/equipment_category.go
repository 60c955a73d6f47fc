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

type EquipmentCategoryController struct {
	categoryService services.EquipmentCategoryServiceInterface
	logger          *zap.Logger
}

func NewEquipmentCategoryController(categoryService services.EquipmentCategoryServiceInterface, logger *zap.Logger) *EquipmentCategoryController {
	return &EquipmentCategoryController{categoryService: categoryService, logger: logger}
}

func (c *EquipmentCategoryController) GetCategories(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	limit, offset := utils.ParsePaginationParams(ctx.Request().URL.Query())

	list, total, err := c.categoryService.GetCategories(reqCtx, limit, offset)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessListResponse(ctx, list, "Список категорий успешно получен", total, limit, offset)
}

func (c *EquipmentCategoryController) FindCategory(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный ID", err,
				map[string]interface{}{"param": ctx.Param("id")}),
			c.logger)
	}

	res, err := c.categoryService.FindCategory(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Категория успешно найдена", http.StatusOK)
}

func (c *EquipmentCategoryController) CreateCategory(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.CreateEquipmentCategoryDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверное тело запроса", err, nil),
			c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	created, err := c.categoryService.CreateCategory(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, created, "Категория успешно создана", http.StatusCreated)
}
