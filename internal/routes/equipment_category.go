package routes

import (
	"rental-system/internal/controllers"
	"rental-system/internal/repositories"
	"rental-system/internal/services"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runEquipmentCategoryRouter(e *echo.Echo, dbConn *pgxpool.Pool, logger *zap.Logger) {
	var (
		categoryRepository = repositories.NewEquipmentCategoryRepository(dbConn)
		categoryService    = services.NewEquipmentCategoryService(categoryRepository, logger)
		categoryCtrl       = controllers.NewEquipmentCategoryController(categoryService, logger)
	)

	g := e.Group("/equipment-categories")
	g.GET("/", categoryCtrl.GetCategories)
	g.GET("/:id", categoryCtrl.FindCategory)
	g.POST("/", categoryCtrl.CreateCategory)
}
