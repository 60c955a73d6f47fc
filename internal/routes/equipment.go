package routes

import (
	"rental-system/internal/controllers"
	"rental-system/internal/repositories"
	"rental-system/internal/services"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runEquipmentRouter(e *echo.Echo, dbConn *pgxpool.Pool, logger *zap.Logger) {
	var (
		equipmentRepository = repositories.NewEquipmentRepository(dbConn)
		categoryRepository  = repositories.NewEquipmentCategoryRepository(dbConn)
		equipmentService    = services.NewEquipmentService(equipmentRepository, logger)
		importService       = services.NewEquipmentImportService(equipmentRepository, categoryRepository, logger)
		equipmentCtrl       = controllers.NewEquipmentController(equipmentService, importService, logger)
	)

	g := e.Group("/equipment")
	g.GET("/", equipmentCtrl.GetEquipment)
	g.GET("/:id", equipmentCtrl.FindEquipment)
	g.POST("/", equipmentCtrl.CreateEquipment)
	g.POST("/import", equipmentCtrl.ImportEquipment)
}
