package routes

import (
	"rental-system/internal/controllers"
	"rental-system/internal/repositories"
	"rental-system/internal/services"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runEquipmentReturnRouter(e *echo.Echo, dbConn *pgxpool.Pool, logger *zap.Logger) {
	var (
		returnRepository = repositories.NewEquipmentReturnRepository(dbConn)
		returnService    = services.NewEquipmentReturnService(returnRepository, logger)
		returnCtrl       = controllers.NewEquipmentReturnController(returnService, logger)
	)

	g := e.Group("/equipment-returns")
	g.GET("/", returnCtrl.GetReturns)
	g.GET("/:id", returnCtrl.FindReturn)
	g.POST("/", returnCtrl.CreateReturn)
}
