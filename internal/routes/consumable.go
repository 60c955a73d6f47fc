package routes

import (
	"rental-system/internal/controllers"
	"rental-system/internal/repositories"
	"rental-system/internal/services"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runConsumableRouter(e *echo.Echo, dbConn *pgxpool.Pool, logger *zap.Logger) {
	var (
		consumableRepository = repositories.NewConsumableRepository(dbConn)
		consumableService    = services.NewConsumableService(consumableRepository, logger)
		consumableCtrl       = controllers.NewConsumableController(consumableService, logger)
	)

	g := e.Group("/consumables")
	g.GET("/", consumableCtrl.GetConsumables)
	g.GET("/:id", consumableCtrl.FindConsumable)
	g.POST("/", consumableCtrl.CreateConsumable)
}
