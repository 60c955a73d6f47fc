package routes

import (
	"rental-system/internal/controllers"
	"rental-system/internal/repositories"
	"rental-system/internal/services"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runOrderServiceRouter(e *echo.Echo, dbConn *pgxpool.Pool, logger *zap.Logger) {
	var (
		lineRepository = repositories.NewOrderServiceRepository(dbConn)
		lineService    = services.NewOrderLineService(lineRepository, logger)
		lineCtrl       = controllers.NewOrderServiceController(lineService, logger)
	)

	g := e.Group("/order-services")
	g.GET("/", lineCtrl.GetOrderServices)
	g.GET("/:id", lineCtrl.FindOrderService)
	g.POST("/", lineCtrl.CreateOrderService)
}
