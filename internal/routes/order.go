package routes

import (
	"rental-system/internal/controllers"
	"rental-system/internal/repositories"
	"rental-system/internal/services"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runOrderRouter(e *echo.Echo, dbConn *pgxpool.Pool, logger *zap.Logger) {
	var (
		orderRepository = repositories.NewOrderRepository(dbConn)
		orderService    = services.NewOrderService(orderRepository, logger)
		orderCtrl       = controllers.NewOrderController(orderService, logger)
	)

	g := e.Group("/orders")
	g.GET("/", orderCtrl.GetOrders)
	g.GET("/:id", orderCtrl.FindOrder)
	g.POST("/", orderCtrl.CreateOrder)
}
