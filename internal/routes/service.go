package routes

import (
	"rental-system/internal/controllers"
	"rental-system/internal/repositories"
	"rental-system/internal/services"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runServiceRouter(e *echo.Echo, dbConn *pgxpool.Pool, logger *zap.Logger) {
	var (
		serviceRepository = repositories.NewServiceRepository(dbConn)
		serviceService    = services.NewServiceService(serviceRepository, logger)
		serviceCtrl       = controllers.NewServiceController(serviceService, logger)
	)

	g := e.Group("/services")
	g.GET("/", serviceCtrl.GetServices)
	g.GET("/:id", serviceCtrl.FindService)
	g.POST("/", serviceCtrl.CreateService)
}
