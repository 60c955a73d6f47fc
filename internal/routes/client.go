package routes

import (
	"rental-system/internal/controllers"
	"rental-system/internal/repositories"
	"rental-system/internal/services"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runClientRouter(e *echo.Echo, dbConn *pgxpool.Pool, logger *zap.Logger) {
	var (
		clientRepository = repositories.NewClientRepository(dbConn)
		clientService    = services.NewClientService(clientRepository, logger)
		clientCtrl       = controllers.NewClientController(clientService, logger)
	)

	g := e.Group("/clients")
	g.GET("/", clientCtrl.GetClients)
	g.GET("/:id", clientCtrl.FindClient)
	g.POST("/", clientCtrl.CreateClient)
}
