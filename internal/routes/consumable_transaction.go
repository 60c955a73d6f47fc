package routes

import (
	"rental-system/internal/controllers"
	"rental-system/internal/repositories"
	"rental-system/internal/services"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runConsumableTransactionRouter(e *echo.Echo, dbConn *pgxpool.Pool, logger *zap.Logger) {
	var (
		transactionRepository = repositories.NewConsumableTransactionRepository(dbConn)
		transactionService    = services.NewConsumableTransactionService(transactionRepository, logger)
		transactionCtrl       = controllers.NewConsumableTransactionController(transactionService, logger)
	)

	g := e.Group("/consumable-transactions")
	g.GET("/", transactionCtrl.GetTransactions)
	g.GET("/:id", transactionCtrl.FindTransaction)
	g.POST("/", transactionCtrl.CreateTransaction)
}
