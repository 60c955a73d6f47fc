package routes

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// InitRouter собирает все маршруты приложения: каждый доменный роутер
// сам строит свою цепочку репозиторий -> сервис -> контроллер.
func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, logger *zap.Logger) {
	logger.Info("InitRouter: Начало создания маршрутов")

	e.GET("/", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, map[string]string{
			"message": "Welcome to Igora Rental API",
		})
	})

	runRoleRouter(e, dbConn, logger)
	runUserRouter(e, dbConn, logger)
	runClientRouter(e, dbConn, logger)
	runEquipmentCategoryRouter(e, dbConn, logger)
	runEquipmentRouter(e, dbConn, logger)
	runServiceRouter(e, dbConn, logger)
	runOrderRouter(e, dbConn, logger)
	runOrderServiceRouter(e, dbConn, logger)
	runEquipmentReturnRouter(e, dbConn, logger)
	runConsumableRouter(e, dbConn, logger)
	runConsumableTransactionRouter(e, dbConn, logger)

	logger.Info("InitRouter: Создание маршрутов завершено")
}
