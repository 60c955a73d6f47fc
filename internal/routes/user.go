package routes

import (
	"rental-system/internal/controllers"
	"rental-system/internal/repositories"
	"rental-system/internal/services"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runUserRouter(e *echo.Echo, dbConn *pgxpool.Pool, logger *zap.Logger) {
	var (
		userRepository = repositories.NewUserRepository(dbConn)
		userService    = services.NewUserService(userRepository, logger)
		userCtrl       = controllers.NewUserController(userService, logger)
	)

	g := e.Group("/users")
	g.GET("/", userCtrl.GetUsers)
	g.GET("/:id", userCtrl.FindUser)
	g.POST("/", userCtrl.CreateUser)
}
