package routes

import (
	"rental-system/internal/controllers"
	"rental-system/internal/repositories"
	"rental-system/internal/services"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runRoleRouter(e *echo.Echo, dbConn *pgxpool.Pool, logger *zap.Logger) {
	var (
		roleRepository = repositories.NewRoleRepository(dbConn)
		roleService    = services.NewRoleService(roleRepository, logger)
		roleCtrl       = controllers.NewRoleController(roleService, logger)
	)

	g := e.Group("/roles")
	g.GET("/", roleCtrl.GetRoles)
	g.GET("/:id", roleCtrl.FindRole)
	g.POST("/", roleCtrl.CreateRole)
}
