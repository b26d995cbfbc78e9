package routes

import (
	"github.com/gin-gonic/gin"

	userhandlers "flowdesk/internal/interfaces/http/handlers/user"
	"flowdesk/internal/interfaces/http/middleware"
)

type UserRouteConfig struct {
	UserHandler    *userhandlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupUserRoutes(engine *gin.Engine, config *UserRouteConfig) {
	users := engine.Group("/users")
	users.Use(config.AuthMiddleware.RequireAuth())
	{
		// Specific paths before parameterized ones.
		users.GET("/me", config.UserHandler.Me)
		users.GET("", config.AuthMiddleware.RequireStaff(), config.UserHandler.ListUsers)
		users.GET("/:id", config.AuthMiddleware.RequireStaff(), config.UserHandler.GetUser)
	}
}
