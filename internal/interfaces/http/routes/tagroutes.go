package routes

import (
	"github.com/gin-gonic/gin"

	taghandlers "flowdesk/internal/interfaces/http/handlers/tag"
	"flowdesk/internal/interfaces/http/middleware"
)

type TagRouteConfig struct {
	TagHandler     *taghandlers.TagHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTagRoutes(engine *gin.Engine, config *TagRouteConfig) {
	tags := engine.Group("/tags")
	tags.Use(config.AuthMiddleware.RequireAuth())
	{
		tags.GET("", config.TagHandler.ListTags)
		tags.POST("", config.AuthMiddleware.RequireStaff(), config.TagHandler.CreateTag)
	}
}
