package routes

import (
	"github.com/gin-gonic/gin"

	realtimehandlers "flowdesk/internal/interfaces/http/handlers/realtime"
)

type RealtimeRouteConfig struct {
	HubHandler *realtimehandlers.HubHandler
}

// SetupRealtimeRoutes registers the websocket endpoint. The endpoint is
// unauthenticated; clients pick their own opaque id.
func SetupRealtimeRoutes(engine *gin.Engine, config *RealtimeRouteConfig) {
	engine.GET("/ws/:client_id", config.HubHandler.ClientWS)
}
