// Package realtime provides the WebSocket endpoint for ticket update streaming.
package realtime

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"flowdesk/internal/infrastructure/services"
	"flowdesk/internal/shared/config"
	"flowdesk/internal/shared/goroutine"
	"flowdesk/internal/shared/logger"
	"flowdesk/internal/shared/utils"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Should be configured in production
	},
}

// HubHandler upgrades client connections and pumps events between the
// hub and the socket.
type HubHandler struct {
	hub       *services.ClientHub
	writeWait time.Duration
	pongWait  time.Duration
	logger    logger.Interface
}

// NewHubHandler creates a new HubHandler.
func NewHubHandler(hub *services.ClientHub, cfg config.WebsocketConfig, log logger.Interface) *HubHandler {
	writeWait := time.Duration(cfg.WriteWaitSeconds) * time.Second
	if writeWait <= 0 {
		writeWait = 10 * time.Second
	}
	pongWait := time.Duration(cfg.PongWaitSeconds) * time.Second
	if pongWait <= 0 {
		pongWait = 60 * time.Second
	}

	return &HubHandler{
		hub:       hub,
		writeWait: writeWait,
		pongWait:  pongWait,
		logger:    log,
	}
}

// ClientWS handles WebSocket connections from clients.
// GET /ws/:client_id
func (h *HubHandler) ClientWS(c *gin.Context) {
	clientID := c.Param("client_id")
	if clientID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "client id is required")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Errorw("failed to upgrade to websocket",
			"error", err,
			"client_id", clientID,
			"ip", c.ClientIP(),
		)
		return
	}

	clientConn := h.hub.Register(clientID, conn)

	goroutine.SafeGo(h.logger, "realtime-write-pump", func() {
		h.writePump(clientID, conn, clientConn.Send)
	})
	h.readPump(clientID, conn, clientConn)
}

// readPump reads inbound text from the client socket. Every received
// message is acknowledged back to the sender only; it is never broadcast.
func (h *HubHandler) readPump(clientID string, conn *websocket.Conn, clientConn *services.ClientConn) {
	defer func() {
		h.hub.Unregister(clientID, clientConn)
		conn.Close()
	}()

	conn.SetReadLimit(65536)
	conn.SetReadDeadline(time.Now().Add(h.pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(h.pongWait))
		return nil
	})

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Warnw("client websocket read error",
					"error", err,
					"client_id", clientID,
				)
			}
			break
		}

		h.hub.SendToClient(clientID, &services.Event{
			Type:      services.EventMessage,
			Data:      "Message received: " + string(message),
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// writePump writes queued events to the client socket and keeps the
// connection alive with pings.
func (h *HubHandler) writePump(clientID string, conn *websocket.Conn, send chan []byte) {
	pingPeriod := h.pongWait * 9 / 10
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case payload, ok := <-send:
			conn.SetWriteDeadline(time.Now().Add(h.writeWait))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				h.logger.Warnw("client websocket write error",
					"error", err,
					"client_id", clientID,
				)
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(h.writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
