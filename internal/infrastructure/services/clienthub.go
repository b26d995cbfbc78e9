// Package services provides infrastructure services.
package services

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"flowdesk/internal/shared/logger"
)

// Update event types pushed to connected clients.
const (
	EventTicketCreated = "ticket_created"
	EventTicketUpdated = "ticket_updated"
	EventTicketDeleted = "ticket_deleted"
	EventCommentAdded  = "comment_added"
	EventMessage       = "message"
)

const defaultSendBufferSize = 256

// Event is the JSON envelope delivered over client WebSocket connections.
type Event struct {
	Type      string `json:"type"`
	TicketID  uint   `json:"ticket_id,omitempty"`
	Data      any    `json:"data,omitempty"`
	Timestamp string `json:"timestamp"`
}

// ClientConn represents a single client WebSocket connection.
type ClientConn struct {
	ClientID    string
	Conn        *websocket.Conn
	Send        chan []byte
	ConnectedAt time.Time
}

// ClientHub manages WebSocket connections keyed by client id and fans
// ticket update events out to every connected client. A second connection
// under an id already in use replaces the first; the displaced connection
// is closed and stops receiving events.
type ClientHub struct {
	clients   map[string]*ClientConn
	clientsMu sync.RWMutex

	sendBufferSize int

	logger logger.Interface
}

// NewClientHub creates a new ClientHub instance. A non-positive
// sendBufferSize falls back to the default.
func NewClientHub(log logger.Interface, sendBufferSize int) *ClientHub {
	if sendBufferSize <= 0 {
		sendBufferSize = defaultSendBufferSize
	}
	return &ClientHub{
		clients:        make(map[string]*ClientConn),
		sendBufferSize: sendBufferSize,
		logger:         log,
	}
}

// Register adds a client connection under the given id. An existing
// connection under the same id is closed and replaced.
func (h *ClientHub) Register(clientID string, conn *websocket.Conn) *ClientConn {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()

	if existing, ok := h.clients[clientID]; ok {
		close(existing.Send)
		if existing.Conn != nil {
			existing.Conn.Close()
		}
	}

	clientConn := &ClientConn{
		ClientID:    clientID,
		Conn:        conn,
		Send:        make(chan []byte, h.sendBufferSize),
		ConnectedAt: time.Now(),
	}
	h.clients[clientID] = clientConn

	h.logger.Infow("client connected via websocket",
		"client_id", clientID,
	)

	return clientConn
}

// Unregister removes a client connection. It only removes the given handle,
// so a handler cleaning up after being replaced does not evict its
// replacement. Unregistering an unknown client is a silent no-op.
func (h *ClientHub) Unregister(clientID string, conn *ClientConn) {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()

	current, ok := h.clients[clientID]
	if !ok {
		return
	}
	if conn != nil && current != conn {
		return
	}

	close(current.Send)
	delete(h.clients, clientID)

	h.logger.Infow("client disconnected",
		"client_id", clientID,
	)
}

// IsClientConnected checks if a client is connected.
func (h *ClientHub) IsClientConnected(clientID string) bool {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()
	_, ok := h.clients[clientID]
	return ok
}

// ConnectedClientIDs returns the ids of all connected clients.
func (h *ClientHub) ConnectedClientIDs() []string {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()

	ids := make([]string, 0, len(h.clients))
	for id := range h.clients {
		ids = append(ids, id)
	}
	return ids
}

// SendToClient delivers an event to a single client. Sending to an unknown
// client is a no-op. A client whose send buffer is full is dropped from the
// hub; the failure never reaches the caller.
func (h *ClientHub) SendToClient(clientID string, event *Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		h.logger.Errorw("failed to marshal client event",
			"client_id", clientID,
			"type", event.Type,
			"error", err,
		)
		return
	}

	// The send happens under the read lock: a channel reachable from the
	// map is only closed under the write lock, so it cannot be closed
	// mid-send. The send is non-blocking, so holding the lock is cheap.
	h.clientsMu.RLock()
	clientConn, ok := h.clients[clientID]
	full := false
	if ok {
		select {
		case clientConn.Send <- payload:
		default:
			full = true
		}
	}
	h.clientsMu.RUnlock()

	if full {
		h.dropClient(clientID, clientConn)
	}
}

// Broadcast delivers an event to every connected client. The payload is
// marshaled once; clients whose send buffer is full are dropped so one slow
// consumer cannot stall the rest.
func (h *ClientHub) Broadcast(event *Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		h.logger.Errorw("failed to marshal broadcast event",
			"type", event.Type,
			"error", err,
		)
		return
	}

	// Sends happen under the read lock so no channel can be closed
	// mid-send by a concurrent Register, Unregister or drop: closes only
	// happen under the write lock, and every send is non-blocking.
	// Overfull clients are dropped after the lock is released.
	h.clientsMu.RLock()
	var full []*ClientConn
	for _, clientConn := range h.clients {
		select {
		case clientConn.Send <- payload:
		default:
			full = append(full, clientConn)
		}
	}
	h.clientsMu.RUnlock()

	for _, clientConn := range full {
		h.dropClient(clientConn.ClientID, clientConn)
	}
}

// SendTicketUpdate broadcasts a ticket change to all connected clients.
func (h *ClientHub) SendTicketUpdate(ticketID uint, updateType string, data any) {
	h.Broadcast(&Event{
		Type:      updateType,
		TicketID:  ticketID,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// dropClient evicts a client whose send buffer overflowed.
func (h *ClientHub) dropClient(clientID string, conn *ClientConn) {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()

	current, ok := h.clients[clientID]
	if !ok || current != conn {
		return
	}

	close(current.Send)
	delete(h.clients, clientID)
	if current.Conn != nil {
		current.Conn.Close()
	}

	h.logger.Warnw("dropping client with full send buffer",
		"client_id", clientID,
	)
}
