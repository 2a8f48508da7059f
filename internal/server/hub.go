package server

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Message is sent to reload clients.
type Message struct {
	Type string `json:"type"`
}

// ReloadMessage tells a page to reload itself.
var ReloadMessage = Message{Type: "reload"}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub tracks the open reload sockets, keyed by a per-connection id.
type Hub struct {
	log *slog.Logger

	mu      sync.Mutex
	clients map[string]*websocket.Conn
}

// NewHub creates an empty hub.
func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		log:     log,
		clients: make(map[string]*websocket.Conn),
	}
}

// ServeHTTP upgrades the request and holds the socket until the page goes
// away. Clients never send anything meaningful; reads only detect closure.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("reload socket upgrade failed", "err", err)
		return
	}

	id := uuid.NewString()
	h.mu.Lock()
	h.clients[id] = conn
	h.mu.Unlock()
	h.log.Debug("reload client connected", "id", id)

	defer func() {
		h.mu.Lock()
		delete(h.clients, id)
		h.mu.Unlock()
		conn.Close()
		h.log.Debug("reload client disconnected", "id", id)
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Debug("reload socket read", "id", id, "err", err)
			}
			return
		}
	}
}

// Broadcast sends msg to every client and returns how many received it.
// Clients that fail the write are dropped.
func (h *Hub) Broadcast(msg Message) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	sent := 0
	for id, conn := range h.clients {
		if err := conn.WriteJSON(msg); err != nil {
			h.log.Debug("reload socket write", "id", id, "err", err)
			conn.Close()
			delete(h.clients, id)
			continue
		}
		sent++
	}
	return sent
}

// Count returns the number of connected clients.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, conn := range h.clients {
		conn.Close()
		delete(h.clients, id)
	}
}
