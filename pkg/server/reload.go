package server

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// ReloadMessageType represents the type of reload message.
type ReloadMessageType string

const (
	ReloadTypeFull  ReloadMessageType = "reload"
	ReloadTypeError ReloadMessageType = "error"
)

// ReloadMessage is sent to browsers via WebSocket. The autoreload client
// script reloads the page when it receives a "reload" message.
type ReloadMessage struct {
	Type  ReloadMessageType `json:"type"`
	Error string            `json:"error,omitempty"`
}

// reloadClient pairs a connection with its write lock; gorilla/websocket
// allows at most one concurrent writer per connection.
type reloadClient struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

func (c *reloadClient) send(msg ReloadMessage) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteJSON(msg)
}

// ReloadNotifier manages WebSocket connections for autoreload.
type ReloadNotifier struct {
	mu       sync.RWMutex
	clients  map[*websocket.Conn]*reloadClient
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewReloadNotifier creates a reload notifier.
func NewReloadNotifier(logger *slog.Logger) *ReloadNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReloadNotifier{
		clients: make(map[*websocket.Conn]*reloadClient),
		logger:  logger.With("component", "reload"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// The reload channel carries no state; any origin may listen.
				return true
			},
		},
	}
}

// HandleWebSocket upgrades the connection and keeps it registered until the
// client disconnects.
func (n *ReloadNotifier) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := n.upgrader.Upgrade(w, r, nil)
	if err != nil {
		n.logger.Debug("websocket upgrade failed", "error", err)
		return
	}

	n.mu.Lock()
	n.clients[conn] = &reloadClient{conn: conn}
	n.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	n.mu.Lock()
	delete(n.clients, conn)
	n.mu.Unlock()
	conn.Close()
}

// NotifyReload sends a full page reload message to all connected clients.
func (n *ReloadNotifier) NotifyReload() {
	n.broadcast(ReloadMessage{Type: ReloadTypeFull})
}

// NotifyError sends an error message to all connected clients.
func (n *ReloadNotifier) NotifyError(msg string) {
	n.broadcast(ReloadMessage{Type: ReloadTypeError, Error: msg})
}

// ClientCount reports the number of connected clients.
func (n *ReloadNotifier) ClientCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.clients)
}

func (n *ReloadNotifier) broadcast(msg ReloadMessage) {
	n.mu.RLock()
	clients := make([]*reloadClient, 0, len(n.clients))
	for _, c := range n.clients {
		clients = append(clients, c)
	}
	n.mu.RUnlock()

	for _, c := range clients {
		if err := c.send(msg); err != nil {
			n.logger.Debug("failed to notify client", "error", err)
		}
	}
}
