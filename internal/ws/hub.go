package ws

import (
	"sync"

	"stayhub-notifications/internal/entity"
	"stayhub-notifications/pkg/logger"
)

// Conn is the slice of a websocket connection the hub needs. Satisfied by
// *websocket.Conn.
type Conn interface {
	WriteJSON(v interface{}) error
	Close() error
}

type client struct {
	conn Conn
	// writeMu serializes writes; gorilla connections allow one writer at a time.
	writeMu sync.Mutex
}

// Hub maps authenticated user identity to the set of live push connections
// for that identity. It is the authorization boundary of the push path: only
// registered connections of a user can ever receive that user's payloads.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[Conn]*client
	logger  *logger.Logger
}

func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		clients: make(map[string]map[Conn]*client),
		logger:  log,
	}
}

// Register adds a connection under an identity. Callers must only pass an
// identity verified by the handshake authenticator.
func (h *Hub) Register(userID string, conn Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.clients[userID] == nil {
		h.clients[userID] = make(map[Conn]*client)
	}
	h.clients[userID][conn] = &client{conn: conn}
	h.logger.Info("Registered push connection for user %s (%d active)", userID, len(h.clients[userID]))
}

// Unregister removes a connection on teardown. Unknown connections are a
// no-op.
func (h *Hub) Unregister(userID string, conn Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.clients[userID]
	if !ok {
		return
	}
	if _, ok := set[conn]; !ok {
		return
	}
	delete(set, conn)
	if len(set) == 0 {
		delete(h.clients, userID)
	}
	h.logger.Info("Unregistered push connection for user %s", userID)
}

// ConnectionCount reports the live connections for a user.
func (h *Hub) ConnectionCount(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

// Deliver writes the notification to every registered connection of the
// user. Writes happen outside the registry lock and concurrently per
// connection, so one slow client never stalls the rest. Failed connections
// are evicted. Zero registered connections is fine: the notification is
// already durably stored.
func (h *Hub) Deliver(userID string, notification *entity.Notification) {
	h.mu.RLock()
	targets := make([]*client, 0, len(h.clients[userID]))
	for _, cl := range h.clients[userID] {
		targets = append(targets, cl)
	}
	h.mu.RUnlock()

	for _, cl := range targets {
		go func(cl *client) {
			cl.writeMu.Lock()
			err := cl.conn.WriteJSON(notification)
			cl.writeMu.Unlock()
			if err != nil {
				h.logger.Warn("Failed to push to user %s, evicting connection: %v", userID, err)
				h.Unregister(userID, cl.conn)
				cl.conn.Close()
			}
		}(cl)
	}
}

// Shutdown closes every registered connection. Called on process teardown.
func (h *Hub) Shutdown() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for userID, set := range h.clients {
		for conn := range set {
			conn.Close()
		}
		delete(h.clients, userID)
	}
	h.logger.Info("Push hub shut down")
}
