package http

import (
	"net/http"
	"strings"
	"time"

	"stayhub-notifications/internal/ws"
	"stayhub-notifications/pkg/jwt"
	"stayhub-notifications/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// connectFrameTimeout bounds how long a freshly upgraded connection may sit
// without sending its connect frame.
const connectFrameTimeout = 30 * time.Second

// connectFrame is the first protocol frame a client must send after the
// upgrade. The authorization field, when present, takes precedence over the
// token stashed at handshake time.
type connectFrame struct {
	Type          string `json:"type"`
	Authorization string `json:"authorization"`
}

type WSHandler struct {
	hub        *ws.Hub
	jwtService *jwt.Service
	logger     *logger.Logger
}

func NewWSHandler(hub *ws.Hub, jwtService *jwt.Service, log *logger.Logger) *WSHandler {
	return &WSHandler{
		hub:        hub,
		jwtService: jwtService,
		logger:     log,
	}
}

// HandleWebSocket runs the two-gate handshake. Gate one: a bearer credential
// must be present on the upgrade request, or the upgrade is refused outright.
// The credential is only stashed here, not yet validated. Gate two: the first
// protocol frame must carry (or fall back to) a credential that validates,
// and only then is the connection registered under the verified identity.
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	stashed := extractToken(c.Query("token"), c.GetHeader("Authorization"))
	if stashed == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token required"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("Failed to upgrade connection to WebSocket: %v", err)
		return
	}

	userID, ok := h.authenticate(conn, stashed)
	if !ok {
		conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "authentication failed"),
			time.Now().Add(time.Second),
		)
		conn.Close()
		return
	}

	h.hub.Register(userID, conn)
	defer func() {
		h.hub.Unregister(userID, conn)
		conn.Close()
		h.logger.Info("WebSocket disconnected for user %s", userID)
	}()

	h.logger.Info("WebSocket connected for user %s", userID)

	// Inbound frames carry nothing after connect; the loop only services
	// control frames and detects teardown.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// authenticate waits for the connect frame and validates its credential,
// preferring a frame-level one over the token stashed at upgrade time.
func (h *WSHandler) authenticate(conn *websocket.Conn, stashed string) (string, bool) {
	conn.SetReadDeadline(time.Now().Add(connectFrameTimeout))
	defer conn.SetReadDeadline(time.Time{})

	var frame connectFrame
	if err := conn.ReadJSON(&frame); err != nil {
		h.logger.Warn("Failed to read connect frame: %v", err)
		return "", false
	}
	if frame.Type != "connect" {
		h.logger.Warn("First frame was %q, expected connect", frame.Type)
		return "", false
	}

	token := extractToken("", frame.Authorization)
	if token == "" {
		token = stashed
	}

	claims, err := h.jwtService.ValidateToken(token)
	if err != nil {
		h.logger.Warn("Rejected websocket connect frame: %v", err)
		return "", false
	}

	return claims.UserID, true
}

// extractToken prefers a non-blank query parameter over the Authorization
// header and strips an optional Bearer prefix from the latter.
func extractToken(queryToken, authHeader string) string {
	if token := strings.TrimSpace(queryToken); token != "" {
		return token
	}

	token := strings.TrimSpace(authHeader)
	token = strings.TrimPrefix(token, "Bearer ")
	return strings.TrimSpace(token)
}
