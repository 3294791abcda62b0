package handler

import (
	"net/http"
	"strings"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	ws "taskdesk/internal/infrastructure/websocket"
	"taskdesk/pkg/jwt"
	"taskdesk/pkg/logger"
)

type WebSocketHandler struct {
	session   *ws.Session
	jwtSecret string
}

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // TODO: restrict origins once the web client's domains are final
	},
}

func NewWebSocketHandler(session *ws.Session, jwtSecret string) *WebSocketHandler {
	return &WebSocketHandler{
		session:   session,
		jwtSecret: jwtSecret,
	}
}

// HandleWebSocket authenticates the handshake and hands the connection to
// the chat session. Credentials are checked before the upgrade so an
// unauthenticated caller never gets a socket.
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	token := extractToken(c)
	if token == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication token required")
	}

	claims, err := jwt.Verify(h.jwtSecret, token)
	if err != nil {
		logger.Warn("WebSocket handshake rejected: %v", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid authentication token")
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		logger.Error("WebSocket upgrade failed for user %s: %v", claims.UserID, err)
		return err
	}

	client := ws.NewClient(claims.UserID, claims.Role, conn)
	h.session.HandleConnect(client)

	go client.WritePump()
	go client.ReadPump(h.session)

	return nil
}

// extractToken reads the credential from the token query parameter, falling
// back to a bearer Authorization header.
func extractToken(c echo.Context) string {
	if token := c.QueryParam("token"); token != "" {
		return token
	}

	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
