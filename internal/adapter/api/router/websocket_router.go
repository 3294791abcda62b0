package router

import (
	"github.com/labstack/echo/v4"

	"taskdesk/internal/adapter/api/handler"
)

// SetupWebSocketRouter sets up the realtime chat endpoint. No HTTP auth
// middleware here; the handler authenticates the handshake itself.
func SetupWebSocketRouter(e *echo.Echo, wsHandler *handler.WebSocketHandler) {
	e.GET("/ws", wsHandler.HandleWebSocket)
}
