package websocket

import (
	"github.com/gorilla/websocket"

	"taskdesk/pkg/logger"
)

// Client represents one authenticated WebSocket connection.
type Client struct {
	UserID string
	Role   string
	Conn   *websocket.Conn
	Send   chan []byte
}

func NewClient(userID, role string, conn *websocket.Conn) *Client {
	return &Client{
		UserID: userID,
		Role:   role,
		Conn:   conn,
		Send:   make(chan []byte, 256),
	}
}

// ReadPump reads events from the connection and hands them to the session
// coordinator. It owns the disconnect path: when the read loop ends the
// client is cleaned up and the connection closed.
func (c *Client) ReadPump(s *Session) {
	defer func() {
		s.HandleDisconnect(c)
		c.Conn.Close()
	}()

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("WebSocket read error for %s: %v", c.UserID, err)
			}
			break
		}

		s.HandleMessage(c, raw)
	}
}

// WritePump serialises all writes to the connection through the Send channel.
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		payload, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.Conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			logger.Warn("WebSocket write error for %s: %v", c.UserID, err)
			return
		}
	}
}
