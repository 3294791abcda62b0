package websocket

import (
	"encoding/json"
	"sync"

	"taskdesk/pkg/logger"
)

// Manager is the presence registry and room subscription table. One live
// connection per user: a newer connection for the same identity replaces the
// entry, and the superseded socket is left to time out on its own.
type Manager struct {
	mu      sync.RWMutex
	clients map[string]*Client
	rooms   map[string]map[*Client]struct{}
}

func NewManager() *Manager {
	return &Manager{
		clients: make(map[string]*Client),
		rooms:   make(map[string]map[*Client]struct{}),
	}
}

// Register inserts or replaces the presence entry for the client's user.
func (m *Manager) Register(client *Client) {
	m.mu.Lock()
	m.clients[client.UserID] = client
	total := len(m.clients)
	m.mu.Unlock()

	logger.Info("Client registered: user=%s role=%s connections=%d", client.UserID, client.Role, total)
}

// Unregister removes the presence entry only when it still belongs to this
// client. A stale connection's disconnect must not evict the entry a newer
// connection for the same user has written.
func (m *Manager) Unregister(client *Client) {
	m.mu.Lock()
	if current, ok := m.clients[client.UserID]; ok && current == client {
		delete(m.clients, client.UserID)
	}
	for name, members := range m.rooms {
		if _, ok := members[client]; ok {
			delete(members, client)
			if len(members) == 0 {
				delete(m.rooms, name)
			}
		}
	}
	total := len(m.clients)
	m.mu.Unlock()

	logger.Info("Client unregistered: user=%s connections=%d", client.UserID, total)
}

func (m *Manager) Lookup(userID string) (*Client, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	client, ok := m.clients[userID]
	return client, ok
}

func (m *Manager) IsOnline(userID string) bool {
	_, ok := m.Lookup(userID)
	return ok
}

// OnlineClients returns every registered client except the excluded user.
func (m *Manager) OnlineClients(excludeUserID string) []*Client {
	m.mu.RLock()
	defer m.mu.RUnlock()

	clients := make([]*Client, 0, len(m.clients))
	for userID, client := range m.clients {
		if userID == excludeUserID {
			continue
		}
		clients = append(clients, client)
	}
	return clients
}

// Join subscribes the client to a room, creating it on first use.
func (m *Manager) Join(roomName string, client *Client) {
	m.mu.Lock()
	defer m.mu.Unlock()

	members, ok := m.rooms[roomName]
	if !ok {
		members = make(map[*Client]struct{})
		m.rooms[roomName] = members
	}
	members[client] = struct{}{}
}

// Leave unsubscribes the client from a room. Leaving a room the client never
// joined is a no-op.
func (m *Manager) Leave(roomName string, client *Client) {
	m.mu.Lock()
	defer m.mu.Unlock()

	members, ok := m.rooms[roomName]
	if !ok {
		return
	}
	delete(members, client)
	if len(members) == 0 {
		delete(m.rooms, roomName)
	}
}

// EmitToClient queues a payload on one connection. A full send buffer drops
// the payload rather than blocking the caller; emitting to a connection that
// is gone is a no-op.
func (m *Manager) EmitToClient(client *Client, event string, data interface{}) {
	payload, err := marshalEvent(event, data)
	if err != nil {
		logger.Error("Failed to marshal %s event for %s: %v", event, client.UserID, err)
		return
	}

	select {
	case client.Send <- payload:
	default:
		logger.Warn("Send buffer full, dropping %s event for %s", event, client.UserID)
	}
}

// EmitToUser delivers directly to a user's live connection, if any.
func (m *Manager) EmitToUser(userID, event string, data interface{}) bool {
	client, ok := m.Lookup(userID)
	if !ok {
		return false
	}
	m.EmitToClient(client, event, data)
	return true
}

// EmitToRoom fans a payload out to every current member of the room.
func (m *Manager) EmitToRoom(roomName, event string, data interface{}) {
	m.mu.RLock()
	members := make([]*Client, 0, len(m.rooms[roomName]))
	for client := range m.rooms[roomName] {
		members = append(members, client)
	}
	m.mu.RUnlock()

	for _, client := range members {
		m.EmitToClient(client, event, data)
	}
}

// Broadcast sends to every registered connection except one user.
func (m *Manager) Broadcast(excludeUserID, event string, data interface{}) {
	for _, client := range m.OnlineClients(excludeUserID) {
		m.EmitToClient(client, event, data)
	}
}

func marshalEvent(event string, data interface{}) ([]byte, error) {
	return json.Marshal(ServerMessage{Event: event, Data: data})
}
