package websocket

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(userID, role string) *Client {
	return NewClient(userID, role, nil)
}

// receiveEvent pops the next queued payload off the client's send channel.
func receiveEvent(t *testing.T, client *Client) ServerMessage {
	t.Helper()

	select {
	case payload := <-client.Send:
		var msg ServerMessage
		require.NoError(t, json.Unmarshal(payload, &msg))
		return msg
	default:
		t.Fatal("no event queued on client send channel")
		return ServerMessage{}
	}
}

func TestManagerRegisterAndLookup(t *testing.T) {
	m := NewManager()
	client := newTestClient("owner-1", "owner")

	m.Register(client)

	found, ok := m.Lookup("owner-1")
	assert.True(t, ok)
	assert.Same(t, client, found)
	assert.True(t, m.IsOnline("owner-1"))
	assert.False(t, m.IsOnline("emp-1"))
}

func TestManagerRegisterReplacesExistingConnection(t *testing.T) {
	m := NewManager()
	first := newTestClient("owner-1", "owner")
	second := newTestClient("owner-1", "owner")

	m.Register(first)
	m.Register(second)

	found, ok := m.Lookup("owner-1")
	assert.True(t, ok)
	assert.Same(t, second, found)
}

func TestManagerUnregisterKeepsNewerConnection(t *testing.T) {
	m := NewManager()
	first := newTestClient("owner-1", "owner")
	second := newTestClient("owner-1", "owner")

	m.Register(first)
	m.Register(second)

	// The stale connection disconnecting must not evict the newer one.
	m.Unregister(first)

	found, ok := m.Lookup("owner-1")
	assert.True(t, ok)
	assert.Same(t, second, found)

	m.Unregister(second)
	assert.False(t, m.IsOnline("owner-1"))
}

func TestManagerUnregisterRemovesRoomMemberships(t *testing.T) {
	m := NewManager()
	client := newTestClient("emp-1", "employee")
	room := ChatRoomName("emp-1", "owner-1")

	m.Register(client)
	m.Join(room, client)
	m.Unregister(client)

	m.EmitToRoom(room, "message-received", map[string]string{"x": "y"})
	assert.Empty(t, client.Send)
}

func TestManagerOnlineClientsExcludesRequester(t *testing.T) {
	m := NewManager()
	owner := newTestClient("owner-1", "owner")
	emp := newTestClient("emp-1", "employee")

	m.Register(owner)
	m.Register(emp)

	online := m.OnlineClients("owner-1")
	require.Len(t, online, 1)
	assert.Equal(t, "emp-1", online[0].UserID)
}

func TestManagerEmitToRoomReachesAllMembers(t *testing.T) {
	m := NewManager()
	owner := newTestClient("owner-1", "owner")
	emp := newTestClient("emp-1", "employee")
	room := ChatRoomName("owner-1", "emp-1")

	m.Register(owner)
	m.Register(emp)
	m.Join(room, owner)
	m.Join(room, emp)

	m.EmitToRoom(room, EventMessageReceived, map[string]string{"roomName": room})

	for _, c := range []*Client{owner, emp} {
		msg := receiveEvent(t, c)
		assert.Equal(t, EventMessageReceived, msg.Event)
	}
}

func TestManagerEmitToUser(t *testing.T) {
	m := NewManager()
	emp := newTestClient("emp-1", "employee")
	m.Register(emp)

	assert.True(t, m.EmitToUser("emp-1", EventUnreadCount, map[string]int{"count": 3}))
	assert.False(t, m.EmitToUser("emp-2", EventUnreadCount, map[string]int{"count": 3}))

	msg := receiveEvent(t, emp)
	assert.Equal(t, EventUnreadCount, msg.Event)
}

func TestManagerLeaveUnknownRoomIsNoop(t *testing.T) {
	m := NewManager()
	client := newTestClient("emp-1", "employee")

	m.Leave("chat:a:b", client)
}

func TestManagerEmitDropsWhenBufferFull(t *testing.T) {
	m := NewManager()
	client := &Client{UserID: "emp-1", Role: "employee", Send: make(chan []byte, 1)}
	m.Register(client)

	m.EmitToClient(client, EventUnreadCount, map[string]int{"count": 1})
	m.EmitToClient(client, EventUnreadCount, map[string]int{"count": 2})

	assert.Len(t, client.Send, 1)
}
