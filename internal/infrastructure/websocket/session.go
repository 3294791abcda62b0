package websocket

import (
	"context"
	"encoding/json"
	stderrors "errors"

	"taskdesk/internal/infrastructure/ratelimit"
	"taskdesk/internal/usecase"
	"taskdesk/pkg/errors"
	"taskdesk/pkg/logger"
)

// Session coordinates per-connection chat events: it validates payloads,
// drives the chat use case and emits results back to the originating
// connection, the shared room and the recipient's direct channel.
type Session struct {
	manager *Manager
	chat    *usecase.ChatUseCase
	limiter *ratelimit.RateLimiter
}

func NewSession(manager *Manager, chat *usecase.ChatUseCase, limiter *ratelimit.RateLimiter) *Session {
	return &Session{
		manager: manager,
		chat:    chat,
		limiter: limiter,
	}
}

func (s *Session) Manager() *Manager {
	return s.manager
}

// HandleConnect registers presence and subscribes the connection to its
// identity and role channels for server-initiated pushes.
func (s *Session) HandleConnect(client *Client) {
	s.manager.Register(client)
	s.manager.Join(UserChannel(client.UserID), client)
	s.manager.Join(RoleChannel(client.Role), client)

	logger.Info("Chat session started: user=%s role=%s", client.UserID, client.Role)
}

// HandleDisconnect tears down room subscriptions and the presence entry.
func (s *Session) HandleDisconnect(client *Client) {
	s.manager.Unregister(client)

	logger.Info("Chat session ended: user=%s", client.UserID)
}

// HandleMessage dispatches one inbound event. Validation and store failures
// are reported through an error event on the same connection; the session
// stays usable.
func (s *Session) HandleMessage(client *Client, raw []byte) {
	var msg ClientMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		logger.Warn("Malformed event from %s: %v", client.UserID, err)
		s.emitError(client, "Invalid event format", "")
		return
	}

	switch msg.Event {
	case EventJoinChatRoom:
		s.handleJoinChatRoom(client, msg.Data)
	case EventLeaveChatRoom:
		s.handleLeaveChatRoom(client, msg.Data)
	case EventGetOnlineUsers:
		s.handleGetOnlineUsers(client)
	case EventSendMessage:
		s.handleSendMessage(client, msg.Data)
	case EventGetMessages:
		s.handleGetMessages(client, msg.Data)
	case EventMarkMessagesRead:
		s.handleMarkMessagesRead(client, msg.Data)
	case EventGetUnreadCount:
		s.handleGetUnreadCount(client)
	case EventDeleteMessage:
		s.handleDeleteMessage(client, msg.Data)
	default:
		logger.Warn("Unknown event %q from %s", msg.Event, client.UserID)
		s.emitError(client, "Unknown event", "")
	}
}

func (s *Session) handleJoinChatRoom(client *Client, data json.RawMessage) {
	var payload RoomPayload
	if err := json.Unmarshal(data, &payload); err != nil || payload.ParticipantID == "" {
		s.emitError(client, "Invalid room join request", "")
		return
	}

	roomName := ChatRoomName(client.UserID, payload.ParticipantID)
	s.manager.Join(roomName, client)

	logger.Info("User joined chat room: user=%s room=%s", client.UserID, roomName)

	s.manager.EmitToClient(client, EventJoinedChatRoom, map[string]interface{}{
		"roomName":      roomName,
		"participantId": payload.ParticipantID,
		"message":       "Successfully joined chat room",
	})
}

func (s *Session) handleLeaveChatRoom(client *Client, data json.RawMessage) {
	var payload RoomPayload
	if err := json.Unmarshal(data, &payload); err != nil || payload.ParticipantID == "" {
		s.emitError(client, "Invalid room leave request", "")
		return
	}

	roomName := ChatRoomName(client.UserID, payload.ParticipantID)
	s.manager.Leave(roomName, client)

	logger.Info("User left chat room: user=%s room=%s", client.UserID, roomName)

	s.manager.EmitToClient(client, EventLeftChatRoom, map[string]interface{}{
		"roomName":      roomName,
		"participantId": payload.ParticipantID,
		"message":       "Successfully left chat room",
	})
}

func (s *Session) handleGetOnlineUsers(client *Client) {
	online := s.manager.OnlineClients(client.UserID)

	users := make([]OnlineUser, 0, len(online))
	for _, c := range online {
		users = append(users, OnlineUser{
			UserID:   c.UserID,
			Role:     c.Role,
			IsOnline: true,
		})
	}

	s.manager.EmitToClient(client, EventOnlineUsers, map[string]interface{}{
		"users": users,
	})
}

func (s *Session) handleSendMessage(client *Client, data json.RawMessage) {
	var payload SendMessagePayload
	if err := json.Unmarshal(data, &payload); err != nil || payload.ReceiverID == "" || payload.Message == "" {
		s.emitError(client, "Invalid message data", "")
		return
	}

	if allowed, wait := s.limiter.Allow(client.UserID, ratelimit.ActionSendMessage); !allowed {
		s.emitError(client, "Too many messages, slow down", wait.String())
		return
	}

	if !s.chat.IsValidMessage(payload.Message) {
		s.emitError(client, "Invalid message content", "")
		return
	}

	saved, err := s.chat.SaveMessage(context.Background(), usecase.SendMessageInput{
		SenderID:   client.UserID,
		ReceiverID: payload.ReceiverID,
		Message:    payload.Message,
		SenderRole: client.Role,
	})
	if err != nil {
		s.emitAppError(client, err, "Failed to send message")
		return
	}

	roomName := ChatRoomName(client.UserID, payload.ReceiverID)

	s.manager.EmitToRoom(roomName, EventMessageReceived, map[string]interface{}{
		"message":  saved,
		"roomName": roomName,
	})

	// Direct push covers a receiver who has not joined the room yet, for
	// cross-device badges and notifications.
	s.manager.EmitToUser(payload.ReceiverID, EventNewMessageNotification, map[string]interface{}{
		"message":  saved,
		"roomName": roomName,
	})

	logger.Info("Message sent: id=%s sender=%s receiver=%s room=%s", saved.ID, client.UserID, payload.ReceiverID, roomName)
}

func (s *Session) handleGetMessages(client *Client, data json.RawMessage) {
	var payload GetMessagesPayload
	if err := json.Unmarshal(data, &payload); err != nil || payload.ParticipantID == "" {
		s.emitError(client, "Invalid request data", "")
		return
	}

	messages, err := s.chat.GetMessages(context.Background(), client.UserID, payload.ParticipantID, payload.Limit)
	if err != nil {
		s.emitAppError(client, err, "Failed to retrieve messages")
		return
	}

	// Tagged with the participant so the client can correlate concurrent
	// history requests for different conversations.
	s.manager.EmitToClient(client, EventMessagesHistory, map[string]interface{}{
		"messages":      messages,
		"participantId": payload.ParticipantID,
		"count":         len(messages),
	})
}

func (s *Session) handleMarkMessagesRead(client *Client, data json.RawMessage) {
	var payload MarkMessagesReadPayload
	if err := json.Unmarshal(data, &payload); err != nil || payload.SenderID == "" {
		s.emitError(client, "Invalid request data", "")
		return
	}

	if err := s.chat.MarkMessagesRead(context.Background(), client.UserID, payload.SenderID); err != nil {
		s.emitAppError(client, err, "Failed to mark messages as read")
		return
	}

	s.manager.EmitToClient(client, EventMessagesMarkedRead, map[string]interface{}{
		"senderId": payload.SenderID,
		"success":  true,
	})

	s.manager.EmitToUser(payload.SenderID, EventMessagesReadByRecipient, map[string]interface{}{
		"readBy": client.UserID,
	})
}

func (s *Session) handleGetUnreadCount(client *Client) {
	count := s.chat.GetUnreadCount(context.Background(), client.UserID)

	s.manager.EmitToClient(client, EventUnreadCount, map[string]interface{}{
		"count": count,
	})
}

func (s *Session) handleDeleteMessage(client *Client, data json.RawMessage) {
	var payload DeleteMessagePayload
	if err := json.Unmarshal(data, &payload); err != nil || payload.MessageID == "" {
		s.emitError(client, "Invalid request data", "")
		return
	}

	if err := s.chat.DeleteMessage(context.Background(), payload.MessageID, client.UserID); err != nil {
		s.emitAppError(client, err, "Failed to delete message")
		return
	}

	s.manager.EmitToClient(client, EventMessageDeleted, map[string]interface{}{
		"messageId": payload.MessageID,
		"success":   true,
	})

	// Other clients filter the notice by relevance themselves.
	s.manager.Broadcast(client.UserID, EventMessageDeletedBySender, map[string]interface{}{
		"messageId": payload.MessageID,
		"deletedBy": client.UserID,
	})
}

func (s *Session) emitError(client *Client, message, details string) {
	s.manager.EmitToClient(client, EventError, ErrorPayload{
		Message: message,
		Details: details,
	})
}

func (s *Session) emitAppError(client *Client, err error, fallback string) {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		details := ""
		if appErr.Err != nil {
			details = appErr.Err.Error()
		}
		s.emitError(client, appErr.Message, details)
		return
	}
	s.emitError(client, fallback, err.Error())
}
