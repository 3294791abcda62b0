package websocket

import "encoding/json"

// Client to server events.
const (
	EventJoinChatRoom     = "join-chat-room"
	EventLeaveChatRoom    = "leave-chat-room"
	EventGetOnlineUsers   = "get-online-users"
	EventSendMessage      = "send-message"
	EventGetMessages      = "get-messages"
	EventMarkMessagesRead = "mark-messages-read"
	EventGetUnreadCount   = "get-unread-count"
	EventDeleteMessage    = "delete-message"
)

// Server to client events.
const (
	EventJoinedChatRoom         = "joined-chat-room"
	EventLeftChatRoom           = "left-chat-room"
	EventOnlineUsers            = "online-users"
	EventMessageReceived        = "message-received"
	EventNewMessageNotification = "new-message-notification"
	EventMessagesHistory        = "messages-history"
	EventMessagesMarkedRead     = "messages-marked-read"
	EventMessagesReadByRecipient = "messages-read-by-recipient"
	EventUnreadCount            = "unread-count"
	EventMessageDeleted         = "message-deleted"
	EventMessageDeletedBySender = "message-deleted-by-sender"
	EventError                  = "error"
)

// ClientMessage is the envelope every inbound event arrives in.
type ClientMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// ServerMessage is the envelope every outbound event is wrapped in.
type ServerMessage struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data,omitempty"`
}

type RoomPayload struct {
	ParticipantID string `json:"participantId"`
}

type SendMessagePayload struct {
	ReceiverID string `json:"receiverId"`
	Message    string `json:"message"`
}

type GetMessagesPayload struct {
	ParticipantID string `json:"participantId"`
	Limit         int    `json:"limit,omitempty"`
}

type MarkMessagesReadPayload struct {
	SenderID string `json:"senderId"`
}

type DeleteMessagePayload struct {
	MessageID string `json:"messageId"`
}

type OnlineUser struct {
	UserID   string `json:"userId"`
	Role     string `json:"role"`
	IsOnline bool   `json:"isOnline"`
}

type ErrorPayload struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
