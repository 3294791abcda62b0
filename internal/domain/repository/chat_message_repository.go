package repository

import (
	"context"

	"taskdesk/internal/domain/entity"
)

type ChatMessageRepository interface {
	Create(ctx context.Context, message *entity.ChatMessage) error
	GetByID(ctx context.Context, id string) (*entity.ChatMessage, error)

	// GetConversation returns the most recent messages exchanged between the
	// two users, oldest first, at most limit entries.
	GetConversation(ctx context.Context, userID1, userID2 string, limit int) ([]*entity.ChatMessage, error)

	// MarkRead flips every unread message from senderID to receiverID in one
	// batch. Zero matches is not an error.
	MarkRead(ctx context.Context, receiverID, senderID string) error

	CountUnread(ctx context.Context, receiverID string) (int, error)
	Delete(ctx context.Context, id string) error
}
