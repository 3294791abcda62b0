package usecase

import (
	"context"
	"regexp"
	"strings"
	"time"

	"taskdesk/internal/domain/entity"
	"taskdesk/internal/domain/repository"
	"taskdesk/pkg/errors"
	"taskdesk/pkg/logger"
)

const (
	maxMessageLength    = 1000
	defaultHistoryLimit = 50
)

var (
	scriptBlockPattern = regexp.MustCompile(`(?is)<script\b.*?</script>`)
	htmlTagPattern     = regexp.MustCompile(`<[^>]*>`)
)

type ChatUseCase struct {
	messageRepo repository.ChatMessageRepository
}

func NewChatUseCase(messageRepo repository.ChatMessageRepository) *ChatUseCase {
	return &ChatUseCase{
		messageRepo: messageRepo,
	}
}

type SendMessageInput struct {
	SenderID   string
	ReceiverID string
	Message    string
	SenderRole string
}

// SaveMessage sanitizes the text, derives the message direction from the
// sender's role and persists the record. The stored error is logged in full;
// callers only see a generic failure.
func (uc *ChatUseCase) SaveMessage(ctx context.Context, input SendMessageInput) (*entity.ChatMessage, error) {
	messageType := entity.MessageTypeEmployeeToOwner
	if input.SenderRole == entity.RoleOwner {
		messageType = entity.MessageTypeOwnerToEmployee
	}

	message := &entity.ChatMessage{
		SenderID:    input.SenderID,
		ReceiverID:  input.ReceiverID,
		Message:     SanitizeMessage(input.Message),
		Timestamp:   time.Now(),
		MessageType: messageType,
		IsRead:      false,
	}

	if err := uc.messageRepo.Create(ctx, message); err != nil {
		logger.Error("Failed to save chat message from %s to %s: %v", input.SenderID, input.ReceiverID, err)
		return nil, errors.Internal("Failed to save message", err)
	}

	logger.Info("Chat message saved: id=%s sender=%s receiver=%s type=%s", message.ID, message.SenderID, message.ReceiverID, message.MessageType)

	return message, nil
}

// GetMessages returns the most recent messages between the two users, oldest
// first, capped at limit (default 50).
func (uc *ChatUseCase) GetMessages(ctx context.Context, userID1, userID2 string, limit int) ([]*entity.ChatMessage, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	messages, err := uc.messageRepo.GetConversation(ctx, userID1, userID2, limit)
	if err != nil {
		logger.Error("Failed to retrieve chat messages between %s and %s: %v", userID1, userID2, err)
		return nil, errors.Internal("Failed to retrieve messages", err)
	}

	return messages, nil
}

func (uc *ChatUseCase) MarkMessagesRead(ctx context.Context, receiverID, senderID string) error {
	if err := uc.messageRepo.MarkRead(ctx, receiverID, senderID); err != nil {
		logger.Error("Failed to mark messages as read: receiver=%s sender=%s: %v", receiverID, senderID, err)
		return errors.Internal("Failed to mark messages as read", err)
	}

	logger.Info("Messages marked as read: receiver=%s sender=%s", receiverID, senderID)
	return nil
}

// GetUnreadCount degrades to zero on store failure. The count backs a badge
// in the UI and is not worth failing a session over.
func (uc *ChatUseCase) GetUnreadCount(ctx context.Context, userID string) int {
	count, err := uc.messageRepo.CountUnread(ctx, userID)
	if err != nil {
		logger.Error("Failed to get unread message count for %s: %v", userID, err)
		return 0
	}
	return count
}

// DeleteMessage removes a message. Only the original sender may delete it.
func (uc *ChatUseCase) DeleteMessage(ctx context.Context, messageID, requesterID string) error {
	message, err := uc.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return err
	}

	if message.SenderID != requesterID {
		return errors.Forbidden("Unauthorized to delete this message", nil)
	}

	if err := uc.messageRepo.Delete(ctx, messageID); err != nil {
		logger.Error("Failed to delete chat message %s: %v", messageID, err)
		return errors.Internal("Failed to delete message", err)
	}

	logger.Info("Chat message deleted: id=%s by=%s", messageID, requesterID)
	return nil
}

// IsValidMessage reports whether the raw text is acceptable: non-empty after
// trimming and no longer than 1000 characters.
func (uc *ChatUseCase) IsValidMessage(message string) bool {
	trimmed := strings.TrimSpace(message)
	return len(trimmed) > 0 && len([]rune(trimmed)) <= maxMessageLength
}

// SanitizeMessage strips script blocks and remaining HTML tags, trims the
// result and truncates it to 1000 characters.
func SanitizeMessage(message string) string {
	sanitized := strings.TrimSpace(message)
	sanitized = scriptBlockPattern.ReplaceAllString(sanitized, "")
	sanitized = htmlTagPattern.ReplaceAllString(sanitized, "")

	runes := []rune(sanitized)
	if len(runes) > maxMessageLength {
		runes = runes[:maxMessageLength]
	}
	return string(runes)
}
