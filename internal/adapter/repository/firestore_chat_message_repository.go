package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"taskdesk/internal/domain/entity"
	"taskdesk/internal/domain/repository"
	"taskdesk/pkg/errors"
	"taskdesk/pkg/logger"
)

const chatMessagesCollection = "chatMessages"

type firestoreChatMessageRepository struct {
	client *firestore.Client
}

func NewFirestoreChatMessageRepository(client *firestore.Client) repository.ChatMessageRepository {
	return &firestoreChatMessageRepository{
		client: client,
	}
}

func (r *firestoreChatMessageRepository) Create(ctx context.Context, message *entity.ChatMessage) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}

	_, err := r.client.Collection(chatMessagesCollection).Doc(message.ID).Set(ctx, message)
	if err != nil {
		return errors.Internal("Failed to create chat message", err)
	}

	return nil
}

func (r *firestoreChatMessageRepository) GetByID(ctx context.Context, id string) (*entity.ChatMessage, error) {
	doc, err := r.client.Collection(chatMessagesCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Message", err)
		}
		return nil, errors.Internal("Failed to get chat message", err)
	}

	var message entity.ChatMessage
	if err := doc.DataTo(&message); err != nil {
		return nil, errors.Internal("Failed to parse chat message data", err)
	}
	message.ID = doc.Ref.ID

	return &message, nil
}

// GetConversation fetches the newest messages between the two users and
// returns them oldest first. "Most recent N in chronological order" cannot be
// expressed as a single ascending query, so the descending result is reversed
// after the limit is applied.
func (r *firestoreChatMessageRepository) GetConversation(ctx context.Context, userID1, userID2 string, limit int) ([]*entity.ChatMessage, error) {
	participants := []string{userID1, userID2}
	query := r.client.Collection(chatMessagesCollection).
		Where("senderId", "in", participants).
		Where("receiverId", "in", participants).
		OrderBy("timestamp", firestore.Desc).
		Limit(limit)

	iter := query.Documents(ctx)
	var messages []*entity.ChatMessage
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate chat messages", err)
		}

		var message entity.ChatMessage
		if err := doc.DataTo(&message); err != nil {
			return nil, errors.Internal("Failed to parse chat message data", err)
		}
		message.ID = doc.Ref.ID
		messages = append(messages, &message)
	}

	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return messages, nil
}

func (r *firestoreChatMessageRepository) MarkRead(ctx context.Context, receiverID, senderID string) error {
	query := r.client.Collection(chatMessagesCollection).
		Where("senderId", "==", senderID).
		Where("receiverId", "==", receiverID).
		Where("isRead", "==", false)

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return errors.Internal("Failed to query unread messages", err)
	}
	if len(docs) == 0 {
		return nil
	}

	batch := r.client.Batch()
	for _, doc := range docs {
		batch.Update(doc.Ref, []firestore.Update{{Path: "isRead", Value: true}})
	}
	if _, err := batch.Commit(ctx); err != nil {
		return errors.Internal("Failed to mark messages as read", err)
	}

	return nil
}

func (r *firestoreChatMessageRepository) CountUnread(ctx context.Context, receiverID string) (int, error) {
	query := r.client.Collection(chatMessagesCollection).
		Where("receiverId", "==", receiverID).
		Where("isRead", "==", false)

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		logger.Error("Firestore error while counting unread messages for %s: %v", receiverID, err)
		return 0, errors.Internal("Failed to count unread messages", err)
	}

	return len(docs), nil
}

func (r *firestoreChatMessageRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(chatMessagesCollection).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete chat message", err)
	}

	return nil
}
