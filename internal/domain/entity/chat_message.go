package entity

import "time"

// Message direction, derived from the sender's role at send time.
const (
	MessageTypeOwnerToEmployee = "owner-to-employee"
	MessageTypeEmployeeToOwner = "employee-to-owner"
)

type ChatMessage struct {
	ID          string    `json:"id" firestore:"-"`
	SenderID    string    `json:"senderId" firestore:"senderId"`
	ReceiverID  string    `json:"receiverId" firestore:"receiverId"`
	Message     string    `json:"message" firestore:"message"`
	Timestamp   time.Time `json:"timestamp" firestore:"timestamp"`
	MessageType string    `json:"messageType" firestore:"messageType"`
	IsRead      bool      `json:"isRead" firestore:"isRead"`
}
