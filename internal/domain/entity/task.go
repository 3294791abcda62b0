package entity

import "time"

const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"
	TaskStatusCancelled  = "cancelled"
)

const (
	TaskPriorityLow    = "low"
	TaskPriorityMedium = "medium"
	TaskPriorityHigh   = "high"
)

type Task struct {
	ID          string    `json:"id" firestore:"-"`
	Title       string    `json:"title" firestore:"title"`
	Description string    `json:"description" firestore:"description"`
	AssignedTo  string    `json:"assignedTo,omitempty" firestore:"assignedTo,omitempty"`
	Status      string    `json:"status" firestore:"status"`
	Priority    string    `json:"priority" firestore:"priority"`
	DueDate     time.Time `json:"dueDate,omitempty" firestore:"dueDate,omitempty"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty" firestore:"updatedAt,omitempty"`
	CreatedBy   string    `json:"createdBy" firestore:"createdBy"`
	CompletedAt time.Time `json:"completedAt,omitempty" firestore:"completedAt,omitempty"`
}
