package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"taskdesk/internal/domain/entity"
	"taskdesk/internal/domain/repository"
	"taskdesk/pkg/errors"
	"taskdesk/pkg/logger"
)

const tasksCollection = "tasks"

type firestoreTaskRepository struct {
	client *firestore.Client
}

func NewFirestoreTaskRepository(client *firestore.Client) repository.TaskRepository {
	return &firestoreTaskRepository{
		client: client,
	}
}

func (r *firestoreTaskRepository) Create(ctx context.Context, task *entity.Task) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	task.CreatedAt = time.Now()

	_, err := r.client.Collection(tasksCollection).Doc(task.ID).Set(ctx, task)
	if err != nil {
		return errors.Internal("Failed to create task", err)
	}

	return nil
}

func (r *firestoreTaskRepository) GetByID(ctx context.Context, id string) (*entity.Task, error) {
	doc, err := r.client.Collection(tasksCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Task", err)
		}
		return nil, errors.Internal("Failed to get task", err)
	}

	var task entity.Task
	if err := doc.DataTo(&task); err != nil {
		return nil, errors.Internal("Failed to parse task data", err)
	}
	task.ID = doc.Ref.ID

	return &task, nil
}

func (r *firestoreTaskRepository) Update(ctx context.Context, task *entity.Task) error {
	task.UpdatedAt = time.Now()

	_, err := r.client.Collection(tasksCollection).Doc(task.ID).Set(ctx, task)
	if err != nil {
		return errors.Internal("Failed to update task", err)
	}

	return nil
}

func (r *firestoreTaskRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(tasksCollection).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete task", err)
	}

	return nil
}

func (r *firestoreTaskRepository) List(ctx context.Context, filter repository.TaskFilter, limit, offset int) ([]*entity.Task, int64, error) {
	query := r.client.Collection(tasksCollection).Query
	if filter.Status != "" {
		query = query.Where("status", "==", filter.Status)
	}
	if filter.AssignedTo != "" {
		query = query.Where("assignedTo", "==", filter.AssignedTo)
	}
	query = query.OrderBy("createdAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		logger.Error("Firestore error while listing tasks: %v", err)
		return nil, 0, errors.Internal("Failed to list tasks", err)
	}

	total := int64(len(allDocs))

	start := offset
	if start > len(allDocs) {
		start = len(allDocs)
	}
	end := len(allDocs)
	if limit > 0 && start+limit < end {
		end = start + limit
	}

	var tasks []*entity.Task
	for _, doc := range allDocs[start:end] {
		var task entity.Task
		if err := doc.DataTo(&task); err != nil {
			continue // Skip malformed documents
		}
		task.ID = doc.Ref.ID
		tasks = append(tasks, &task)
	}

	return tasks, total, nil
}
