package repository

import (
	"context"

	"taskdesk/internal/domain/entity"
)

type TaskFilter struct {
	Status     string
	AssignedTo string
}

type TaskRepository interface {
	Create(ctx context.Context, task *entity.Task) error
	GetByID(ctx context.Context, id string) (*entity.Task, error)
	Update(ctx context.Context, task *entity.Task) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter TaskFilter, limit, offset int) ([]*entity.Task, int64, error)
}
