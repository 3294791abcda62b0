package usecase

import (
	"context"
	"time"

	"taskdesk/internal/domain/entity"
	"taskdesk/internal/domain/repository"
	"taskdesk/pkg/errors"
	"taskdesk/pkg/logger"
)

type TaskUseCase struct {
	taskRepo     repository.TaskRepository
	employeeRepo repository.EmployeeRepository
}

func NewTaskUseCase(taskRepo repository.TaskRepository, employeeRepo repository.EmployeeRepository) *TaskUseCase {
	return &TaskUseCase{
		taskRepo:     taskRepo,
		employeeRepo: employeeRepo,
	}
}

type CreateTaskInput struct {
	Title       string
	Description string
	AssignedTo  string
	Priority    string
	DueDate     time.Time
	CreatedBy   string
}

func (uc *TaskUseCase) Create(ctx context.Context, input CreateTaskInput) (*entity.Task, error) {
	if input.AssignedTo != "" {
		if _, err := uc.employeeRepo.GetByID(ctx, input.AssignedTo); err != nil {
			return nil, errors.BadRequest("Assigned employee does not exist", err)
		}
	}

	task := &entity.Task{
		Title:       input.Title,
		Description: input.Description,
		AssignedTo:  input.AssignedTo,
		Status:      entity.TaskStatusPending,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
		CreatedBy:   input.CreatedBy,
	}

	if err := uc.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}

	logger.Info("Task created: id=%s title=%q by=%s", task.ID, task.Title, input.CreatedBy)

	return task, nil
}

func (uc *TaskUseCase) GetByID(ctx context.Context, id string) (*entity.Task, error) {
	return uc.taskRepo.GetByID(ctx, id)
}

type UpdateTaskInput struct {
	Title       *string
	Description *string
	AssignedTo  *string
	Status      *string
	Priority    *string
	DueDate     *time.Time
}

func (uc *TaskUseCase) Update(ctx context.Context, id string, input UpdateTaskInput) (*entity.Task, error) {
	task, err := uc.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.AssignedTo != nil && *input.AssignedTo != "" {
		if _, err := uc.employeeRepo.GetByID(ctx, *input.AssignedTo); err != nil {
			return nil, errors.BadRequest("Assigned employee does not exist", err)
		}
		task.AssignedTo = *input.AssignedTo
	}
	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}
	if input.DueDate != nil {
		task.DueDate = *input.DueDate
	}
	if input.Status != nil {
		uc.applyStatus(task, *input.Status)
	}

	if err := uc.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}

	logger.Info("Task updated: id=%s status=%s", task.ID, task.Status)

	return task, nil
}

func (uc *TaskUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.taskRepo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := uc.taskRepo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info("Task deleted: id=%s", id)
	return nil
}

func (uc *TaskUseCase) List(ctx context.Context, filter repository.TaskFilter, limit, offset int) ([]*entity.Task, int64, error) {
	return uc.taskRepo.List(ctx, filter, limit, offset)
}

// ListForEmployee returns only tasks assigned to the given employee.
func (uc *TaskUseCase) ListForEmployee(ctx context.Context, employeeID, status string, limit, offset int) ([]*entity.Task, int64, error) {
	filter := repository.TaskFilter{
		Status:     status,
		AssignedTo: employeeID,
	}
	return uc.taskRepo.List(ctx, filter, limit, offset)
}

// UpdateStatusForEmployee lets an employee move one of their own tasks
// through the status flow. Tasks assigned to someone else are off limits.
func (uc *TaskUseCase) UpdateStatusForEmployee(ctx context.Context, taskID, employeeID, status string) (*entity.Task, error) {
	task, err := uc.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if task.AssignedTo != employeeID {
		return nil, errors.Forbidden("Task is not assigned to you", nil)
	}

	uc.applyStatus(task, status)

	if err := uc.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}

	logger.Info("Task status updated by assignee: id=%s status=%s employee=%s", task.ID, task.Status, employeeID)

	return task, nil
}

func (uc *TaskUseCase) applyStatus(task *entity.Task, status string) {
	task.Status = status
	if status == entity.TaskStatusCompleted && task.CompletedAt.IsZero() {
		task.CompletedAt = time.Now()
	}
	if status != entity.TaskStatusCompleted {
		task.CompletedAt = time.Time{}
	}
}
