package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskdesk/internal/domain/entity"
	"taskdesk/internal/domain/repository"
	"taskdesk/pkg/errors"
)

type stubTaskRepo struct {
	tasks  map[string]*entity.Task
	nextID int
}

func newStubTaskRepo() *stubTaskRepo {
	return &stubTaskRepo{tasks: make(map[string]*entity.Task)}
}

func (r *stubTaskRepo) Create(ctx context.Context, task *entity.Task) error {
	r.nextID++
	task.ID = fmt.Sprintf("task-%d", r.nextID)
	r.tasks[task.ID] = task
	return nil
}

func (r *stubTaskRepo) GetByID(ctx context.Context, id string) (*entity.Task, error) {
	if task, ok := r.tasks[id]; ok {
		return task, nil
	}
	return nil, errors.NotFound("Task", nil)
}

func (r *stubTaskRepo) Update(ctx context.Context, task *entity.Task) error {
	r.tasks[task.ID] = task
	return nil
}

func (r *stubTaskRepo) Delete(ctx context.Context, id string) error {
	delete(r.tasks, id)
	return nil
}

func (r *stubTaskRepo) List(ctx context.Context, filter repository.TaskFilter, limit, offset int) ([]*entity.Task, int64, error) {
	var out []*entity.Task
	for _, task := range r.tasks {
		if filter.Status != "" && task.Status != filter.Status {
			continue
		}
		if filter.AssignedTo != "" && task.AssignedTo != filter.AssignedTo {
			continue
		}
		out = append(out, task)
	}
	return out, int64(len(out)), nil
}

func seedEmployee(t *testing.T, repo *stubEmployeeRepo, email string) *entity.Employee {
	t.Helper()
	employee := &entity.Employee{Email: email, IsActive: true}
	require.NoError(t, repo.Create(context.Background(), employee))
	return employee
}

func TestCreateTaskStartsPending(t *testing.T) {
	taskRepo := newStubTaskRepo()
	employeeRepo := newStubEmployeeRepo()
	uc := NewTaskUseCase(taskRepo, employeeRepo)
	employee := seedEmployee(t, employeeRepo, "jane@example.com")

	task, err := uc.Create(context.Background(), CreateTaskInput{
		Title:      "Restock shelves",
		AssignedTo: employee.ID,
		Priority:   entity.TaskPriorityHigh,
		CreatedBy:  "owner-1",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.TaskStatusPending, task.Status)
	assert.Equal(t, employee.ID, task.AssignedTo)
}

func TestCreateTaskRejectsUnknownAssignee(t *testing.T) {
	uc := NewTaskUseCase(newStubTaskRepo(), newStubEmployeeRepo())

	_, err := uc.Create(context.Background(), CreateTaskInput{
		Title:      "Restock shelves",
		AssignedTo: "ghost",
	})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestUpdateTaskStampsCompletion(t *testing.T) {
	taskRepo := newStubTaskRepo()
	employeeRepo := newStubEmployeeRepo()
	uc := NewTaskUseCase(taskRepo, employeeRepo)

	task, err := uc.Create(context.Background(), CreateTaskInput{Title: "Restock shelves"})
	require.NoError(t, err)

	completed := entity.TaskStatusCompleted
	updated, err := uc.Update(context.Background(), task.ID, UpdateTaskInput{Status: &completed})
	require.NoError(t, err)
	assert.False(t, updated.CompletedAt.IsZero())

	pending := entity.TaskStatusPending
	updated, err = uc.Update(context.Background(), task.ID, UpdateTaskInput{Status: &pending})
	require.NoError(t, err)
	assert.True(t, updated.CompletedAt.IsZero())
}

func TestUpdateStatusForEmployeeRequiresAssignment(t *testing.T) {
	taskRepo := newStubTaskRepo()
	employeeRepo := newStubEmployeeRepo()
	uc := NewTaskUseCase(taskRepo, employeeRepo)
	assignee := seedEmployee(t, employeeRepo, "jane@example.com")

	task, err := uc.Create(context.Background(), CreateTaskInput{Title: "Restock shelves", AssignedTo: assignee.ID})
	require.NoError(t, err)

	_, err = uc.UpdateStatusForEmployee(context.Background(), task.ID, "someone-else", entity.TaskStatusInProgress)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	updated, err := uc.UpdateStatusForEmployee(context.Background(), task.ID, assignee.ID, entity.TaskStatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, entity.TaskStatusInProgress, updated.Status)
}

func TestListForEmployeeFiltersByAssignee(t *testing.T) {
	taskRepo := newStubTaskRepo()
	employeeRepo := newStubEmployeeRepo()
	uc := NewTaskUseCase(taskRepo, employeeRepo)
	jane := seedEmployee(t, employeeRepo, "jane@example.com")
	bob := seedEmployee(t, employeeRepo, "bob@example.com")

	_, err := uc.Create(context.Background(), CreateTaskInput{Title: "Task A", AssignedTo: jane.ID})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), CreateTaskInput{Title: "Task B", AssignedTo: bob.ID})
	require.NoError(t, err)

	tasks, total, err := uc.ListForEmployee(context.Background(), jane.ID, "", 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Task A", tasks[0].Title)
}
