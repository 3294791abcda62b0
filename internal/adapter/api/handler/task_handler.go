package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"taskdesk/internal/domain/repository"
	"taskdesk/internal/usecase"
	"taskdesk/pkg/response"
	"taskdesk/pkg/utils"
)

type TaskHandler struct {
	taskUseCase *usecase.TaskUseCase
}

func NewTaskHandler(taskUseCase *usecase.TaskUseCase) *TaskHandler {
	return &TaskHandler{
		taskUseCase: taskUseCase,
	}
}

type createTaskRequest struct {
	Title       string     `json:"title" validate:"required,min=2,max=200"`
	Description string     `json:"description" validate:"omitempty,max=2000"`
	AssignedTo  string     `json:"assignedTo" validate:"omitempty"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate     *time.Time `json:"dueDate"`
}

type updateTaskRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=2,max=200"`
	Description *string    `json:"description" validate:"omitempty,max=2000"`
	AssignedTo  *string    `json:"assignedTo"`
	Status      *string    `json:"status" validate:"omitempty,oneof=pending in_progress completed cancelled"`
	Priority    *string    `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate     *time.Time `json:"dueDate"`
}

func (h *TaskHandler) Create(c echo.Context) error {
	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	ownerID := c.Get("userId").(string)

	input := usecase.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		Priority:    req.Priority,
		CreatedBy:   ownerID,
	}
	if req.DueDate != nil {
		input.DueDate = *req.DueDate
	}

	task, err := h.taskUseCase.Create(c.Request().Context(), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, task)
}

func (h *TaskHandler) GetByID(c echo.Context) error {
	task, err := h.taskUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, task)
}

func (h *TaskHandler) Update(c echo.Context) error {
	var req updateTaskRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	task, err := h.taskUseCase.Update(c.Request().Context(), c.Param("id"), usecase.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, task)
}

func (h *TaskHandler) Delete(c echo.Context) error {
	if err := h.taskUseCase.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Task deleted",
	})
}

func (h *TaskHandler) List(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	filter := repository.TaskFilter{
		Status:     c.QueryParam("status"),
		AssignedTo: c.QueryParam("assignedTo"),
	}

	tasks, total, err := h.taskUseCase.List(c.Request().Context(), filter, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, tasks, total, pagination.Page, pagination.PageSize)
}

// MyTasks lists tasks assigned to the authenticated employee.
func (h *TaskHandler) MyTasks(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)
	employeeID := c.Get("userId").(string)

	tasks, total, err := h.taskUseCase.ListForEmployee(
		c.Request().Context(),
		employeeID,
		c.QueryParam("status"),
		pagination.PageSize,
		pagination.Offset,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, tasks, total, pagination.Page, pagination.PageSize)
}

// UpdateMyTaskStatus lets an employee update status on their own task.
func (h *TaskHandler) UpdateMyTaskStatus(c echo.Context) error {
	var req struct {
		Status string `json:"status" validate:"required,oneof=pending in_progress completed cancelled"`
	}

	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	employeeID := c.Get("userId").(string)

	task, err := h.taskUseCase.UpdateStatusForEmployee(c.Request().Context(), c.Param("id"), employeeID, req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, task)
}
