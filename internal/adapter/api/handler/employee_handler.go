package handler

import (
	"github.com/labstack/echo/v4"

	"taskdesk/internal/usecase"
	"taskdesk/pkg/response"
	"taskdesk/pkg/utils"
)

type EmployeeHandler struct {
	employeeUseCase *usecase.EmployeeUseCase
}

func NewEmployeeHandler(employeeUseCase *usecase.EmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{
		employeeUseCase: employeeUseCase,
	}
}

type createEmployeeRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=100"`
	Email      string `json:"email" validate:"required,email"`
	Department string `json:"department" validate:"omitempty,max=100"`
}

type updateEmployeeRequest struct {
	Name       *string `json:"name" validate:"omitempty,min=2,max=100"`
	Email      *string `json:"email" validate:"omitempty,email"`
	Department *string `json:"department" validate:"omitempty,max=100"`
	IsActive   *bool   `json:"isActive"`
}

func (h *EmployeeHandler) Create(c echo.Context) error {
	var req createEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	ownerID := c.Get("userId").(string)

	employee, err := h.employeeUseCase.Create(c.Request().Context(), usecase.CreateEmployeeInput{
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
		CreatedBy:  ownerID,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, employee)
}

func (h *EmployeeHandler) GetByID(c echo.Context) error {
	employee, err := h.employeeUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, employee)
}

func (h *EmployeeHandler) Update(c echo.Context) error {
	var req updateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	employee, err := h.employeeUseCase.Update(c.Request().Context(), c.Param("id"), usecase.UpdateEmployeeInput{
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
		IsActive:   req.IsActive,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, employee)
}

func (h *EmployeeHandler) Delete(c echo.Context) error {
	if err := h.employeeUseCase.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Employee deleted",
	})
}

func (h *EmployeeHandler) List(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)
	department := c.QueryParam("department")

	employees, total, err := h.employeeUseCase.List(
		c.Request().Context(),
		department,
		pagination.PageSize,
		pagination.Offset,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, employees, total, pagination.Page, pagination.PageSize)
}

// ChatParticipants lists who the caller may chat with.
func (h *EmployeeHandler) ChatParticipants(c echo.Context) error {
	role := c.Get("role").(string)

	participants, err := h.employeeUseCase.ChatParticipants(c.Request().Context(), role)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"participants": participants,
	})
}
