package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"taskdesk/internal/domain/entity"
	"taskdesk/internal/domain/repository"
	"taskdesk/pkg/errors"
	"taskdesk/pkg/logger"
	"taskdesk/pkg/utils"
)

const setupTokenTTL = 24 * time.Hour

type EmployeeUseCase struct {
	employeeRepo repository.EmployeeRepository
	ownerRepo    repository.OwnerRepository
	emailSender  EmailSender
	appBaseURL   string
}

func NewEmployeeUseCase(
	employeeRepo repository.EmployeeRepository,
	ownerRepo repository.OwnerRepository,
	emailSender EmailSender,
	appBaseURL string,
) *EmployeeUseCase {
	return &EmployeeUseCase{
		employeeRepo: employeeRepo,
		ownerRepo:    ownerRepo,
		emailSender:  emailSender,
		appBaseURL:   appBaseURL,
	}
}

type CreateEmployeeInput struct {
	Name       string
	Email      string
	Department string
	CreatedBy  string
}

// Create registers a new employee and emails them an account setup link. The
// email is best effort; the employee record is kept either way.
func (uc *EmployeeUseCase) Create(ctx context.Context, input CreateEmployeeInput) (*entity.Employee, error) {
	if existing, err := uc.employeeRepo.GetByEmail(ctx, input.Email); err == nil && existing != nil {
		return nil, errors.BadRequest("An employee with this email already exists", nil)
	}

	accessCode, accessExpiry := utils.GenerateAccessCodeWithExpiry()

	employee := &entity.Employee{
		Name:             input.Name,
		Email:            input.Email,
		Department:       input.Department,
		AccessCode:       accessCode,
		AccessCodeExpiry: accessExpiry,
		SetupToken:       uuid.New().String(),
		SetupTokenExpiry: time.Now().Add(setupTokenTTL),
		IsActive:         true,
		IsSetupComplete:  false,
		CreatedBy:        input.CreatedBy,
	}

	if err := uc.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}

	setupLink := fmt.Sprintf("%s/setup-account?token=%s", uc.appBaseURL, employee.SetupToken)
	if !uc.emailSender.SendAccountSetupLink(employee.Email, setupLink, employee.Name) {
		logger.Warn("Failed to send setup link to new employee %s", employee.ID)
	}

	logger.Info("Employee created: id=%s email=%s by=%s", employee.ID, employee.Email, input.CreatedBy)

	return employee, nil
}

func (uc *EmployeeUseCase) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	return uc.employeeRepo.GetByID(ctx, id)
}

type UpdateEmployeeInput struct {
	Name       *string
	Email      *string
	Department *string
	IsActive   *bool
}

func (uc *EmployeeUseCase) Update(ctx context.Context, id string, input UpdateEmployeeInput) (*entity.Employee, error) {
	employee, err := uc.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Email != nil && *input.Email != employee.Email {
		if existing, err := uc.employeeRepo.GetByEmail(ctx, *input.Email); err == nil && existing != nil {
			return nil, errors.BadRequest("An employee with this email already exists", nil)
		}
		employee.Email = *input.Email
	}
	if input.Name != nil {
		employee.Name = *input.Name
	}
	if input.Department != nil {
		employee.Department = *input.Department
	}
	if input.IsActive != nil {
		employee.IsActive = *input.IsActive
	}

	if err := uc.employeeRepo.Update(ctx, employee); err != nil {
		return nil, err
	}

	logger.Info("Employee updated: id=%s", employee.ID)

	return employee, nil
}

func (uc *EmployeeUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.employeeRepo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := uc.employeeRepo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info("Employee deleted: id=%s", id)
	return nil
}

func (uc *EmployeeUseCase) List(ctx context.Context, department string, limit, offset int) ([]*entity.Employee, int64, error) {
	return uc.employeeRepo.List(ctx, department, limit, offset)
}

type ChatParticipant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// ChatParticipants lists the people the caller can open a conversation with:
// owners see active employees, employees see the owners.
func (uc *EmployeeUseCase) ChatParticipants(ctx context.Context, role string) ([]ChatParticipant, error) {
	var participants []ChatParticipant

	if role == entity.RoleOwner {
		employees, _, err := uc.employeeRepo.List(ctx, "", 0, 0)
		if err != nil {
			return nil, err
		}
		for _, e := range employees {
			if !e.IsActive {
				continue
			}
			participants = append(participants, ChatParticipant{
				ID:   e.ID,
				Name: e.Name,
				Role: entity.RoleEmployee,
			})
		}
		return participants, nil
	}

	owners, err := uc.ownerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, o := range owners {
		participants = append(participants, ChatParticipant{
			ID:   o.ID,
			Name: o.PhoneNumber,
			Role: entity.RoleOwner,
		})
	}
	return participants, nil
}
