package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskdesk/internal/domain/entity"
	"taskdesk/pkg/errors"
)

func newTestEmployeeUseCase(employeeRepo *stubEmployeeRepo, ownerRepo *stubOwnerRepo, email *stubEmailSender) *EmployeeUseCase {
	return NewEmployeeUseCase(employeeRepo, ownerRepo, email, "https://app.example.com")
}

func TestCreateEmployeeSendsSetupLink(t *testing.T) {
	employeeRepo := newStubEmployeeRepo()
	email := &stubEmailSender{}
	uc := newTestEmployeeUseCase(employeeRepo, newStubOwnerRepo(), email)

	employee, err := uc.Create(context.Background(), CreateEmployeeInput{
		Name:       "Jane Doe",
		Email:      "jane@example.com",
		Department: "support",
		CreatedBy:  "owner-1",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, employee.ID)
	assert.True(t, employee.IsActive)
	assert.False(t, employee.IsSetupComplete)
	assert.NotEmpty(t, employee.SetupToken)
	assert.True(t, employee.SetupTokenExpiry.After(time.Now().Add(23*time.Hour)))

	require.Len(t, email.sent, 1)
	assert.True(t, strings.HasPrefix(email.sent[0], "https://app.example.com/setup-account?token="))
	assert.Contains(t, email.sent[0], employee.SetupToken)
}

func TestCreateEmployeeRejectsDuplicateEmail(t *testing.T) {
	employeeRepo := newStubEmployeeRepo()
	uc := newTestEmployeeUseCase(employeeRepo, newStubOwnerRepo(), &stubEmailSender{})

	_, err := uc.Create(context.Background(), CreateEmployeeInput{Name: "Jane", Email: "jane@example.com"})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), CreateEmployeeInput{Name: "Other", Email: "jane@example.com"})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestCreateEmployeeKeepsRecordOnEmailFailure(t *testing.T) {
	employeeRepo := newStubEmployeeRepo()
	uc := newTestEmployeeUseCase(employeeRepo, newStubOwnerRepo(), &stubEmailSender{failNext: true})

	employee, err := uc.Create(context.Background(), CreateEmployeeInput{Name: "Jane", Email: "jane@example.com"})
	require.NoError(t, err)

	_, err = employeeRepo.GetByID(context.Background(), employee.ID)
	assert.NoError(t, err)
}

func TestUpdateEmployeeAppliesPartialChanges(t *testing.T) {
	employeeRepo := newStubEmployeeRepo()
	uc := newTestEmployeeUseCase(employeeRepo, newStubOwnerRepo(), &stubEmailSender{})

	created, err := uc.Create(context.Background(), CreateEmployeeInput{Name: "Jane", Email: "jane@example.com", Department: "support"})
	require.NoError(t, err)

	inactive := false
	updated, err := uc.Update(context.Background(), created.ID, UpdateEmployeeInput{IsActive: &inactive})
	require.NoError(t, err)

	assert.False(t, updated.IsActive)
	assert.Equal(t, "Jane", updated.Name)
	assert.Equal(t, "support", updated.Department)
}

func TestChatParticipantsForOwner(t *testing.T) {
	employeeRepo := newStubEmployeeRepo()
	uc := newTestEmployeeUseCase(employeeRepo, newStubOwnerRepo(), &stubEmailSender{})

	active, err := uc.Create(context.Background(), CreateEmployeeInput{Name: "Jane", Email: "jane@example.com"})
	require.NoError(t, err)
	disabled, err := uc.Create(context.Background(), CreateEmployeeInput{Name: "Bob", Email: "bob@example.com"})
	require.NoError(t, err)

	off := false
	_, err = uc.Update(context.Background(), disabled.ID, UpdateEmployeeInput{IsActive: &off})
	require.NoError(t, err)

	participants, err := uc.ChatParticipants(context.Background(), entity.RoleOwner)
	require.NoError(t, err)
	require.Len(t, participants, 1)
	assert.Equal(t, active.ID, participants[0].ID)
	assert.Equal(t, entity.RoleEmployee, participants[0].Role)
}

func TestChatParticipantsForEmployee(t *testing.T) {
	ownerRepo := newStubOwnerRepo()
	uc := newTestEmployeeUseCase(newStubEmployeeRepo(), ownerRepo, &stubEmailSender{})

	require.NoError(t, ownerRepo.Create(context.Background(), &entity.Owner{PhoneNumber: "+15550001111"}))

	participants, err := uc.ChatParticipants(context.Background(), entity.RoleEmployee)
	require.NoError(t, err)
	require.Len(t, participants, 1)
	assert.Equal(t, entity.RoleOwner, participants[0].Role)
	assert.Equal(t, "+15550001111", participants[0].Name)
}
