package usecase

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"taskdesk/internal/domain/entity"
	"taskdesk/internal/domain/repository"
	"taskdesk/pkg/errors"
	"taskdesk/pkg/jwt"
	"taskdesk/pkg/logger"
	"taskdesk/pkg/utils"
)

type AuthUseCase struct {
	ownerRepo    repository.OwnerRepository
	employeeRepo repository.EmployeeRepository
	emailSender  EmailSender
	smsSender    SMSSender
	jwtSecret    string
	jwtExpiry    time.Duration
}

func NewAuthUseCase(
	ownerRepo repository.OwnerRepository,
	employeeRepo repository.EmployeeRepository,
	emailSender EmailSender,
	smsSender SMSSender,
	jwtSecret string,
	jwtExpirySeconds int64,
) *AuthUseCase {
	return &AuthUseCase{
		ownerRepo:    ownerRepo,
		employeeRepo: employeeRepo,
		emailSender:  emailSender,
		smsSender:    smsSender,
		jwtSecret:    jwtSecret,
		jwtExpiry:    time.Duration(jwtExpirySeconds) * time.Second,
	}
}

type AuthResult struct {
	Token string
	User  interface{}
	Role  string
}

// RequestOwnerAccessCode generates a fresh login code for the owner with that
// phone number, creating the owner record on first use, and sends the code by
// SMS. SMS failure is reported to the caller but does not fail the request.
func (uc *AuthUseCase) RequestOwnerAccessCode(ctx context.Context, phoneNumber string) (bool, error) {
	code, expiresAt := utils.GenerateAccessCodeWithExpiry()

	owner, err := uc.ownerRepo.GetByPhoneNumber(ctx, phoneNumber)
	if err != nil {
		if !errors.Is(err, "NOT_FOUND") {
			return false, err
		}
		owner = &entity.Owner{
			PhoneNumber:      phoneNumber,
			AccessCode:       code,
			AccessCodeExpiry: expiresAt,
		}
		if err := uc.ownerRepo.Create(ctx, owner); err != nil {
			return false, err
		}
		logger.Info("Created new owner record: id=%s", owner.ID)
	} else {
		owner.AccessCode = code
		owner.AccessCodeExpiry = expiresAt
		if err := uc.ownerRepo.Update(ctx, owner); err != nil {
			return false, err
		}
	}

	smsSent := uc.smsSender.SendVerificationCode(phoneNumber, code)
	if !smsSent {
		logger.Warn("Failed to send SMS verification code to owner %s", owner.ID)
	}

	return smsSent, nil
}

// ValidateOwnerAccessCode checks the code, clears it and issues a token.
func (uc *AuthUseCase) ValidateOwnerAccessCode(ctx context.Context, phoneNumber, accessCode string) (*AuthResult, error) {
	owner, err := uc.ownerRepo.GetByPhoneNumber(ctx, phoneNumber)
	if err != nil {
		return nil, errors.Unauthorized("Invalid phone number or access code", err)
	}

	if owner.AccessCode == "" || owner.AccessCode != accessCode {
		return nil, errors.Unauthorized("Invalid phone number or access code", nil)
	}
	if utils.IsAccessCodeExpired(owner.AccessCodeExpiry) {
		return nil, errors.Unauthorized("Access code has expired", nil)
	}

	owner.AccessCode = ""
	owner.LastLogin = time.Now()
	if err := uc.ownerRepo.Update(ctx, owner); err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtSecret, owner.ID, entity.RoleOwner, uc.jwtExpiry)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication token", err)
	}

	logger.Info("Owner logged in: id=%s", owner.ID)

	return &AuthResult{Token: token, User: owner, Role: entity.RoleOwner}, nil
}

// RequestEmployeeAccessCode emails a login code to an existing, active
// employee.
func (uc *AuthUseCase) RequestEmployeeAccessCode(ctx context.Context, email string) (bool, error) {
	employee, err := uc.employeeRepo.GetByEmail(ctx, email)
	if err != nil {
		return false, errors.NotFound("Employee", err)
	}
	if !employee.IsActive {
		return false, errors.Forbidden("Employee account is deactivated", nil)
	}

	code, expiresAt := utils.GenerateAccessCodeWithExpiry()
	employee.AccessCode = code
	employee.AccessCodeExpiry = expiresAt
	if err := uc.employeeRepo.Update(ctx, employee); err != nil {
		return false, err
	}

	emailSent := uc.emailSender.SendVerificationCode(email, code)
	if !emailSent {
		logger.Warn("Failed to send verification email to employee %s", employee.ID)
	}

	return emailSent, nil
}

// ValidateEmployeeAccessCode checks the emailed code and issues a token.
func (uc *AuthUseCase) ValidateEmployeeAccessCode(ctx context.Context, email, accessCode string) (*AuthResult, error) {
	employee, err := uc.employeeRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, errors.Unauthorized("Invalid email or access code", err)
	}
	if !employee.IsActive {
		return nil, errors.Forbidden("Employee account is deactivated", nil)
	}

	if employee.AccessCode == "" || employee.AccessCode != accessCode {
		return nil, errors.Unauthorized("Invalid email or access code", nil)
	}
	if utils.IsAccessCodeExpired(employee.AccessCodeExpiry) {
		return nil, errors.Unauthorized("Access code has expired", nil)
	}

	employee.AccessCode = ""
	employee.LastLogin = time.Now()
	if err := uc.employeeRepo.Update(ctx, employee); err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtSecret, employee.ID, entity.RoleEmployee, uc.jwtExpiry)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication token", err)
	}

	logger.Info("Employee logged in via access code: id=%s", employee.ID)

	return &AuthResult{Token: token, User: employee, Role: entity.RoleEmployee}, nil
}

// LoginWithCredentials authenticates an employee who completed account setup.
func (uc *AuthUseCase) LoginWithCredentials(ctx context.Context, username, password string) (*AuthResult, error) {
	employee, err := uc.employeeRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, errors.Unauthorized("Invalid username or password", err)
	}
	if !employee.IsActive {
		return nil, errors.Forbidden("Employee account is deactivated", nil)
	}
	if !employee.IsSetupComplete || employee.PasswordHash == "" {
		return nil, errors.Unauthorized("Account setup is not complete", nil)
	}

	if bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(password)) != nil {
		return nil, errors.Unauthorized("Invalid username or password", nil)
	}

	employee.LastLogin = time.Now()
	if err := uc.employeeRepo.Update(ctx, employee); err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtSecret, employee.ID, entity.RoleEmployee, uc.jwtExpiry)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication token", err)
	}

	logger.Info("Employee logged in with credentials: id=%s", employee.ID)

	return &AuthResult{Token: token, User: employee, Role: entity.RoleEmployee}, nil
}

// ValidateSetupToken resolves a pending setup token to the employee it was
// issued for.
func (uc *AuthUseCase) ValidateSetupToken(ctx context.Context, token string) (*entity.Employee, error) {
	employee, err := uc.employeeRepo.GetBySetupToken(ctx, token)
	if err != nil {
		return nil, errors.NotFound("Setup token", err)
	}
	if employee.IsSetupComplete {
		return nil, errors.BadRequest("Account setup is already complete", nil)
	}
	if time.Now().After(employee.SetupTokenExpiry) {
		return nil, errors.BadRequest("Setup token has expired", nil)
	}

	return employee, nil
}

type AccountSetupInput struct {
	Token    string
	Username string
	Password string
}

// CompleteAccountSetup sets the employee's credentials and marks setup done.
func (uc *AuthUseCase) CompleteAccountSetup(ctx context.Context, input AccountSetupInput) (*AuthResult, error) {
	if msg := utils.ValidateUsername(input.Username); msg != "" {
		return nil, errors.BadRequest(msg, nil)
	}
	if msg := utils.ValidatePasswordStrength(input.Password); msg != "" {
		return nil, errors.BadRequest(msg, nil)
	}

	employee, err := uc.ValidateSetupToken(ctx, input.Token)
	if err != nil {
		return nil, err
	}

	if existing, err := uc.employeeRepo.GetByUsername(ctx, input.Username); err == nil && existing != nil && existing.ID != employee.ID {
		return nil, errors.BadRequest("Username is already taken", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), 12)
	if err != nil {
		return nil, errors.Internal("Failed to hash password", err)
	}

	employee.Username = input.Username
	employee.PasswordHash = string(hash)
	employee.SetupToken = ""
	employee.SetupTokenExpiry = time.Time{}
	employee.IsSetupComplete = true
	if err := uc.employeeRepo.Update(ctx, employee); err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtSecret, employee.ID, entity.RoleEmployee, uc.jwtExpiry)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication token", err)
	}

	logger.Info("Employee completed account setup: id=%s", employee.ID)

	return &AuthResult{Token: token, User: employee, Role: entity.RoleEmployee}, nil
}

// GetCurrentUser resolves the authenticated identity to its profile record.
func (uc *AuthUseCase) GetCurrentUser(ctx context.Context, userID, role string) (interface{}, error) {
	switch role {
	case entity.RoleOwner:
		return uc.ownerRepo.GetByID(ctx, userID)
	case entity.RoleEmployee:
		return uc.employeeRepo.GetByID(ctx, userID)
	default:
		return nil, errors.BadRequest("Invalid user role", nil)
	}
}
