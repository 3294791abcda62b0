package handler

import (
	"github.com/labstack/echo/v4"

	"taskdesk/internal/usecase"
	"taskdesk/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type authResponse struct {
	Token string      `json:"token"`
	User  interface{} `json:"user"`
	Role  string      `json:"role"`
}

func (h *AuthHandler) RequestOwnerCode(c echo.Context) error {
	var req struct {
		PhoneNumber string `json:"phoneNumber" validate:"required,e164"`
	}

	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	smsSent, err := h.authUseCase.RequestOwnerAccessCode(c.Request().Context(), req.PhoneNumber)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message": "Access code requested",
		"smsSent": smsSent,
	})
}

func (h *AuthHandler) VerifyOwnerCode(c echo.Context) error {
	var req struct {
		PhoneNumber string `json:"phoneNumber" validate:"required,e164"`
		AccessCode  string `json:"accessCode" validate:"required,len=6"`
	}

	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.ValidateOwnerAccessCode(c.Request().Context(), req.PhoneNumber, req.AccessCode)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, authResponse{
		Token: result.Token,
		User:  result.User,
		Role:  result.Role,
	})
}

func (h *AuthHandler) RequestEmployeeCode(c echo.Context) error {
	var req struct {
		Email string `json:"email" validate:"required,email"`
	}

	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	emailSent, err := h.authUseCase.RequestEmployeeAccessCode(c.Request().Context(), req.Email)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message":   "Access code requested",
		"emailSent": emailSent,
	})
}

func (h *AuthHandler) VerifyEmployeeCode(c echo.Context) error {
	var req struct {
		Email      string `json:"email" validate:"required,email"`
		AccessCode string `json:"accessCode" validate:"required,len=6"`
	}

	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.ValidateEmployeeAccessCode(c.Request().Context(), req.Email, req.AccessCode)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, authResponse{
		Token: result.Token,
		User:  result.User,
		Role:  result.Role,
	})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.LoginWithCredentials(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, authResponse{
		Token: result.Token,
		User:  result.User,
		Role:  result.Role,
	})
}

func (h *AuthHandler) ValidateSetupToken(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		var req struct {
			Token string `json:"token" validate:"required"`
		}
		if err := c.Bind(&req); err != nil {
			return response.Error(c, err)
		}
		if err := c.Validate(&req); err != nil {
			return response.Error(c, err)
		}
		token = req.Token
	}

	employee, err := h.authUseCase.ValidateSetupToken(c.Request().Context(), token)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"valid": true,
		"employee": map[string]interface{}{
			"id":    employee.ID,
			"name":  employee.Name,
			"email": employee.Email,
		},
	})
}

func (h *AuthHandler) CompleteSetup(c echo.Context) error {
	var req struct {
		Token    string `json:"token" validate:"required"`
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.CompleteAccountSetup(c.Request().Context(), usecase.AccountSetupInput{
		Token:    req.Token,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, authResponse{
		Token: result.Token,
		User:  result.User,
		Role:  result.Role,
	})
}

func (h *AuthHandler) Me(c echo.Context) error {
	userID := c.Get("userId").(string)
	role := c.Get("role").(string)

	user, err := h.authUseCase.GetCurrentUser(c.Request().Context(), userID, role)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"user": user,
		"role": role,
	})
}
