package router

import (
	"github.com/labstack/echo/v4"

	"taskdesk/internal/adapter/api/handler"
	"taskdesk/internal/adapter/api/middleware"
	"taskdesk/internal/infrastructure/ratelimit"
)

// SetupAuthRouter initializes auth routes
func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, limiter *ratelimit.RateLimiter) {
	authHandler := handler.GetAuthHandler()

	codeLimit := middleware.RateLimit(limiter, ratelimit.ActionRequestAccessCode)

	// Public routes
	e.POST("/v1/auth/owner/request-code", authHandler.RequestOwnerCode, codeLimit)
	e.POST("/v1/auth/owner/verify-code", authHandler.VerifyOwnerCode)
	e.POST("/v1/auth/employee/request-code", authHandler.RequestEmployeeCode, codeLimit)
	e.POST("/v1/auth/employee/verify-code", authHandler.VerifyEmployeeCode)
	e.POST("/v1/auth/employee/login", authHandler.Login)
	e.GET("/v1/auth/setup/validate", authHandler.ValidateSetupToken)
	e.POST("/v1/auth/setup/complete", authHandler.CompleteSetup)

	// Protected routes
	protected := e.Group("/v1/auth")
	protected.Use(authMiddleware.Authenticate)

	protected.GET("/me", authHandler.Me)
}
