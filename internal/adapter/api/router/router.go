package router

import (
	"github.com/labstack/echo/v4"

	"taskdesk/internal/adapter/api/middleware"
	"taskdesk/internal/infrastructure/ratelimit"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, limiter *ratelimit.RateLimiter) {
	SetupAuthRouter(e, authMiddleware, limiter)
	SetupEmployeeRouter(e, authMiddleware)
	SetupTaskRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
