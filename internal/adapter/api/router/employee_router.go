package router

import (
	"github.com/labstack/echo/v4"

	"taskdesk/internal/adapter/api/handler"
	"taskdesk/internal/adapter/api/middleware"
)

// SetupEmployeeRouter initializes employee management routes
func SetupEmployeeRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	employeeHandler := handler.GetEmployeeHandler()

	// Owner-only management routes
	owner := e.Group("/v1/employees")
	owner.Use(authMiddleware.Authenticate, authMiddleware.RequireOwner)

	owner.POST("", employeeHandler.Create)
	owner.GET("", employeeHandler.List)
	owner.GET("/:id", employeeHandler.GetByID)
	owner.PATCH("/:id", employeeHandler.Update)
	owner.DELETE("/:id", employeeHandler.Delete)

	// Any authenticated user can list who they may chat with
	chat := e.Group("/v1/chat")
	chat.Use(authMiddleware.Authenticate)

	chat.GET("/participants", employeeHandler.ChatParticipants)
}
