package router

import (
	"github.com/labstack/echo/v4"

	"taskdesk/internal/adapter/api/handler"
	"taskdesk/internal/adapter/api/middleware"
)

// SetupTaskRouter initializes task routes
func SetupTaskRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	taskHandler := handler.GetTaskHandler()

	// Owner-only management routes
	owner := e.Group("/v1/tasks")
	owner.Use(authMiddleware.Authenticate, authMiddleware.RequireOwner)

	owner.POST("", taskHandler.Create)
	owner.GET("", taskHandler.List)
	owner.GET("/:id", taskHandler.GetByID)
	owner.PATCH("/:id", taskHandler.Update)
	owner.DELETE("/:id", taskHandler.Delete)

	// Employee routes scoped to their own assignments
	employee := e.Group("/v1/my-tasks")
	employee.Use(authMiddleware.Authenticate, authMiddleware.RequireEmployee)

	employee.GET("", taskHandler.MyTasks)
	employee.PATCH("/:id/status", taskHandler.UpdateMyTaskStatus)
}
