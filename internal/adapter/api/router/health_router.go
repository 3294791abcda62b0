package router

import (
	"github.com/labstack/echo/v4"

	"taskdesk/internal/adapter/api/handler"
)

func SetupHealthRouter(e *echo.Echo) {
	healthHandler := handler.GetHealthHandler()
	e.GET("/health", healthHandler.CheckHealth)
	e.GET("/firestore-health", healthHandler.CheckFirestoreHealth)
}
