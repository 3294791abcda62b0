package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"taskdesk/internal/infrastructure/firebase"
)

type HealthHandler struct {
	firebaseClient *firebase.Client
}

var healthHandler *HealthHandler

func SetupHealthHandler(firebaseClient *firebase.Client) {
	healthHandler = &HealthHandler{
		firebaseClient: firebaseClient,
	}
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}

func (h *HealthHandler) CheckHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "Server is running",
		"time":   time.Now().Format(time.RFC3339),
	})
}

func (h *HealthHandler) CheckFirestoreHealth(c echo.Context) error {
	if err := h.firebaseClient.TestConnection(c.Request().Context()); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"status": "Firestore connection failed",
			"error":  err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "Firestore connected successfully",
	})
}
