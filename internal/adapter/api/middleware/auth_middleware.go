package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"taskdesk/internal/domain/entity"
	"taskdesk/pkg/jwt"
)

type AuthMiddleware struct {
	jwtSecret string
}

func NewAuthMiddleware(jwtSecret string) *AuthMiddleware {
	return &AuthMiddleware{
		jwtSecret: jwtSecret,
	}
}

// Authenticate verifies the bearer token and stores the caller's identity
// in the request context under "userId" and "role".
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}

		claims, err := jwt.Verify(m.jwtSecret, parts[1])
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}

		c.Set("userId", claims.UserID)
		c.Set("role", claims.Role)

		return next(c)
	}
}

// RequireOwner allows only authenticated owners through.
func (m *AuthMiddleware) RequireOwner(next echo.HandlerFunc) echo.HandlerFunc {
	return requireRole(entity.RoleOwner, next)
}

// RequireEmployee allows only authenticated employees through.
func (m *AuthMiddleware) RequireEmployee(next echo.HandlerFunc) echo.HandlerFunc {
	return requireRole(entity.RoleEmployee, next)
}

func requireRole(role string, next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		current, ok := c.Get("role").(string)
		if !ok || current != role {
			return echo.NewHTTPError(http.StatusForbidden, "Insufficient permissions")
		}
		return next(c)
	}
}
