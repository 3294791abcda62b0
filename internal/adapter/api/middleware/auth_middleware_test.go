package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskdesk/internal/domain/entity"
	"taskdesk/pkg/jwt"
)

const testSecret = "test-secret"

func runAuthenticated(t *testing.T, authHeader string, next echo.HandlerFunc) (*httptest.ResponseRecorder, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m := NewAuthMiddleware(testSecret)
	return rec, m.Authenticate(next)(c)
}

func TestAuthenticateSetsIdentity(t *testing.T) {
	token, err := jwt.Generate(testSecret, "owner-1", entity.RoleOwner, time.Hour)
	require.NoError(t, err)

	_, err = runAuthenticated(t, "Bearer "+token, func(c echo.Context) error {
		assert.Equal(t, "owner-1", c.Get("userId"))
		assert.Equal(t, entity.RoleOwner, c.Get("role"))
		return c.NoContent(http.StatusOK)
	})
	assert.NoError(t, err)
}

func TestAuthenticateMissingHeader(t *testing.T) {
	_, err := runAuthenticated(t, "", func(c echo.Context) error {
		t.Fatal("handler should not run")
		return nil
	})

	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestAuthenticateBadFormat(t *testing.T) {
	_, err := runAuthenticated(t, "Token abc", nil)

	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestAuthenticateInvalidToken(t *testing.T) {
	_, err := runAuthenticated(t, "Bearer not-a-token", nil)

	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestRequireOwner(t *testing.T) {
	e := echo.New()

	run := func(role string) error {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set("role", role)

		m := NewAuthMiddleware(testSecret)
		return m.RequireOwner(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})(c)
	}

	assert.NoError(t, run(entity.RoleOwner))

	err := run(entity.RoleEmployee)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)
}
