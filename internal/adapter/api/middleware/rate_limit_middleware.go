package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"taskdesk/internal/infrastructure/ratelimit"
	"taskdesk/pkg/logger"
)

// RateLimit returns middleware that throttles an endpoint per client IP
// using a shared limiter and a named action bucket.
func RateLimit(limiter *ratelimit.RateLimiter, action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			allowed, wait := limiter.Allow(ip, action)
			if !allowed {
				logger.Warn("Rate limit exceeded: ip=%s action=%s", ip, action)
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"error":       "Rate limit exceeded",
					"retry_after": int(wait.Seconds()),
				})
			}

			return next(c)
		}
	}
}
