package middleware

import (
	"math"
	"net/http"

	"github.com/labstack/echo/v4"

	"huhu/internal/infrastructure/ratelimit"
	"huhu/pkg/logger"
)

// RateLimit limits action per caller, keyed by user id when known and by
// client IP otherwise.
func RateLimit(limiter *ratelimit.RateLimiter, action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key, _ := c.Get(ContextUID).(string)
			if key == "" {
				key = c.RealIP()
			}

			allowed, wait := limiter.Allow(key, action)
			if !allowed {
				logger.Warn("RATE LIMIT: %s blocked for %s (retry in %v)", key, action, wait)
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"success":     false,
					"error":       map[string]string{"code": "TOO_MANY_REQUESTS", "message": "Rate limit exceeded"},
					"retry_after": int(math.Ceil(wait.Seconds())),
				})
			}

			return next(c)
		}
	}
}
