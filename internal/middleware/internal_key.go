package middleware

import (
	"crypto/subtle"

	"subtrack/internal/config"
	"subtrack/internal/errors"
	"subtrack/internal/handlers"

	"github.com/labstack/echo/v4"
)

// InternalAPIKeyHeader carries the shared secret for internal endpoints
const InternalAPIKeyHeader = "X-Internal-API-Key"

// RequireInternalAPIKey guards endpoints meant for an external scheduler.
// The whole group answers 503 while no key is configured.
func RequireInternalAPIKey(cfg *config.ReminderConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cfg == nil || !cfg.InternalAPIEnabled() {
				return handlers.SendError(c, errors.ReminderNotConfigured)
			}

			provided := c.Request().Header.Get(InternalAPIKeyHeader)
			if provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(cfg.InternalAPIKey)) != 1 {
				return handlers.SendError(c, errors.ReminderInvalidAPIKey)
			}

			return next(c)
		}
	}
}
