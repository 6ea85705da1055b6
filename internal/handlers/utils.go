package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ErrUnauthorized is returned when user context is invalid
var ErrUnauthorized = fmt.Errorf("unauthorized")

// Helper function to extract user ID from context
// Returns ErrUnauthorized if user ID is missing or invalid
func getUserIDFromContext(c echo.Context) (uuid.UUID, error) {
	userIDValue := c.Get("user_id")
	if userIDValue == nil {
		return uuid.UUID{}, ErrUnauthorized
	}

	userID, ok := userIDValue.(uuid.UUID)
	if !ok {
		return uuid.UUID{}, ErrUnauthorized
	}

	return userID, nil
}

// getIntParam reads an integer query parameter. Missing or malformed values
// fall back to defaultValue.
func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := strings.TrimSpace(c.QueryParam(name))
	if param == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(param)
	if err != nil {
		return defaultValue
	}

	return value
}

// getBoolParam returns nil when the parameter is absent
func getBoolParam(c echo.Context, name string) (*bool, error) {
	param := strings.TrimSpace(c.QueryParam(name))
	if param == "" {
		return nil, nil
	}

	value, err := strconv.ParseBool(param)
	if err != nil {
		return nil, fmt.Errorf("%s must be true or false", name)
	}

	return &value, nil
}

func getClientIP(c echo.Context) string {
	xff := c.Request().Header.Get("X-Forwarded-For")
	if xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	xri := c.Request().Header.Get("X-Real-IP")
	if xri != "" {
		return xri
	}

	return c.Request().RemoteAddr
}
