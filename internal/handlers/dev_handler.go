package handlers

import (
	"net/http"

	"subtrack/internal/dto"
	"subtrack/internal/errors"
	"subtrack/internal/services"

	"github.com/labstack/echo/v4"
)

const defaultSeedCount = 10

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	seeder  services.SubscriptionSeederInterface
	enabled bool
}

// NewDevHandler creates a new development handler. When enabled is false
// every endpoint answers 403.
func NewDevHandler(seeder services.SubscriptionSeederInterface, enabled bool) *DevHandler {
	return &DevHandler{
		seeder:  seeder,
		enabled: enabled,
	}
}

// GenerateSubscriptions seeds realistic fake subscriptions for the caller
//
// Method: POST /api/v1/dev/subscriptions/generate
// Authentication: Required
// Environment: Development only
//
// Query parameters:
//   - count: Number of subscriptions to create (default: 10, clamped to 1..50)
//
// Success Response: 201 Created
//   - generated: Number of subscriptions created
//   - subscriptions: The created subscriptions
//
// Error Responses:
//   - 401: Unauthorized
//   - 403: Not a development environment
//   - 500: Internal server error
func (h *DevHandler) GenerateSubscriptions(c echo.Context) error {
	if !h.enabled {
		return SendError(c, errors.AuthInsufficientPermission, errors.WithDetails("Development endpoints are disabled"))
	}

	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	count := getIntParam(c, "count", defaultSeedCount)

	subs, err := h.seeder.Seed(userID, count, getClientIP(c), c.Request().UserAgent())
	if err != nil {
		return SendSystemError(c, err)
	}

	responses := make([]dto.SubscriptionResponse, 0, len(subs))
	for _, sub := range subs {
		responses = append(responses, dto.ToSubscriptionResponse(sub))
	}

	return SendData(c, http.StatusCreated, dto.GenerateSubscriptionsResponse{
		Generated:     len(responses),
		Subscriptions: responses,
	}, "Test subscriptions generated successfully")
}
