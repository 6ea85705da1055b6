package handlers

import (
	stderrors "errors"
	"net/http"
	"strings"

	"subtrack/internal/dto"
	"subtrack/internal/errors"
	"subtrack/internal/forecast"
	"subtrack/internal/models"
	"subtrack/internal/repositories"
	"subtrack/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SubscriptionHandler serves the authenticated user's subscriptions and the
// spending views derived from them.
type SubscriptionHandler struct {
	subscriptionService services.SubscriptionServiceInterface
}

func NewSubscriptionHandler(subscriptionService services.SubscriptionServiceInterface) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionService: subscriptionService,
	}
}

// ListSubscriptions handles GET /api/v1/subscriptions
//
// Query parameters:
//   - active: true or false (optional)
//   - category: category name, "Uncategorized" matches subscriptions without one (optional)
func (h *SubscriptionHandler) ListSubscriptions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	active, err := getBoolParam(c, "active")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	filters := models.SubscriptionFilters{Active: active}
	if category := strings.TrimSpace(c.QueryParam("category")); category != "" {
		filters.Category = &category
	}

	subs, err := h.subscriptionService.List(userID, filters)
	if err != nil {
		return SendSystemError(c, err)
	}

	return SendData(c, http.StatusOK, dto.SubscriptionListResponse{
		Subscriptions: dto.ToSubscriptionResponses(subs),
		Total:         len(subs),
	}, "")
}

// CreateSubscription handles POST /api/v1/subscriptions
func (h *SubscriptionHandler) CreateSubscription(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateSubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	sub, err := h.subscriptionService.Create(userID, &req, getClientIP(c), c.Request().UserAgent())
	if err != nil {
		return sendSubscriptionError(c, err)
	}

	return SendData(c, http.StatusCreated, dto.ToSubscriptionResponse(sub), "Subscription created successfully")
}

// GetSubscription handles GET /api/v1/subscriptions/:id
func (h *SubscriptionHandler) GetSubscription(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.SubscriptionInvalidID)
	}

	sub, err := h.subscriptionService.Get(userID, id)
	if err != nil {
		return sendSubscriptionError(c, err)
	}

	return SendData(c, http.StatusOK, dto.ToSubscriptionResponse(sub), "")
}

// UpdateSubscription handles PUT /api/v1/subscriptions/:id. Only fields
// present in the body change.
func (h *SubscriptionHandler) UpdateSubscription(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.SubscriptionInvalidID)
	}

	var req dto.UpdateSubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	sub, err := h.subscriptionService.Update(userID, id, &req, getClientIP(c), c.Request().UserAgent())
	if err != nil {
		return sendSubscriptionError(c, err)
	}

	return SendData(c, http.StatusOK, dto.ToSubscriptionResponse(sub), "Subscription updated successfully")
}

// DeleteSubscription handles DELETE /api/v1/subscriptions/:id
func (h *SubscriptionHandler) DeleteSubscription(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.SubscriptionInvalidID)
	}

	if err := h.subscriptionService.Delete(userID, id, getClientIP(c), c.Request().UserAgent()); err != nil {
		return sendSubscriptionError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Subscription deleted successfully",
	})
}

// GetSummary handles GET /api/v1/subscriptions/summary
func (h *SubscriptionHandler) GetSummary(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	summary, err := h.subscriptionService.Summary(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return SendData(c, http.StatusOK, summary, "")
}

// GetForecast handles GET /api/v1/subscriptions/forecast?months=N.
// months defaults to 12 and is clamped to 1..60.
func (h *SubscriptionHandler) GetForecast(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	months := getIntParam(c, "months", forecast.DefaultMonths)

	points, err := h.subscriptionService.Forecast(userID, months)
	if err != nil {
		return SendSystemError(c, err)
	}

	return SendData(c, http.StatusOK, dto.NewForecastResponse(points), "")
}

// GetCategoryBreakdown handles GET /api/v1/subscriptions/categories
func (h *SubscriptionHandler) GetCategoryBreakdown(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	items, err := h.subscriptionService.CategoryBreakdown(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return SendData(c, http.StatusOK, dto.NewCategoryBreakdownResponse(items), "")
}

// GetUpcomingRenewals handles GET /api/v1/subscriptions/upcoming?within_days=N
func (h *SubscriptionHandler) GetUpcomingRenewals(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	withinDays := services.ClampUpcomingDays(getIntParam(c, "within_days", services.DefaultUpcomingDays))

	subs, err := h.subscriptionService.UpcomingRenewals(userID, withinDays)
	if err != nil {
		return SendSystemError(c, err)
	}

	return SendData(c, http.StatusOK, dto.NewUpcomingRenewalsResponse(subs, withinDays, h.subscriptionService.Today()), "")
}

func sendSubscriptionError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, repositories.ErrSubscriptionNotFound):
		return SendError(c, errors.SubscriptionNotFound)
	case stderrors.Is(err, services.ErrInvalidBillingCycle):
		return SendError(c, errors.SubscriptionInvalidBillingCycle)
	case stderrors.Is(err, services.ErrInvalidPrice):
		return SendError(c, errors.SubscriptionInvalidPrice)
	case stderrors.Is(err, services.ErrInvalidSubscription):
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}
	return SendSystemError(c, err)
}
