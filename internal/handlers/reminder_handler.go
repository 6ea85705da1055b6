package handlers

import (
	"net/http"

	"subtrack/internal/errors"
	"subtrack/internal/services"

	"github.com/labstack/echo/v4"
)

// ReminderHandler exposes the reminder job to internal callers such as an
// external cron. Access is guarded by middleware.RequireInternalAPIKey.
type ReminderHandler struct {
	reminderService services.ReminderServiceInterface
}

func NewReminderHandler(reminderService services.ReminderServiceInterface) *ReminderHandler {
	return &ReminderHandler{
		reminderService: reminderService,
	}
}

// RunReminders handles POST /api/v1/internal/run-reminders?within_days=N.
// within_days defaults to 7 and is clamped to 1..60 by the service. The
// request trace ID becomes the run's correlation ID.
func (h *ReminderHandler) RunReminders(c echo.Context) error {
	withinDays := getIntParam(c, "within_days", services.DefaultReminderWithinDays)

	ctx := services.WithCorrelationID(c.Request().Context(), getTraceID(c))

	result, err := h.reminderService.ProcessRenewalReminders(ctx, withinDays)
	if err != nil {
		return SendError(c, errors.ReminderRunFailed, errors.WithDetails(err.Error()))
	}

	return SendData(c, http.StatusOK, result, result.Message)
}
