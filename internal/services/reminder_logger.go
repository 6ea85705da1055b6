package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type correlationIDKey struct{}

// WithCorrelationID tags ctx so reminder events of one run can be grouped
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// ReminderLogger writes structured events for the reminder pipeline
type ReminderLogger struct {
	logger *slog.Logger
}

func NewReminderLogger(logger *slog.Logger) ReminderLoggerInterface {
	return &ReminderLogger{
		logger: logger,
	}
}

func (rl *ReminderLogger) LogRunStarted(ctx context.Context, withinDays, candidates int) {
	rl.logger.InfoContext(ctx, "reminder run started",
		slog.String("event_type", "reminder_run_started"),
		slog.Int("within_days", withinDays),
		slog.Int("candidates", candidates),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (rl *ReminderLogger) LogReminderSent(ctx context.Context, subscriptionID, userID uuid.UUID, daysUntil int) {
	rl.logger.InfoContext(ctx, "renewal reminder sent",
		slog.String("event_type", "reminder_sent"),
		slog.String("subscription_id", subscriptionID.String()),
		slog.String("user_id", userID.String()),
		slog.Int("days_until", daysUntil),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (rl *ReminderLogger) LogReminderSkipped(ctx context.Context, subscriptionID uuid.UUID, reason string) {
	rl.logger.DebugContext(ctx, "renewal reminder skipped",
		slog.String("event_type", "reminder_skipped"),
		slog.String("subscription_id", subscriptionID.String()),
		slog.String("reason", reason),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (rl *ReminderLogger) LogReminderFailed(ctx context.Context, subscriptionID uuid.UUID, stage string, err error) {
	rl.logger.WarnContext(ctx, "renewal reminder failed",
		slog.String("event_type", "reminder_failed"),
		slog.String("subscription_id", subscriptionID.String()),
		slog.String("stage", stage),
		slog.String("error", err.Error()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (rl *ReminderLogger) LogRunCompleted(ctx context.Context, sent, skipped, failed int, durationMs int64) {
	rl.logger.InfoContext(ctx, "reminder run completed",
		slog.String("event_type", "reminder_run_completed"),
		slog.Int("reminders_sent", sent),
		slog.Int("reminders_skipped", skipped),
		slog.Int("errors", failed),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

// CorrelationID returns the ID set by WithCorrelationID, or ""
func CorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return correlationID
	}

	return ""
}
