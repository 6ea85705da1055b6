package notifications

import (
	"context"
	"log/slog"
)

// LogNotifier writes reminders to the application log. It is the fallback
// when no delivery channel is configured.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) NotifyRenewal(ctx context.Context, reminder RenewalReminder) error {
	n.logger.InfoContext(ctx, "renewal reminder",
		slog.String("subscription_id", reminder.SubscriptionID.String()),
		slog.String("user_id", reminder.UserID.String()),
		slog.String("email", reminder.Email),
		slog.String("subject", reminder.Subject()),
		slog.String("next_billing_date", reminder.NextBillingDate.Format("2006-01-02")),
		slog.Int("days_until", reminder.DaysUntil),
	)
	return nil
}
