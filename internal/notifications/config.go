package notifications

import (
	"log/slog"

	"subtrack/internal/config"
)

// FromConfig assembles the notifiers enabled by cfg. SMTP and AMQP are used
// when configured; with neither, reminders go to the log. An unreachable
// broker is logged and skipped. The returned func releases broker resources.
func FromConfig(cfg *config.Config, logger *slog.Logger) (Notifier, func()) {
	notifiers := make([]Notifier, 0, 2)
	cleanup := func() {}

	if cfg.SMTP.IsConfigured() {
		notifiers = append(notifiers, NewBreakerNotifier("smtp", NewSMTPNotifier(cfg.SMTP), DefaultBreakerConfig()))
		logger.Info("smtp reminder delivery enabled", "host", cfg.SMTP.Host, "port", cfg.SMTP.Port)
	}

	if cfg.AMQP.IsConfigured() {
		publisher, err := DialAMQPPublisher(cfg.AMQP, logger)
		if err != nil {
			logger.Warn("amqp reminder publishing disabled", "error", err)
		} else {
			notifiers = append(notifiers, NewBreakerNotifier("amqp", publisher, DefaultBreakerConfig()))
			cleanup = func() {
				if err := publisher.Close(); err != nil {
					logger.Warn("failed to close amqp publisher", "error", err)
				}
			}
			logger.Info("amqp reminder publishing enabled", "exchange", cfg.AMQP.Exchange, "routing_key", cfg.AMQP.RoutingKey)
		}
	}

	if len(notifiers) == 0 {
		logger.Info("no reminder delivery configured, logging reminders")
		return NewLogNotifier(logger), cleanup
	}
	if len(notifiers) == 1 {
		return notifiers[0], cleanup
	}
	return NewMultiNotifier(notifiers...), cleanup
}
