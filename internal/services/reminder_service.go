package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"subtrack/internal/dto"
	"subtrack/internal/models"
	"subtrack/internal/notifications"
	"subtrack/internal/repositories"
)

const (
	DefaultReminderWithinDays = 7
	MinReminderWithinDays     = 1
	MaxReminderWithinDays     = 60
)

const (
	skipOutsideWindow = "outside_window"
	skipNotDueToday   = "not_reminder_day"
	skipAlreadySent   = "already_sent"
)

// ReminderService sends renewal reminders for subscriptions whose next
// billing date is exactly reminder_days_before days away.
type ReminderService struct {
	subscriptionRepo repositories.SubscriptionRepositoryInterface
	notifier         notifications.Notifier
	auditService     AuditServiceInterface
	metrics          MetricsRecorderInterface
	events           ReminderLoggerInterface
	logger           *slog.Logger
	now              func() time.Time
}

func NewReminderService(
	subscriptionRepo repositories.SubscriptionRepositoryInterface,
	notifier notifications.Notifier,
	auditService AuditServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) *ReminderService {
	return &ReminderService{
		subscriptionRepo: subscriptionRepo,
		notifier:         notifier,
		auditService:     auditService,
		metrics:          metrics,
		events:           NewReminderLogger(logger),
		logger:           logger,
		now:              time.Now,
	}
}

// WithClock replaces the service clock. Used by tests.
func (s *ReminderService) WithClock(now func() time.Time) *ReminderService {
	s.now = now
	return s
}

// ProcessRenewalReminders runs one reminder pass over every candidate.
// Delivery failures are counted and do not stop the run. A reminder is sent
// at most once per billing date because last_reminder_sent_at is cleared
// only when the date moves.
func (s *ReminderService) ProcessRenewalReminders(ctx context.Context, withinDays int) (*dto.ReminderRunResult, error) {
	start := time.Now()
	withinDays = clamp(withinDays, MinReminderWithinDays, MaxReminderWithinDays)

	candidates, err := s.subscriptionRepo.GetReminderCandidates()
	if err != nil {
		return nil, fmt.Errorf("failed to load reminder candidates: %w", err)
	}

	s.events.LogRunStarted(ctx, withinDays, len(candidates))

	result := &dto.ReminderRunResult{
		WithinDays:     withinDays,
		TotalProcessed: len(candidates),
	}
	today := models.DateOnly(s.now().UTC())

	for i := range candidates {
		if err := ctx.Err(); err != nil {
			result.Finish()
			return result, err
		}

		sub := &candidates[i]
		daysUntil, ok := sub.DaysUntilNextBilling(today)

		if reason := skipReason(sub, daysUntil, ok, withinDays); reason != "" {
			result.RemindersSkipped++
			s.count(MetricReminderSkipped)
			s.events.LogReminderSkipped(ctx, sub.ID, reason)
			continue
		}

		if err := s.notifier.NotifyRenewal(ctx, notifications.NewRenewalReminder(sub, daysUntil)); err != nil {
			result.Errors++
			s.count(MetricReminderFailed)
			s.events.LogReminderFailed(ctx, sub.ID, "notify", err)
			continue
		}

		sentAt := s.now().UTC()
		if err := s.subscriptionRepo.MarkReminderSent(sub.ID, sentAt); err != nil {
			result.Errors++
			s.count(MetricReminderFailed)
			s.events.LogReminderFailed(ctx, sub.ID, "mark_sent", err)
			continue
		}
		sub.LastReminderSentAt = &sentAt

		if err := s.auditService.LogReminderSent(sub); err != nil {
			s.logger.ErrorContext(ctx, "failed to audit reminder",
				"error", err,
				"subscription_id", sub.ID)
		}

		result.RemindersSent++
		s.count(MetricReminderSent)
		s.events.LogReminderSent(ctx, sub.ID, sub.UserID, daysUntil)
	}

	result.Finish()

	elapsed := time.Since(start)
	s.events.LogRunCompleted(ctx, result.RemindersSent, result.RemindersSkipped, result.Errors, elapsed.Milliseconds())
	if s.metrics != nil {
		s.metrics.RecordProcessingTime(MetricReminderRunDuration, elapsed)
		s.metrics.RecordGauge(MetricReminderLastRunSent, float64(result.RemindersSent), nil)
		s.metrics.RecordGauge(MetricReminderLastRunErrors, float64(result.Errors), nil)
	}

	return result, nil
}

func skipReason(sub *models.Subscription, daysUntil int, hasDate bool, withinDays int) string {
	switch {
	case !hasDate || daysUntil < 0 || daysUntil > withinDays:
		return skipOutsideWindow
	case daysUntil != sub.ReminderDaysBefore:
		return skipNotDueToday
	case sub.LastReminderSentAt != nil:
		return skipAlreadySent
	default:
		return ""
	}
}

func (s *ReminderService) count(name string) {
	if s.metrics != nil {
		s.metrics.IncrementCounter(name, nil)
	}
}
