package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// ReminderScheduler runs the reminder job once a day at a fixed wall-clock
// time in the server's local time zone.
type ReminderScheduler struct {
	service    ReminderServiceInterface
	spec       string
	schedule   cron.Schedule
	withinDays int
	logger     *slog.Logger
}

func NewReminderScheduler(service ReminderServiceInterface, hour, minute, withinDays int, logger *slog.Logger) (*ReminderScheduler, error) {
	spec := fmt.Sprintf("%d %d * * *", minute, hour)

	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid reminder schedule %02d:%02d: %w", hour, minute, err)
	}

	return &ReminderScheduler{
		service:    service,
		spec:       spec,
		schedule:   schedule,
		withinDays: withinDays,
		logger:     logger,
	}, nil
}

// NextRun returns the first scheduled time strictly after from, in from's
// location.
func (rs *ReminderScheduler) NextRun(from time.Time) time.Time {
	return rs.schedule.Next(from)
}

// Run blocks until ctx is cancelled. A run still in progress at that point
// is allowed to finish.
func (rs *ReminderScheduler) Run(ctx context.Context) error {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	c.Schedule(rs.schedule, cron.FuncJob(func() {
		rs.runOnce(ctx)
	}))

	c.Start()
	rs.logger.Info("reminder scheduler started",
		"schedule", rs.spec,
		"within_days", rs.withinDays,
		"next_run", rs.NextRun(time.Now()).Format(time.RFC3339))

	<-ctx.Done()

	<-c.Stop().Done()
	rs.logger.Info("reminder scheduler stopped")
	return nil
}

func (rs *ReminderScheduler) runOnce(ctx context.Context) {
	runCtx := WithCorrelationID(ctx, uuid.New().String())

	result, err := rs.service.ProcessRenewalReminders(runCtx, rs.withinDays)
	if err != nil {
		rs.logger.Error("scheduled reminder run failed", "error", err)
		return
	}

	rs.logger.Info("scheduled reminder run completed",
		"reminders_sent", result.RemindersSent,
		"reminders_skipped", result.RemindersSkipped,
		"errors", result.Errors,
		"next_run", rs.NextRun(time.Now()).Format(time.RFC3339))
}
