package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names accepted by MetricsRecorderInterface
const (
	MetricAuthEvents            = "auth.events"
	MetricSubscriptionChanged   = "subscription.changed"
	MetricSubscriptionsSeeded   = "subscription.seeded"
	MetricReminderSent          = "reminder.sent"
	MetricReminderSkipped       = "reminder.skipped"
	MetricReminderFailed        = "reminder.failed"
	MetricReminderRunDuration   = "reminder.run"
	MetricReminderLastRunSent   = "reminder.last_run_sent"
	MetricReminderLastRunErrors = "reminder.last_run_errors"
)

type PrometheusMetrics struct {
	authEventsTotal          *prometheus.CounterVec
	subscriptionChangesTotal *prometheus.CounterVec
	subscriptionsSeededTotal prometheus.Counter
	remindersTotal           *prometheus.CounterVec
	reminderRunDuration      prometheus.Histogram
	reminderLastRun          *prometheus.GaugeVec
}

// NewPrometheusMetrics registers the collectors with reg. A nil reg uses
// the default registry served on /metrics.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		authEventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event", "outcome"},
		),
		subscriptionChangesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "subscription_changes_total",
				Help: "Total number of subscription mutations by action",
			},
			[]string{"action"},
		),
		subscriptionsSeededTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "subscriptions_seeded_total",
				Help: "Total number of generated development subscriptions",
			},
		),
		remindersTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "renewal_reminders_total",
				Help: "Renewal reminders by outcome",
			},
			[]string{"outcome"},
		),
		reminderRunDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "renewal_reminder_run_duration_milliseconds",
				Help:    "Duration of a renewal reminder run in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		reminderLastRun: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "renewal_reminder_last_run",
				Help: "Counts from the most recent reminder run",
			},
			[]string{"result"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricAuthEvents:
		if event := tags["event"]; event != "" {
			m.authEventsTotal.WithLabelValues(event, tags["outcome"]).Inc()
		}
	case MetricSubscriptionChanged:
		if action := tags["action"]; action != "" {
			m.subscriptionChangesTotal.WithLabelValues(action).Inc()
		}
	case MetricSubscriptionsSeeded:
		m.subscriptionsSeededTotal.Inc()
	case MetricReminderSent:
		m.remindersTotal.WithLabelValues("sent").Inc()
	case MetricReminderSkipped:
		m.remindersTotal.WithLabelValues("skipped").Inc()
	case MetricReminderFailed:
		m.remindersTotal.WithLabelValues("failed").Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricReminderRunDuration:
		m.reminderRunDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricReminderLastRunSent:
		m.reminderLastRun.WithLabelValues("sent").Set(value)
	case MetricReminderLastRunErrors:
		m.reminderLastRun.WithLabelValues("errors").Set(value)
	}
}
