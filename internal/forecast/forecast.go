// Package forecast projects recurring subscription costs forward in time and
// aggregates them by category. Every function in this package is pure.
package forecast

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	DefaultMonths = 12

	monthKeyLayout = "2006-01"
	labelLayout    = "Jan 2006"
	outputPlaces   = 2
)

// Subscription is the read-only view of a subscription the engine needs
type Subscription struct {
	Price           decimal.Decimal
	BillingCycle    string
	NextBillingDate *time.Time
	CreatedAt       *time.Time
	IsActive        bool
	Category        *string
}

// Options configures BuildForecast. Zero values select the defaults.
type Options struct {
	Months int
	Now    time.Time
}

// ForecastPoint is the total actual charge for one calendar month
type ForecastPoint struct {
	MonthKey         string          `json:"month_key"`
	Label            string          `json:"label"`
	TotalMonthlyCost decimal.Decimal `json:"total_monthly_cost"`
}

// BuildForecast sums the charges of every active subscription for each month
// of the horizon, starting at the month containing opts.Now.
func BuildForecast(subs []Subscription, opts Options) []ForecastPoint {
	months := opts.Months
	if months <= 0 {
		months = DefaultMonths
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	baseMonth := FirstOfMonth(now)
	active := activeOnly(subs)

	points := make([]ForecastPoint, 0, months)
	for i := 0; i < months; i++ {
		targetMonth := baseMonth.AddDate(0, i, 0)

		total := decimal.Zero
		for _, sub := range active {
			total = total.Add(ChargeForMonth(sub, targetMonth, baseMonth))
		}

		points = append(points, ForecastPoint{
			MonthKey:         targetMonth.Format(monthKeyLayout),
			Label:            targetMonth.Format(labelLayout),
			TotalMonthlyCost: total.Round(outputPlaces),
		})
	}

	return points
}

// FirstOfMonth returns midnight on the first day of t's month in t's location
func FirstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func activeOnly(subs []Subscription) []Subscription {
	active := make([]Subscription, 0, len(subs))
	for _, sub := range subs {
		if sub.IsActive {
			active = append(active, sub)
		}
	}
	return active
}
