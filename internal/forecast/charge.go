package forecast

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	daysPerWeek = 7
	day         = 24 * time.Hour
)

// ChargeForMonth returns the amount a subscription actually charges during
// targetMonth. Both targetMonth and baseMonth are expected to be first-of-month
// markers; baseMonth is the anchor of last resort.
func ChargeForMonth(sub Subscription, targetMonth, baseMonth time.Time) decimal.Decimal {
	switch ResolveBillingCycle(sub.BillingCycle) {
	case CycleYearly:
		return yearlyCharge(sub, targetMonth, baseMonth)
	case CycleWeekly:
		return weeklyCharge(sub, targetMonth, baseMonth)
	default:
		return sub.Price
	}
}

// resolveAnchor picks next_billing_date, then created_at, then baseMonth
func resolveAnchor(sub Subscription, baseMonth time.Time) time.Time {
	if sub.NextBillingDate != nil && !sub.NextBillingDate.IsZero() {
		return *sub.NextBillingDate
	}
	if sub.CreatedAt != nil && !sub.CreatedAt.IsZero() {
		return *sub.CreatedAt
	}
	return baseMonth
}

func yearlyCharge(sub Subscription, targetMonth, baseMonth time.Time) decimal.Decimal {
	anchor := resolveAnchor(sub, baseMonth)

	monthsFromAnchor := (targetMonth.Year()-anchor.Year())*12 + int(targetMonth.Month()-anchor.Month())
	if monthsFromAnchor == 0 || (monthsFromAnchor > 0 && monthsFromAnchor%12 == 0) {
		return sub.Price
	}
	return decimal.Zero
}

func weeklyCharge(sub Subscription, targetMonth, baseMonth time.Time) decimal.Decimal {
	count := weeklyOccurrences(resolveAnchor(sub, baseMonth), targetMonth)
	if count == 0 {
		return decimal.Zero
	}
	return sub.Price.Mul(decimal.NewFromInt(int64(count)))
}

// weeklyOccurrences counts the 7-day steps from anchor that fall inside the
// calendar month of targetMonth. Dates are compared as civil dates in UTC so
// DST transitions never shift a step across midnight.
func weeklyOccurrences(anchor, targetMonth time.Time) int {
	monthStart := civilDate(targetMonth.Year(), targetMonth.Month(), 1)
	monthEnd := monthStart.AddDate(0, 1, 0)

	current := civilDate(anchor.Year(), anchor.Month(), anchor.Day())
	if current.Before(monthStart) {
		behind := int(monthStart.Sub(current) / day)
		steps := (behind + daysPerWeek - 1) / daysPerWeek
		current = current.AddDate(0, 0, steps*daysPerWeek)
	}

	count := 0
	for current.Before(monthEnd) {
		count++
		current = current.AddDate(0, 0, daysPerWeek)
	}
	return count
}

func civilDate(year int, month time.Month, dayOfMonth int) time.Time {
	return time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)
}
