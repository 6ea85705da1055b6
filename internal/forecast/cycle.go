package forecast

import (
	"strings"

	"github.com/shopspring/decimal"
)

// BillingCycle is the recurrence cadence of a subscription charge
type BillingCycle string

const (
	CycleMonthly BillingCycle = "monthly"
	CycleYearly  BillingCycle = "yearly"
	CycleWeekly  BillingCycle = "weekly"
)

var (
	// average number of weeks in a calendar month
	weeksPerMonth = decimal.RequireFromString("4.345")
	monthsPerYear = decimal.NewFromInt(12)
)

// ParseBillingCycle parses a cycle case-insensitively. The boolean reports
// whether the value was recognised.
func ParseBillingCycle(raw string) (BillingCycle, bool) {
	switch BillingCycle(strings.ToLower(strings.TrimSpace(raw))) {
	case CycleMonthly:
		return CycleMonthly, true
	case CycleYearly:
		return CycleYearly, true
	case CycleWeekly:
		return CycleWeekly, true
	default:
		return CycleMonthly, false
	}
}

// ResolveBillingCycle returns the effective cycle, falling back to monthly
// for anything unrecognised.
func ResolveBillingCycle(raw string) BillingCycle {
	cycle, _ := ParseBillingCycle(raw)
	return cycle
}

// IsValidBillingCycle reports whether raw names a known cycle
func IsValidBillingCycle(raw string) bool {
	_, ok := ParseBillingCycle(raw)
	return ok
}

// Normalize converts a price to its monthly equivalent.
// The result is unrounded.
func Normalize(price decimal.Decimal, cycle string) decimal.Decimal {
	switch ResolveBillingCycle(cycle) {
	case CycleYearly:
		return price.Div(monthsPerYear)
	case CycleWeekly:
		return price.Mul(weeksPerMonth)
	default:
		return price
	}
}
