package forecast

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, dayOfMonth int) time.Time {
	return time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month, dayOfMonth int) *time.Time {
	d := date(year, month, dayOfMonth)
	return &d
}

func strPtr(s string) *string {
	return &s
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(expected).Equal(actual),
		"expected %s, got %s", expected, actual.String())
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		price    string
		cycle    string
		expected string
	}{
		{"monthly unchanged", "12", "monthly", "12"},
		{"yearly divided by twelve", "120", "yearly", "10"},
		{"weekly times average weeks", "10", "weekly", "43.45"},
		{"cycle is case insensitive", "120", "YEARLY", "10"},
		{"unknown cycle treated as monthly", "15.50", "fortnightly", "15.50"},
		{"empty cycle treated as monthly", "7", "", "7"},
		{"zero price", "0", "weekly", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(decimal.RequireFromString(tt.price), tt.cycle)
			assertDecimal(t, tt.expected, got)
		})
	}
}

func TestNormalize_KeepsFullPrecision(t *testing.T) {
	got := Normalize(decimal.NewFromInt(100), "yearly")
	assert.True(t, got.GreaterThan(decimal.RequireFromString("8.33")))
	assert.True(t, got.LessThan(decimal.RequireFromString("8.34")))
}

func TestParseBillingCycle(t *testing.T) {
	cycle, ok := ParseBillingCycle(" Weekly ")
	assert.True(t, ok)
	assert.Equal(t, CycleWeekly, cycle)

	cycle, ok = ParseBillingCycle("daily")
	assert.False(t, ok)
	assert.Equal(t, CycleMonthly, cycle)

	assert.True(t, IsValidBillingCycle("MONTHLY"))
	assert.False(t, IsValidBillingCycle("quarterly"))
}

func TestChargeForMonth_Monthly(t *testing.T) {
	sub := Subscription{Price: decimal.NewFromInt(10), BillingCycle: "monthly", NextBillingDate: datePtr(2030, time.January, 1)}
	base := date(2025, time.January, 1)

	for i := 0; i < 24; i++ {
		assertDecimal(t, "10", ChargeForMonth(sub, base.AddDate(0, i, 0), base))
	}
}

func TestChargeForMonth_UnknownCycleChargesEveryMonth(t *testing.T) {
	sub := Subscription{Price: decimal.NewFromInt(5), BillingCycle: "biannual"}
	base := date(2025, time.January, 1)

	assertDecimal(t, "5", ChargeForMonth(sub, date(2025, time.July, 1), base))
}

func TestChargeForMonth_Yearly(t *testing.T) {
	base := date(2025, time.January, 1)
	sub := Subscription{
		Price:           decimal.NewFromInt(120),
		BillingCycle:    "yearly",
		NextBillingDate: datePtr(2025, time.March, 15),
	}

	tests := []struct {
		name     string
		target   time.Time
		expected string
	}{
		{"anchor month", date(2025, time.March, 1), "120"},
		{"before anchor", date(2025, time.February, 1), "0"},
		{"one year before anchor", date(2024, time.March, 1), "0"},
		{"month after anchor", date(2025, time.April, 1), "0"},
		{"twelve months after anchor", date(2026, time.March, 1), "120"},
		{"twenty four months after anchor", date(2027, time.March, 1), "120"},
		{"eleven months after anchor", date(2026, time.February, 1), "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDecimal(t, tt.expected, ChargeForMonth(sub, tt.target, base))
		})
	}
}

func TestChargeForMonth_YearlyFallsBackToCreatedAt(t *testing.T) {
	base := date(2025, time.January, 1)
	sub := Subscription{
		Price:        decimal.NewFromInt(60),
		BillingCycle: "yearly",
		CreatedAt:    datePtr(2024, time.June, 10),
	}

	assertDecimal(t, "60", ChargeForMonth(sub, date(2025, time.June, 1), base))
	assertDecimal(t, "0", ChargeForMonth(sub, date(2025, time.May, 1), base))
}

func TestChargeForMonth_YearlyFallsBackToBaseMonth(t *testing.T) {
	base := date(2025, time.January, 1)
	sub := Subscription{Price: decimal.NewFromInt(60), BillingCycle: "yearly"}

	assertDecimal(t, "60", ChargeForMonth(sub, base, base))
	assertDecimal(t, "0", ChargeForMonth(sub, date(2025, time.February, 1), base))
	assertDecimal(t, "60", ChargeForMonth(sub, date(2026, time.January, 1), base))
}

func TestChargeForMonth_Weekly(t *testing.T) {
	base := date(2025, time.October, 1)

	tests := []struct {
		name     string
		anchor   time.Time
		target   time.Time
		expected string
	}{
		{"anchor on first of 31 day month", date(2025, time.October, 1), date(2025, time.October, 1), "50"},
		{"anchor on first of february", date(2026, time.February, 1), date(2026, time.February, 1), "40"},
		{"anchor weeks before landing on first", date(2025, time.September, 3), date(2025, time.October, 1), "50"},
		{"anchor before landing on third", date(2025, time.September, 5), date(2025, time.October, 1), "50"},
		{"anchor before landing on fourth", date(2025, time.September, 6), date(2025, time.October, 1), "40"},
		{"anchor mid month", date(2025, time.October, 20), date(2025, time.October, 1), "20"},
		{"anchor after target month", date(2025, time.November, 5), date(2025, time.October, 1), "0"},
		{"anchor years before", date(2020, time.January, 1), date(2025, time.October, 1), "50"},
		{"anchor years before landing on sixth", date(2020, time.January, 6), date(2025, time.October, 1), "40"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			anchor := tt.anchor
			sub := Subscription{Price: decimal.NewFromInt(10), BillingCycle: "weekly", NextBillingDate: &anchor}
			assertDecimal(t, tt.expected, ChargeForMonth(sub, tt.target, base))
		})
	}
}

func TestChargeForMonth_WeeklyIgnoresTimeOfDayAndZone(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	anchor := time.Date(2025, time.October, 1, 23, 30, 0, 0, loc)
	target := time.Date(2025, time.October, 1, 0, 0, 0, 0, loc)
	sub := Subscription{Price: decimal.NewFromInt(10), BillingCycle: "weekly", NextBillingDate: &anchor}

	assertDecimal(t, "50", ChargeForMonth(sub, target, target))
}

func TestBuildForecast_EmptyDefaults(t *testing.T) {
	points := BuildForecast(nil, Options{Now: date(2025, time.December, 15)})

	require.Len(t, points, DefaultMonths)
	for _, p := range points {
		assertDecimal(t, "0", p.TotalMonthlyCost)
	}
	assert.Equal(t, "2025-12", points[0].MonthKey)
	assert.Equal(t, "Dec 2025", points[0].Label)
	assert.Equal(t, "2026-01", points[1].MonthKey)
	assert.Equal(t, "Jan 2026", points[1].Label)
	assert.Equal(t, "2026-11", points[11].MonthKey)
}

func TestBuildForecast_ZeroNowUsesCurrentMonth(t *testing.T) {
	points := BuildForecast(nil, Options{})

	require.Len(t, points, DefaultMonths)
	assert.Equal(t, time.Now().Format("2006-01"), points[0].MonthKey)
}

func TestBuildForecast_MonthlySubscription(t *testing.T) {
	subs := []Subscription{{
		Price:        decimal.NewFromInt(10),
		BillingCycle: "monthly",
		CreatedAt:    datePtr(2024, time.March, 2),
		IsActive:     true,
	}}

	points := BuildForecast(subs, Options{Now: date(2025, time.January, 20)})

	require.Len(t, points, 12)
	for _, p := range points {
		assertDecimal(t, "10", p.TotalMonthlyCost)
	}
}

func TestBuildForecast_YearlySubscriptionRecurs(t *testing.T) {
	now := date(2025, time.April, 9)
	subs := []Subscription{{
		Price:           decimal.NewFromInt(120),
		BillingCycle:    "yearly",
		NextBillingDate: datePtr(2025, time.April, 28),
		IsActive:        true,
	}}

	points := BuildForecast(subs, Options{Now: now})
	nonZero := 0
	for _, p := range points {
		if !p.TotalMonthlyCost.IsZero() {
			nonZero++
			assertDecimal(t, "120", p.TotalMonthlyCost)
		}
	}
	assert.Equal(t, 1, nonZero)
	assertDecimal(t, "120", points[0].TotalMonthlyCost)

	extended := BuildForecast(subs, Options{Now: now, Months: 13})
	require.Len(t, extended, 13)
	assertDecimal(t, "120", extended[12].TotalMonthlyCost)
	assert.Equal(t, "2026-04", extended[12].MonthKey)
}

func TestBuildForecast_YearlyAnchorInFutureStaysZeroUntilAnchor(t *testing.T) {
	subs := []Subscription{{
		Price:           decimal.NewFromInt(99),
		BillingCycle:    "yearly",
		NextBillingDate: datePtr(2025, time.August, 1),
		IsActive:        true,
	}}

	points := BuildForecast(subs, Options{Now: date(2025, time.January, 1)})
	for i, p := range points {
		if i == 7 {
			assertDecimal(t, "99", p.TotalMonthlyCost)
			continue
		}
		assertDecimal(t, "0", p.TotalMonthlyCost)
	}
}

func TestBuildForecast_WeeklySubscriptionPinnedDate(t *testing.T) {
	subs := []Subscription{{
		Price:           decimal.NewFromInt(10),
		BillingCycle:    "weekly",
		NextBillingDate: datePtr(2025, time.October, 1),
		IsActive:        true,
	}}

	points := BuildForecast(subs, Options{Now: date(2025, time.October, 14), Months: 2})

	require.Len(t, points, 2)
	assertDecimal(t, "50", points[0].TotalMonthlyCost)
	// Nov 5, 12, 19, 26
	assertDecimal(t, "40", points[1].TotalMonthlyCost)
}

func TestBuildForecast_InactiveSubscriptionsIgnored(t *testing.T) {
	subs := []Subscription{
		{Price: decimal.NewFromInt(500), BillingCycle: "monthly", IsActive: false},
		{Price: decimal.NewFromInt(900), BillingCycle: "yearly", IsActive: false},
		{Price: decimal.NewFromInt(25), BillingCycle: "weekly", IsActive: false},
	}

	for _, p := range BuildForecast(subs, Options{Now: date(2025, time.May, 1)}) {
		assertDecimal(t, "0", p.TotalMonthlyCost)
	}
}

func TestBuildForecast_RoundsOnlyTheTotal(t *testing.T) {
	subs := []Subscription{
		{Price: decimal.RequireFromString("0.004"), BillingCycle: "monthly", IsActive: true},
		{Price: decimal.RequireFromString("0.004"), BillingCycle: "monthly", IsActive: true},
	}

	points := BuildForecast(subs, Options{Now: date(2025, time.May, 1), Months: 1})
	assertDecimal(t, "0.01", points[0].TotalMonthlyCost)
}

func TestBuildForecast_IsDeterministicAndDoesNotMutateInput(t *testing.T) {
	subs := []Subscription{
		{Price: decimal.RequireFromString("9.99"), BillingCycle: "Weekly", NextBillingDate: datePtr(2025, time.March, 3), IsActive: true},
		{Price: decimal.RequireFromString("119.88"), BillingCycle: "yearly", CreatedAt: datePtr(2024, time.July, 1), IsActive: true},
		{Price: decimal.RequireFromString("15.49"), BillingCycle: "monthly", Category: strPtr("Video"), IsActive: true},
	}
	opts := Options{Now: date(2025, time.March, 12), Months: 18}

	first := BuildForecast(subs, opts)
	second := BuildForecast(subs, opts)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].MonthKey, second[i].MonthKey)
		assert.Equal(t, first[i].Label, second[i].Label)
		assert.Equal(t, first[i].TotalMonthlyCost.String(), second[i].TotalMonthlyCost.String())
	}
	assert.Equal(t, "Weekly", subs[0].BillingCycle)
	assert.Equal(t, date(2025, time.March, 3), *subs[0].NextBillingDate)
	assert.Nil(t, subs[1].NextBillingDate)
}

func TestBuildForecast_NegativeMonthsDefaults(t *testing.T) {
	points := BuildForecast(nil, Options{Now: date(2025, time.May, 1), Months: -3})
	assert.Len(t, points, DefaultMonths)
}

func TestBuildForecast_KeepsCallerLocation(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	now := time.Date(2025, time.June, 1, 2, 0, 0, 0, loc)

	points := BuildForecast(nil, Options{Now: now, Months: 1})
	assert.Equal(t, "2025-06", points[0].MonthKey)
}

func TestFirstOfMonth(t *testing.T) {
	got := FirstOfMonth(time.Date(2024, time.February, 29, 17, 45, 3, 9, time.UTC))
	assert.Equal(t, date(2024, time.February, 1), got)
}
