package forecast

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCategoryBreakdown_Empty(t *testing.T) {
	items := BuildCategoryBreakdown(nil)
	require.NotNil(t, items)
	assert.Empty(t, items)

	items = BuildCategoryBreakdown([]Subscription{{Price: decimal.NewFromInt(10), IsActive: false}})
	assert.Empty(t, items)
}

func TestBuildCategoryBreakdown_BlankCategoryIsUncategorized(t *testing.T) {
	subs := []Subscription{
		{Price: decimal.NewFromInt(10), BillingCycle: "monthly", Category: strPtr("Music"), IsActive: true},
		{Price: decimal.NewFromInt(5), BillingCycle: "monthly", Category: strPtr(""), IsActive: true},
	}

	items := BuildCategoryBreakdown(subs)

	require.Len(t, items, 2)
	assert.Equal(t, "Music", items[0].Category)
	assertDecimal(t, "10", items[0].MonthlyCost)
	assert.Equal(t, UncategorizedLabel, items[1].Category)
	assertDecimal(t, "5", items[1].MonthlyCost)
}

func TestBuildCategoryBreakdown_NilAndWhitespaceMergeIntoUncategorized(t *testing.T) {
	subs := []Subscription{
		{Price: decimal.NewFromInt(4), BillingCycle: "monthly", IsActive: true},
		{Price: decimal.NewFromInt(6), BillingCycle: "monthly", Category: strPtr("   "), IsActive: true},
	}

	items := BuildCategoryBreakdown(subs)

	require.Len(t, items, 1)
	assert.Equal(t, UncategorizedLabel, items[0].Category)
	assertDecimal(t, "10", items[0].MonthlyCost)
}

func TestBuildCategoryBreakdown_NormalizesAndSortsDescending(t *testing.T) {
	subs := []Subscription{
		{Price: decimal.NewFromInt(120), BillingCycle: "yearly", Category: strPtr("Cloud"), IsActive: true},
		{Price: decimal.NewFromInt(10), BillingCycle: "weekly", Category: strPtr("Fitness"), IsActive: true},
		{Price: decimal.RequireFromString("15.99"), BillingCycle: "monthly", Category: strPtr("Video"), IsActive: true},
		{Price: decimal.RequireFromString("9.99"), BillingCycle: "MONTHLY", Category: strPtr("Video"), IsActive: true},
		{Price: decimal.NewFromInt(1000), BillingCycle: "monthly", Category: strPtr("Cloud"), IsActive: false},
	}

	items := BuildCategoryBreakdown(subs)

	require.Len(t, items, 3)
	assert.Equal(t, "Fitness", items[0].Category)
	assertDecimal(t, "43.45", items[0].MonthlyCost)
	assert.Equal(t, "Video", items[1].Category)
	assertDecimal(t, "25.98", items[1].MonthlyCost)
	assert.Equal(t, "Cloud", items[2].Category)
	assertDecimal(t, "10", items[2].MonthlyCost)
}

func TestBuildCategoryBreakdown_RoundsAfterAccumulating(t *testing.T) {
	subs := []Subscription{
		{Price: decimal.NewFromInt(10), BillingCycle: "yearly", Category: strPtr("News"), IsActive: true},
		{Price: decimal.NewFromInt(10), BillingCycle: "yearly", Category: strPtr("News"), IsActive: true},
		{Price: decimal.NewFromInt(10), BillingCycle: "yearly", Category: strPtr("News"), IsActive: true},
	}

	items := BuildCategoryBreakdown(subs)

	require.Len(t, items, 1)
	assertDecimal(t, "2.5", items[0].MonthlyCost)
}

func TestBuildCategoryBreakdown_RoundsHalfAwayFromZero(t *testing.T) {
	subs := []Subscription{
		{Price: decimal.RequireFromString("0.06"), BillingCycle: "yearly", Category: strPtr("Tiny"), IsActive: true},
	}

	items := BuildCategoryBreakdown(subs)

	require.Len(t, items, 1)
	assertDecimal(t, "0.01", items[0].MonthlyCost)
}

func TestBuildCategoryBreakdown_IndependentOfInputOrder(t *testing.T) {
	a := Subscription{Price: decimal.NewFromInt(30), BillingCycle: "monthly", Category: strPtr("A"), IsActive: true}
	b := Subscription{Price: decimal.NewFromInt(20), BillingCycle: "monthly", Category: strPtr("B"), IsActive: true}
	c := Subscription{Price: decimal.NewFromInt(10), BillingCycle: "monthly", Category: strPtr("C"), IsActive: true}

	forward := BuildCategoryBreakdown([]Subscription{a, b, c})
	reverse := BuildCategoryBreakdown([]Subscription{c, b, a})

	require.Len(t, reverse, len(forward))
	for i := range forward {
		assert.Equal(t, forward[i].Category, reverse[i].Category)
		assert.Equal(t, forward[i].MonthlyCost.String(), reverse[i].MonthlyCost.String())
	}
}

func TestResolveCategory(t *testing.T) {
	assert.Equal(t, UncategorizedLabel, ResolveCategory(nil))
	assert.Equal(t, UncategorizedLabel, ResolveCategory(strPtr("")))
	assert.Equal(t, UncategorizedLabel, ResolveCategory(strPtr("  \t")))
	assert.Equal(t, "Music", ResolveCategory(strPtr("Music")))
	assert.Equal(t, " Music ", ResolveCategory(strPtr(" Music ")))
}

func TestBuildCategoryBreakdown_KeepsLabelsAsStored(t *testing.T) {
	subs := []Subscription{
		{Price: decimal.NewFromInt(10), BillingCycle: "monthly", Category: strPtr("Music"), IsActive: true},
		{Price: decimal.NewFromInt(5), BillingCycle: "monthly", Category: strPtr(" Music"), IsActive: true},
	}

	items := BuildCategoryBreakdown(subs)

	require.Len(t, items, 2)
	assert.Equal(t, "Music", items[0].Category)
	assert.Equal(t, "10", items[0].MonthlyCost.String())
	assert.Equal(t, " Music", items[1].Category)
	assert.Equal(t, "5", items[1].MonthlyCost.String())
}
