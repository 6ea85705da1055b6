package forecast

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// UncategorizedLabel is used for subscriptions without a category
const UncategorizedLabel = "Uncategorized"

// CategoryBreakdownItem is the normalized monthly cost of one category
type CategoryBreakdownItem struct {
	Category    string          `json:"category"`
	MonthlyCost decimal.Decimal `json:"monthly_cost"`
}

// ResolveCategory maps a blank or missing category to UncategorizedLabel.
// Any other label is returned as stored.
func ResolveCategory(category *string) string {
	if category == nil || strings.TrimSpace(*category) == "" {
		return UncategorizedLabel
	}
	return *category
}

// BuildCategoryBreakdown groups active subscriptions by category and returns
// their normalized monthly cost, highest first. Tie order is not defined.
func BuildCategoryBreakdown(subs []Subscription) []CategoryBreakdownItem {
	active := activeOnly(subs)
	if len(active) == 0 {
		return []CategoryBreakdownItem{}
	}

	order := make([]string, 0)
	totals := make(map[string]decimal.Decimal)
	for _, sub := range active {
		category := ResolveCategory(sub.Category)
		current, seen := totals[category]
		if !seen {
			order = append(order, category)
		}
		totals[category] = current.Add(Normalize(sub.Price, sub.BillingCycle))
	}

	items := make([]CategoryBreakdownItem, 0, len(order))
	for _, category := range order {
		items = append(items, CategoryBreakdownItem{
			Category:    category,
			MonthlyCost: totals[category].Round(outputPlaces),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].MonthlyCost.GreaterThan(items[j].MonthlyCost)
	})

	return items
}
