package models

import "github.com/shopspring/decimal"

// SubscriptionSummary contains spending totals across a user's active subscriptions
type SubscriptionSummary struct {
	TotalActive      int64                      `json:"total_active"`
	TotalMonthlyCost decimal.Decimal            `json:"total_monthly_cost"`
	TotalYearlyCost  decimal.Decimal            `json:"total_yearly_cost"`
	ByBillingCycle   map[string]decimal.Decimal `json:"by_billing_cycle"`
}

// SubscriptionFilters narrows a subscription listing
type SubscriptionFilters struct {
	Active   *bool
	Category *string
}
