package dto

import (
	"time"

	"subtrack/internal/forecast"
	"subtrack/internal/models"

	"github.com/shopspring/decimal"
)

// CreateSubscriptionRequest carries a new subscription. Omitted fields take
// their defaults: USD, monthly, active, reminders on, and the user's
// default reminder lead time.
type CreateSubscriptionRequest struct {
	Name               string           `json:"name" validate:"required,min=1,max=255,single_line"`
	Price              *decimal.Decimal `json:"price" validate:"required"`
	Currency           string           `json:"currency,omitempty" validate:"omitempty,currency_code"`
	BillingCycle       string           `json:"billing_cycle,omitempty" validate:"omitempty,billing_cycle"`
	NextBillingDate    *Date            `json:"next_billing_date,omitempty"`
	Category           *string          `json:"category,omitempty" validate:"omitempty,category_name"`
	IsActive           *bool            `json:"is_active,omitempty"`
	ReminderEnabled    *bool            `json:"reminder_enabled,omitempty"`
	ReminderDaysBefore *int             `json:"reminder_days_before,omitempty" validate:"omitempty,min=0,max=60"`
}

// UpdateSubscriptionRequest applies only the fields that are present.
// next_billing_date and category may be sent as null to clear them.
type UpdateSubscriptionRequest struct {
	Name               *string          `json:"name,omitempty" validate:"omitempty,min=1,max=255,single_line"`
	Price              *decimal.Decimal `json:"price,omitempty"`
	Currency           *string          `json:"currency,omitempty" validate:"omitempty,currency_code"`
	BillingCycle       *string          `json:"billing_cycle,omitempty" validate:"omitempty,billing_cycle"`
	NextBillingDate    Optional[Date]   `json:"next_billing_date"`
	Category           Optional[string] `json:"category"`
	IsActive           *bool            `json:"is_active,omitempty"`
	ReminderEnabled    *bool            `json:"reminder_enabled,omitempty"`
	ReminderDaysBefore *int             `json:"reminder_days_before,omitempty" validate:"omitempty,min=0,max=60"`
}

// SubscriptionResponse is the wire form of a subscription
type SubscriptionResponse struct {
	ID                 string          `json:"id"`
	UserID             string          `json:"user_id"`
	Name               string          `json:"name"`
	Price              decimal.Decimal `json:"price"`
	Currency           string          `json:"currency"`
	BillingCycle       string          `json:"billing_cycle"`
	MonthlyCost        decimal.Decimal `json:"monthly_cost"`
	NextBillingDate    *Date           `json:"next_billing_date"`
	Category           *string         `json:"category"`
	IsActive           bool            `json:"is_active"`
	ReminderEnabled    bool            `json:"reminder_enabled"`
	ReminderDaysBefore int             `json:"reminder_days_before"`
	LastReminderSentAt *time.Time      `json:"last_reminder_sent_at,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

func ToSubscriptionResponse(sub *models.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		ID:                 sub.ID.String(),
		UserID:             sub.UserID.String(),
		Name:               sub.Name,
		Price:              sub.Price.Round(2),
		Currency:           sub.Currency,
		BillingCycle:       sub.BillingCycle,
		MonthlyCost:        sub.MonthlyCost().Round(2),
		NextBillingDate:    DatePtr(sub.NextBillingDate),
		Category:           sub.Category,
		IsActive:           sub.IsActive,
		ReminderEnabled:    sub.ReminderEnabled,
		ReminderDaysBefore: sub.ReminderDaysBefore,
		LastReminderSentAt: sub.LastReminderSentAt,
		CreatedAt:          sub.CreatedAt,
		UpdatedAt:          sub.UpdatedAt,
	}
}

func ToSubscriptionResponses(subs []models.Subscription) []SubscriptionResponse {
	out := make([]SubscriptionResponse, 0, len(subs))
	for i := range subs {
		out = append(out, ToSubscriptionResponse(&subs[i]))
	}
	return out
}

// SubscriptionListResponse wraps a listing with its count
type SubscriptionListResponse struct {
	Subscriptions []SubscriptionResponse `json:"subscriptions"`
	Total         int                    `json:"total"`
}

// ForecastResponse carries the projected monthly totals
type ForecastResponse struct {
	Months int                      `json:"months"`
	Points []forecast.ForecastPoint `json:"points"`
	Total  decimal.Decimal          `json:"total"`
}

func NewForecastResponse(points []forecast.ForecastPoint) ForecastResponse {
	total := decimal.Zero
	for _, p := range points {
		total = total.Add(p.TotalMonthlyCost)
	}
	return ForecastResponse{
		Months: len(points),
		Points: points,
		Total:  total.Round(2),
	}
}

// CategoryBreakdownResponse carries normalized monthly spend per category
type CategoryBreakdownResponse struct {
	Categories       []forecast.CategoryBreakdownItem `json:"categories"`
	TotalMonthlyCost decimal.Decimal                  `json:"total_monthly_cost"`
}

func NewCategoryBreakdownResponse(items []forecast.CategoryBreakdownItem) CategoryBreakdownResponse {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.MonthlyCost)
	}
	return CategoryBreakdownResponse{
		Categories:       items,
		TotalMonthlyCost: total.Round(2),
	}
}

// UpcomingRenewal is a subscription due within the requested window
type UpcomingRenewal struct {
	SubscriptionResponse
	DaysUntilRenewal int `json:"days_until_renewal"`
}

// UpcomingRenewalsResponse lists renewals soonest first
type UpcomingRenewalsResponse struct {
	WithinDays int               `json:"within_days"`
	Renewals   []UpcomingRenewal `json:"renewals"`
}

func NewUpcomingRenewalsResponse(subs []models.Subscription, withinDays int, today time.Time) UpcomingRenewalsResponse {
	renewals := make([]UpcomingRenewal, 0, len(subs))
	for i := range subs {
		days, _ := subs[i].DaysUntilNextBilling(today)
		renewals = append(renewals, UpcomingRenewal{
			SubscriptionResponse: ToSubscriptionResponse(&subs[i]),
			DaysUntilRenewal:     days,
		})
	}
	return UpcomingRenewalsResponse{
		WithinDays: withinDays,
		Renewals:   renewals,
	}
}

// GenerateSubscriptionsResponse reports a dev seeding run
type GenerateSubscriptionsResponse struct {
	Generated     int                    `json:"generated"`
	Subscriptions []SubscriptionResponse `json:"subscriptions"`
}
