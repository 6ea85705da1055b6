// Package notifications delivers renewal reminders over email, a message
// broker, or the application log.
package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"subtrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrNoRecipient = errors.New("reminder has no recipient email")

// Notifier delivers a single renewal reminder
type Notifier interface {
	NotifyRenewal(ctx context.Context, reminder RenewalReminder) error
}

// RenewalReminder describes one upcoming charge for one user
type RenewalReminder struct {
	SubscriptionID  uuid.UUID
	UserID          uuid.UUID
	Email           string
	FirstName       string
	Name            string
	Price           decimal.Decimal
	Currency        string
	BillingCycle    string
	NextBillingDate time.Time
	DaysUntil       int
}

// NewRenewalReminder builds a reminder from a subscription with its owner
// preloaded.
func NewRenewalReminder(sub *models.Subscription, daysUntil int) RenewalReminder {
	reminder := RenewalReminder{
		SubscriptionID: sub.ID,
		UserID:         sub.UserID,
		Name:           sub.Name,
		Price:          sub.Price,
		Currency:       sub.Currency,
		BillingCycle:   sub.BillingCycle,
		DaysUntil:      daysUntil,
	}
	if sub.NextBillingDate != nil {
		reminder.NextBillingDate = models.DateOnly(*sub.NextBillingDate)
	}
	if sub.User != nil {
		reminder.Email = sub.User.Email
		reminder.FirstName = sub.User.FirstName
	}
	return reminder
}

// Subject is the email subject line for the reminder. Control characters
// in the subscription name are replaced so the result is a single line.
func (r RenewalReminder) Subject() string {
	return fmt.Sprintf("Upcoming subscription renewal: %s", singleLine(r.Name))
}

func singleLine(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
}

// Body is the plain-text reminder message
func (r RenewalReminder) Body() string {
	greeting := "Hi"
	if r.FirstName != "" {
		greeting = "Hi " + r.FirstName
	}

	when := fmt.Sprintf("in %d days", r.DaysUntil)
	switch r.DaysUntil {
	case 0:
		when = "today"
	case 1:
		when = "tomorrow"
	}

	return fmt.Sprintf("%s,\n\nYour %s subscription (%s %s, billed %s) renews %s on %s.\n\nYou can review or cancel it in SubTrack.\n",
		greeting,
		r.Name,
		r.Price.StringFixed(2),
		r.Currency,
		r.BillingCycle,
		when,
		r.NextBillingDate.Format("Monday, January 2, 2006"),
	)
}

// RenewalReminderEvent is the message published to the broker
type RenewalReminderEvent struct {
	EventType       string    `json:"event_type"`
	SubscriptionID  string    `json:"subscription_id"`
	UserID          string    `json:"user_id"`
	Email           string    `json:"email"`
	Name            string    `json:"name"`
	Price           string    `json:"price"`
	Currency        string    `json:"currency"`
	BillingCycle    string    `json:"billing_cycle"`
	NextBillingDate string    `json:"next_billing_date"`
	DaysUntil       int       `json:"days_until"`
	Timestamp       time.Time `json:"timestamp"`
}

const RenewalReminderEventType = "subscription.renewal_reminder"

func NewRenewalReminderEvent(r RenewalReminder, at time.Time) *RenewalReminderEvent {
	return &RenewalReminderEvent{
		EventType:       RenewalReminderEventType,
		SubscriptionID:  r.SubscriptionID.String(),
		UserID:          r.UserID.String(),
		Email:           r.Email,
		Name:            r.Name,
		Price:           r.Price.StringFixed(2),
		Currency:        r.Currency,
		BillingCycle:    r.BillingCycle,
		NextBillingDate: r.NextBillingDate.Format("2006-01-02"),
		DaysUntil:       r.DaysUntil,
		Timestamp:       at.UTC(),
	}
}

func (e *RenewalReminderEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

func RenewalReminderEventFromJSON(data []byte) (*RenewalReminderEvent, error) {
	var event RenewalReminderEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, err
	}
	return &event, nil
}
