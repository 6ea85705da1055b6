package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"subtrack/internal/forecast"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	DefaultCurrency     = "USD"
	MaxSubscriptionName = 255
	MaxCategoryLength   = 50
)

var (
	ErrInvalidBillingCycle = errors.New("invalid billing cycle")
	ErrNegativePrice       = errors.New("price cannot be negative")
	ErrInvalidCurrency     = errors.New("currency must be a 3-letter code")
)

// Subscription is a recurring charge tracked for a user
type Subscription struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID             uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name               string          `gorm:"type:varchar(255);not null" json:"name"`
	Price              decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Currency           string          `gorm:"type:varchar(3);not null;default:'USD'" json:"currency"`
	BillingCycle       string          `gorm:"type:varchar(20);not null;default:'monthly'" json:"billing_cycle"`
	NextBillingDate    *time.Time      `gorm:"type:date;index" json:"next_billing_date,omitempty"`
	Category           *string         `gorm:"type:varchar(50)" json:"category,omitempty"`
	IsActive           bool            `gorm:"not null;index" json:"is_active"`
	ReminderEnabled    bool            `gorm:"not null" json:"reminder_enabled"`
	ReminderDaysBefore int             `gorm:"not null" json:"reminder_days_before"`
	LastReminderSentAt *time.Time      `json:"last_reminder_sent_at,omitempty"`
	CreatedAt          time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt          time.Time       `gorm:"not null" json:"updated_at"`
	DeletedAt          gorm.DeletedAt  `gorm:"index" json:"-"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (s *Subscription) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.Currency == "" {
		s.Currency = DefaultCurrency
	}
	if s.BillingCycle == "" {
		s.BillingCycle = string(forecast.CycleMonthly)
	}

	now := time.Now()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = now
	}

	s.Normalize()
	return s.Validate()
}

func (s *Subscription) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Dest != nil {
		if _, ok := tx.Statement.Dest.(map[string]interface{}); ok {
			return nil
		}
	}

	s.Normalize()
	return s.Validate()
}

// Normalize puts user-supplied fields into their stored form
func (s *Subscription) Normalize() {
	s.Name = strings.TrimSpace(s.Name)
	s.BillingCycle = strings.ToLower(strings.TrimSpace(s.BillingCycle))
	s.Currency = strings.ToUpper(strings.TrimSpace(s.Currency))

	if s.Category != nil {
		trimmed := strings.TrimSpace(*s.Category)
		if trimmed == "" {
			s.Category = nil
		} else {
			s.Category = &trimmed
		}
	}

	if s.NextBillingDate != nil {
		d := DateOnly(*s.NextBillingDate)
		s.NextBillingDate = &d
	}
}

func (s *Subscription) Validate() error {
	if s.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if s.Name == "" {
		return errors.New("name is required")
	}

	if utf8.RuneCountInString(s.Name) > MaxSubscriptionName {
		return fmt.Errorf("name must be at most %d characters", MaxSubscriptionName)
	}

	if s.Price.IsNegative() {
		return ErrNegativePrice
	}

	if !forecast.IsValidBillingCycle(s.BillingCycle) {
		return fmt.Errorf("%w: %s", ErrInvalidBillingCycle, s.BillingCycle)
	}

	if len(s.Currency) != 3 {
		return ErrInvalidCurrency
	}

	if s.Category != nil && utf8.RuneCountInString(*s.Category) > MaxCategoryLength {
		return fmt.Errorf("category must be at most %d characters", MaxCategoryLength)
	}

	if s.ReminderDaysBefore < 0 || s.ReminderDaysBefore > MaxReminderDaysBefore {
		return fmt.Errorf("reminder days must be between 0 and %d", MaxReminderDaysBefore)
	}

	return nil
}

// ForecastRecord returns the view of the subscription used by the forecast engine
func (s *Subscription) ForecastRecord() forecast.Subscription {
	createdAt := s.CreatedAt
	record := forecast.Subscription{
		Price:           s.Price,
		BillingCycle:    s.BillingCycle,
		NextBillingDate: s.NextBillingDate,
		IsActive:        s.IsActive,
		Category:        s.Category,
	}
	if !createdAt.IsZero() {
		record.CreatedAt = &createdAt
	}
	return record
}

// MonthlyCost is the unrounded monthly equivalent of the price
func (s *Subscription) MonthlyCost() decimal.Decimal {
	return forecast.Normalize(s.Price, s.BillingCycle)
}

// DaysUntilNextBilling counts calendar days from today to the next billing
// date. The boolean is false when no next billing date is set.
func (s *Subscription) DaysUntilNextBilling(today time.Time) (int, bool) {
	if s.NextBillingDate == nil {
		return 0, false
	}
	from := DateOnly(today)
	to := DateOnly(*s.NextBillingDate)
	return int(to.Sub(from).Hours() / 24), true
}

// SetNextBillingDate changes the billing date and, when it actually moves,
// clears the reminder marker so the new cycle gets its own reminder.
func (s *Subscription) SetNextBillingDate(next *time.Time) {
	if next != nil {
		d := DateOnly(*next)
		next = &d
	}
	if !sameDate(s.NextBillingDate, next) {
		s.LastReminderSentAt = nil
	}
	s.NextBillingDate = next
}

func (s *Subscription) TableName() string {
	return "subscriptions"
}

// DateOnly truncates t to midnight UTC of its calendar date
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func sameDate(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return DateOnly(*a).Equal(DateOnly(*b))
}
