package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"subtrack/internal/dto"
	"subtrack/internal/forecast"
	"subtrack/internal/models"
	"subtrack/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	MinForecastMonths = 1
	MaxForecastMonths = 60

	DefaultUpcomingDays = 7
	MinUpcomingDays     = 1
	MaxUpcomingDays     = 60
)

var (
	ErrInvalidBillingCycle = errors.New("billing cycle must be monthly, yearly or weekly")
	ErrInvalidPrice        = errors.New("price must be zero or greater with at most 2 decimal places")
	ErrInvalidSubscription = errors.New("invalid subscription")
)

// SubscriptionService owns subscription CRUD and the spending views built
// on the forecast engine.
type SubscriptionService struct {
	subscriptionRepo repositories.SubscriptionRepositoryInterface
	userRepo         repositories.UserRepositoryInterface
	auditService     AuditServiceInterface
	metrics          MetricsRecorderInterface
	logger           *slog.Logger
	now              func() time.Time
}

func NewSubscriptionService(
	subscriptionRepo repositories.SubscriptionRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	auditService AuditServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) *SubscriptionService {
	return &SubscriptionService{
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
		auditService:     auditService,
		metrics:          metrics,
		logger:           logger,
		now:              time.Now,
	}
}

// WithClock replaces the service clock. Used by tests.
func (s *SubscriptionService) WithClock(now func() time.Time) *SubscriptionService {
	s.now = now
	return s
}

// Today is the current UTC calendar date
func (s *SubscriptionService) Today() time.Time {
	return models.DateOnly(s.now().UTC())
}

func (s *SubscriptionService) List(userID uuid.UUID, filters models.SubscriptionFilters) ([]models.Subscription, error) {
	subs, err := s.subscriptionRepo.ListByUser(userID, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	return subs, nil
}

func (s *SubscriptionService) Get(userID, id uuid.UUID) (*models.Subscription, error) {
	sub, err := s.subscriptionRepo.GetByIDForUser(id, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	return sub, nil
}

// Create stores a new subscription. Omitted fields fall back to USD, a
// monthly cycle, active with reminders on, and the user's default lead time.
func (s *SubscriptionService) Create(userID uuid.UUID, req *dto.CreateSubscriptionRequest, ipAddress, userAgent string) (*models.Subscription, error) {
	if req.Price == nil || !validPrice(*req.Price) {
		return nil, ErrInvalidPrice
	}

	cycle := string(forecast.CycleMonthly)
	if strings.TrimSpace(req.BillingCycle) != "" {
		parsed, ok := forecast.ParseBillingCycle(req.BillingCycle)
		if !ok {
			return nil, ErrInvalidBillingCycle
		}
		cycle = string(parsed)
	}

	currency := models.DefaultCurrency
	if strings.TrimSpace(req.Currency) != "" {
		currency = strings.ToUpper(strings.TrimSpace(req.Currency))
	}

	reminderDays, err := s.reminderDaysFor(userID, req.ReminderDaysBefore)
	if err != nil {
		return nil, err
	}

	sub := &models.Subscription{
		UserID:             userID,
		Name:               strings.TrimSpace(req.Name),
		Price:              *req.Price,
		Currency:           currency,
		BillingCycle:       cycle,
		NextBillingDate:    req.NextBillingDate.Ptr(),
		Category:           trimCategory(req.Category),
		IsActive:           boolOr(req.IsActive, true),
		ReminderEnabled:    boolOr(req.ReminderEnabled, true),
		ReminderDaysBefore: reminderDays,
	}

	if err := checkSubscription(sub); err != nil {
		return nil, err
	}

	if err := s.subscriptionRepo.Create(sub); err != nil {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	s.recordChange(userID, models.AuditActionSubscriptionCreated, sub, ipAddress, userAgent)
	return sub, nil
}

// Update applies the fields present in req. Moving next_billing_date resets
// the reminder marker so the new date gets its own reminder.
func (s *SubscriptionService) Update(userID, id uuid.UUID, req *dto.UpdateSubscriptionRequest, ipAddress, userAgent string) (*models.Subscription, error) {
	sub, err := s.subscriptionRepo.GetByIDForUser(id, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	if req.Name != nil {
		sub.Name = strings.TrimSpace(*req.Name)
	}
	if req.Price != nil {
		if !validPrice(*req.Price) {
			return nil, ErrInvalidPrice
		}
		sub.Price = *req.Price
	}
	if req.Currency != nil {
		sub.Currency = strings.ToUpper(strings.TrimSpace(*req.Currency))
	}
	if req.BillingCycle != nil {
		parsed, ok := forecast.ParseBillingCycle(*req.BillingCycle)
		if !ok {
			return nil, ErrInvalidBillingCycle
		}
		sub.BillingCycle = string(parsed)
	}
	if req.NextBillingDate.Set {
		sub.SetNextBillingDate(req.NextBillingDate.Value.Ptr())
	}
	if req.Category.Set {
		sub.Category = trimCategory(req.Category.Value)
	}
	if req.IsActive != nil {
		sub.IsActive = *req.IsActive
	}
	if req.ReminderEnabled != nil {
		sub.ReminderEnabled = *req.ReminderEnabled
	}
	if req.ReminderDaysBefore != nil {
		sub.ReminderDaysBefore = *req.ReminderDaysBefore
	}

	if err := checkSubscription(sub); err != nil {
		return nil, err
	}

	if err := s.subscriptionRepo.Update(sub); err != nil {
		return nil, fmt.Errorf("failed to update subscription: %w", err)
	}

	s.recordChange(userID, models.AuditActionSubscriptionUpdated, sub, ipAddress, userAgent)
	return sub, nil
}

func (s *SubscriptionService) Delete(userID, id uuid.UUID, ipAddress, userAgent string) error {
	sub, err := s.subscriptionRepo.GetByIDForUser(id, userID)
	if err != nil {
		return fmt.Errorf("failed to get subscription: %w", err)
	}

	if err := s.subscriptionRepo.Delete(id, userID); err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
	}

	s.recordChange(userID, models.AuditActionSubscriptionDeleted, sub, ipAddress, userAgent)
	return nil
}

// Summary totals the user's active subscriptions. by_billing_cycle always
// carries the three known cycles; unknown cycles are counted as monthly.
func (s *SubscriptionService) Summary(userID uuid.UUID) (*models.SubscriptionSummary, error) {
	active := true
	subs, err := s.subscriptionRepo.ListByUser(userID, models.SubscriptionFilters{Active: &active})
	if err != nil {
		return nil, fmt.Errorf("failed to load subscriptions: %w", err)
	}

	byCycle := map[string]decimal.Decimal{
		string(forecast.CycleMonthly): decimal.Zero,
		string(forecast.CycleYearly):  decimal.Zero,
		string(forecast.CycleWeekly):  decimal.Zero,
	}

	monthly := decimal.Zero
	for i := range subs {
		monthly = monthly.Add(subs[i].MonthlyCost())

		cycle := string(forecast.ResolveBillingCycle(subs[i].BillingCycle))
		byCycle[cycle] = byCycle[cycle].Add(subs[i].Price)
	}

	for cycle, total := range byCycle {
		byCycle[cycle] = total.Round(2)
	}

	return &models.SubscriptionSummary{
		TotalActive:      int64(len(subs)),
		TotalMonthlyCost: monthly.Round(2),
		TotalYearlyCost:  monthly.Mul(decimal.NewFromInt(12)).Round(2),
		ByBillingCycle:   byCycle,
	}, nil
}

// Forecast projects the user's charges for months months starting with the
// current one. months is clamped to [MinForecastMonths, MaxForecastMonths].
func (s *SubscriptionService) Forecast(userID uuid.UUID, months int) ([]forecast.ForecastPoint, error) {
	records, err := s.forecastRecords(userID)
	if err != nil {
		return nil, err
	}

	return forecast.BuildForecast(records, forecast.Options{
		Months: clamp(months, MinForecastMonths, MaxForecastMonths),
		Now:    s.now().UTC(),
	}), nil
}

func (s *SubscriptionService) CategoryBreakdown(userID uuid.UUID) ([]forecast.CategoryBreakdownItem, error) {
	records, err := s.forecastRecords(userID)
	if err != nil {
		return nil, err
	}

	return forecast.BuildCategoryBreakdown(records), nil
}

// UpcomingRenewals returns active, reminder-enabled subscriptions billing
// between today and today+withinDays inclusive.
func (s *SubscriptionService) UpcomingRenewals(userID uuid.UUID, withinDays int) ([]models.Subscription, error) {
	withinDays = ClampUpcomingDays(withinDays)
	today := s.Today()

	subs, err := s.subscriptionRepo.GetUpcomingRenewals(userID, today, today.AddDate(0, 0, withinDays))
	if err != nil {
		return nil, fmt.Errorf("failed to load upcoming renewals: %w", err)
	}
	return subs, nil
}

func (s *SubscriptionService) forecastRecords(userID uuid.UUID) ([]forecast.Subscription, error) {
	subs, err := s.subscriptionRepo.ListByUser(userID, models.SubscriptionFilters{})
	if err != nil {
		return nil, fmt.Errorf("failed to load subscriptions: %w", err)
	}

	records := make([]forecast.Subscription, 0, len(subs))
	for i := range subs {
		records = append(records, subs[i].ForecastRecord())
	}
	return records, nil
}

func (s *SubscriptionService) reminderDaysFor(userID uuid.UUID, requested *int) (int, error) {
	if requested != nil {
		return *requested, nil
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return 0, fmt.Errorf("failed to load user defaults: %w", err)
	}
	return user.DefaultReminderDaysBefore, nil
}

func (s *SubscriptionService) recordChange(userID uuid.UUID, action string, sub *models.Subscription, ipAddress, userAgent string) {
	if err := s.auditService.LogSubscriptionChange(userID, action, sub, ipAddress, userAgent); err != nil {
		s.logger.Error("failed to audit subscription change",
			"error", err,
			"action", action,
			"subscription_id", sub.ID)
	}

	if s.metrics != nil {
		s.metrics.IncrementCounter(MetricSubscriptionChanged, map[string]string{"action": action})
	}
}

func validPrice(price decimal.Decimal) bool {
	return !price.IsNegative() && price.Equal(price.Round(2))
}

// checkSubscription runs the model rules before the write so callers get
// ErrInvalidSubscription instead of a storage error.
func checkSubscription(sub *models.Subscription) error {
	sub.Normalize()
	if err := sub.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSubscription, err)
	}
	return nil
}

func trimCategory(category *string) *string {
	if category == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*category)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

// ClampUpcomingDays bounds an upcoming-renewals window to
// MinUpcomingDays..MaxUpcomingDays
func ClampUpcomingDays(days int) int {
	return clamp(days, MinUpcomingDays, MaxUpcomingDays)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
