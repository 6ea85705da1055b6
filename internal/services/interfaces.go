package services

import (
	"context"
	"time"

	"subtrack/internal/dto"
	"subtrack/internal/forecast"
	"subtrack/internal/models"

	"github.com/google/uuid"
)

type AuthServiceInterface interface {
	Register(req *dto.RegisterRequest, ipAddress, userAgent string) (*models.User, *dto.TokenResponse, error)
	Login(req *dto.LoginRequest, ipAddress, userAgent string) (*dto.TokenResponse, error)
	RefreshTokens(refreshToken, ipAddress, userAgent string) (*dto.TokenResponse, error)
	Logout(accessToken, ipAddress, userAgent string) error
	GetProfile(userID uuid.UUID) (*models.User, error)
}

type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	GenerateRefreshToken(userID uuid.UUID) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ValidateRefreshToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
	GetJTI(tokenString string) (string, error)
	GetTokenExpiry(tokenString string) (time.Time, error)
}

type PasswordServiceInterface interface {
	ValidatePassword(password string) error
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
}

// AuditServiceInterface defines the contract for audit logging operations
type AuditServiceInterface interface {
	CreateAuditLog(log *models.AuditLog) error
	LogSubscriptionChange(userID uuid.UUID, action string, sub *models.Subscription, ipAddress, userAgent string) error
	LogReminderSent(sub *models.Subscription) error
	LogSubscriptionsSeeded(userID uuid.UUID, count int, ipAddress, userAgent string) error
	GetUserActivity(userID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error)
}

// SubscriptionServiceInterface covers subscription CRUD and the spending views
type SubscriptionServiceInterface interface {
	List(userID uuid.UUID, filters models.SubscriptionFilters) ([]models.Subscription, error)
	Get(userID, id uuid.UUID) (*models.Subscription, error)
	Create(userID uuid.UUID, req *dto.CreateSubscriptionRequest, ipAddress, userAgent string) (*models.Subscription, error)
	Update(userID, id uuid.UUID, req *dto.UpdateSubscriptionRequest, ipAddress, userAgent string) (*models.Subscription, error)
	Delete(userID, id uuid.UUID, ipAddress, userAgent string) error
	Summary(userID uuid.UUID) (*models.SubscriptionSummary, error)
	Forecast(userID uuid.UUID, months int) ([]forecast.ForecastPoint, error)
	CategoryBreakdown(userID uuid.UUID) ([]forecast.CategoryBreakdownItem, error)
	UpcomingRenewals(userID uuid.UUID, withinDays int) ([]models.Subscription, error)
	Today() time.Time
}

// ReminderServiceInterface runs the renewal reminder job
type ReminderServiceInterface interface {
	ProcessRenewalReminders(ctx context.Context, withinDays int) (*dto.ReminderRunResult, error)
}

// SubscriptionGeneratorInterface produces realistic fake subscriptions for development
type SubscriptionGeneratorInterface interface {
	Generate(userID uuid.UUID, count int, today time.Time) []*models.Subscription
}

// SubscriptionSeederInterface stores generated subscriptions for a user
type SubscriptionSeederInterface interface {
	Seed(userID uuid.UUID, count int, ipAddress, userAgent string) ([]*models.Subscription, error)
}

// ReminderLoggerInterface records reminder pipeline events
type ReminderLoggerInterface interface {
	LogRunStarted(ctx context.Context, withinDays, candidates int)
	LogReminderSent(ctx context.Context, subscriptionID, userID uuid.UUID, daysUntil int)
	LogReminderSkipped(ctx context.Context, subscriptionID uuid.UUID, reason string)
	LogReminderFailed(ctx context.Context, subscriptionID uuid.UUID, stage string, err error)
	LogRunCompleted(ctx context.Context, sent, skipped, failed int, durationMs int64)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
