package repositories

import (
	"time"

	"subtrack/internal/models"

	"github.com/google/uuid"
)

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	UpdateLastLogin(userID uuid.UUID, at time.Time) error
	UpdateFailedLoginAttempts(user *models.User) error
	ResetFailedLoginAttempts(userID uuid.UUID) error
	Delete(userID uuid.UUID) error
}

// SubscriptionRepositoryInterface defines the contract for subscription persistence.
// Every read except GetReminderCandidates is scoped to a single user.
type SubscriptionRepositoryInterface interface {
	Create(sub *models.Subscription) error
	CreateBatch(subs []*models.Subscription) error
	GetByIDForUser(id, userID uuid.UUID) (*models.Subscription, error)
	ListByUser(userID uuid.UUID, filters models.SubscriptionFilters) ([]models.Subscription, error)
	Update(sub *models.Subscription) error
	Delete(id, userID uuid.UUID) error
	GetUpcomingRenewals(userID uuid.UUID, from, to time.Time) ([]models.Subscription, error)
	GetReminderCandidates() ([]models.Subscription, error)
	MarkReminderSent(id uuid.UUID, sentAt time.Time) error
}

// AuditLogRepositoryInterface defines the contract for audit log repository operations
type AuditLogRepositoryInterface interface {
	Create(log *models.AuditLog) error
	GetByUserID(userID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error)
	GetByResource(resource, resourceID string, offset, limit int) ([]*models.AuditLog, int64, error)
	DeleteOlderThan(duration time.Duration) (int64, error)
}

type RefreshTokenRepositoryInterface interface {
	Create(token *models.RefreshToken) error
	GetByTokenHash(tokenHash string) (*models.RefreshToken, error)
	GetActiveByUserID(userID uuid.UUID) ([]*models.RefreshToken, error)
	Update(token *models.RefreshToken) error
	RevokeAllForUser(userID uuid.UUID) error
	DeleteExpired() (int64, error)
}

// BlacklistedTokenRepositoryInterface defines the contract for blacklisted token repository operations
type BlacklistedTokenRepositoryInterface interface {
	Create(token *models.BlacklistedToken) error
	IsBlacklisted(jti string) (bool, error)
	DeleteExpired() (int64, error)
}
