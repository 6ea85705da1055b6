package repositories

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"subtrack/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrSubscriptionNotFound = errors.New("subscription not found")
)

// SubscriptionRepository handles database operations for subscriptions
type SubscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepositoryInterface {
	return &SubscriptionRepository{
		db: db,
	}
}

// Create inserts a subscription. Normalization and validation run in the
// model's BeforeCreate hook.
func (r *SubscriptionRepository) Create(sub *models.Subscription) error {
	if sub == nil {
		return errors.New("subscription cannot be nil")
	}

	if err := r.db.Omit("User").Create(sub).Error; err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	return nil
}

// CreateBatch inserts all subscriptions in one transaction
func (r *SubscriptionRepository) CreateBatch(subs []*models.Subscription) error {
	if len(subs) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, sub := range subs {
			if err := tx.Omit("User").Create(sub).Error; err != nil {
				return fmt.Errorf("failed to create subscription %q: %w", sub.Name, err)
			}
		}
		return nil
	})
}

// GetByIDForUser returns ErrSubscriptionNotFound both for unknown IDs and
// for subscriptions owned by someone else.
func (r *SubscriptionRepository) GetByIDForUser(id, userID uuid.UUID) (*models.Subscription, error) {
	var sub models.Subscription

	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return &sub, nil
}

// ListByUser returns the user's subscriptions, newest first
func (r *SubscriptionRepository) ListByUser(userID uuid.UUID, filters models.SubscriptionFilters) ([]models.Subscription, error) {
	query := r.db.Model(&models.Subscription{}).Where("user_id = ?", userID)

	if filters.Active != nil {
		query = query.Where("is_active = ?", *filters.Active)
	}

	if filters.Category != nil {
		category := strings.TrimSpace(*filters.Category)
		if category == "" || strings.EqualFold(category, "uncategorized") {
			query = query.Where("category IS NULL")
		} else {
			query = query.Where("LOWER(category) = LOWER(?)", category)
		}
	}

	subs := make([]models.Subscription, 0)
	if err := query.Order("created_at DESC").Find(&subs).Error; err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	return subs, nil
}

// Update writes every mutable column of the subscription
func (r *SubscriptionRepository) Update(sub *models.Subscription) error {
	if sub == nil {
		return errors.New("subscription cannot be nil")
	}

	result := r.db.Model(sub).
		Select("*").
		Omit("id", "user_id", "created_at", "deleted_at", "User").
		Updates(sub)
	if result.Error != nil {
		return fmt.Errorf("failed to update subscription: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSubscriptionNotFound
	}

	return nil
}

// Delete soft deletes a subscription owned by userID
func (r *SubscriptionRepository) Delete(id, userID uuid.UUID) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Subscription{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete subscription: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSubscriptionNotFound
	}

	return nil
}

// GetUpcomingRenewals returns active, reminder-enabled subscriptions whose
// next billing date falls in [from, to], soonest first.
func (r *SubscriptionRepository) GetUpcomingRenewals(userID uuid.UUID, from, to time.Time) ([]models.Subscription, error) {
	subs := make([]models.Subscription, 0)

	err := r.db.
		Where("user_id = ? AND is_active = ? AND reminder_enabled = ?", userID, true, true).
		Where("next_billing_date IS NOT NULL AND next_billing_date >= ? AND next_billing_date <= ?",
			models.DateOnly(from), models.DateOnly(to)).
		Order("next_billing_date ASC, name ASC").
		Find(&subs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get upcoming renewals: %w", err)
	}

	return subs, nil
}

// GetReminderCandidates returns every active, reminder-enabled subscription
// with a next billing date across all users, with the owner preloaded.
func (r *SubscriptionRepository) GetReminderCandidates() ([]models.Subscription, error) {
	subs := make([]models.Subscription, 0)

	err := r.db.Preload("User").
		Where("is_active = ? AND reminder_enabled = ? AND next_billing_date IS NOT NULL", true, true).
		Order("next_billing_date ASC").
		Find(&subs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get reminder candidates: %w", err)
	}

	return subs, nil
}

// MarkReminderSent stamps last_reminder_sent_at for the current billing date
func (r *SubscriptionRepository) MarkReminderSent(id uuid.UUID, sentAt time.Time) error {
	result := r.db.Model(&models.Subscription{ID: id}).Updates(map[string]interface{}{
		"last_reminder_sent_at": sentAt,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to mark reminder sent: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSubscriptionNotFound
	}

	return nil
}
