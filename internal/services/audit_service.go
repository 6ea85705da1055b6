package services

import (
	"errors"
	"fmt"

	"subtrack/internal/models"
	"subtrack/internal/repositories"

	"github.com/google/uuid"
)

// AuditService handles audit logging operations
type AuditService struct {
	repo repositories.AuditLogRepositoryInterface
}

// NewAuditService creates a new audit service
func NewAuditService(repo repositories.AuditLogRepositoryInterface) AuditServiceInterface {
	return &AuditService{
		repo: repo,
	}
}

var (
	ErrInvalidUserID   = errors.New("invalid user ID")
	ErrInvalidAuditLog = errors.New("invalid audit log")
)

var validAuditActions = map[string]bool{
	models.AuditActionLogin:               true,
	models.AuditActionLogout:              true,
	models.AuditActionRegister:            true,
	models.AuditActionFailedLogin:         true,
	models.AuditActionAccountLocked:       true,
	models.AuditActionTokenRefresh:        true,
	models.AuditActionSubscriptionCreated: true,
	models.AuditActionSubscriptionUpdated: true,
	models.AuditActionSubscriptionDeleted: true,
	models.AuditActionReminderSent:        true,
	models.AuditActionSubscriptionsSeeded: true,
}

// ValidateActivityType validates that the activity type is one of the allowed types
func ValidateActivityType(action string) error {
	if !validAuditActions[action] {
		return fmt.Errorf("invalid activity type: %s", action)
	}
	return nil
}

// CreateAuditLog creates a new audit log entry with validation
func (s *AuditService) CreateAuditLog(log *models.AuditLog) error {
	if log == nil {
		return ErrInvalidAuditLog
	}

	if err := ValidateActivityType(log.Action); err != nil {
		return err
	}

	if err := s.repo.Create(log); err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}

	return nil
}

// LogSubscriptionChange records a create, update or delete of a subscription
func (s *AuditService) LogSubscriptionChange(userID uuid.UUID, action string, sub *models.Subscription, ipAddress, userAgent string) error {
	if sub == nil {
		return ErrInvalidAuditLog
	}

	log := models.NewSubscriptionAuditLog(userID, action, sub)
	log.IPAddress = ipAddress
	log.UserAgent = userAgent
	return s.CreateAuditLog(log)
}

// LogReminderSent records a delivered renewal reminder against the owner
func (s *AuditService) LogReminderSent(sub *models.Subscription) error {
	if sub == nil {
		return ErrInvalidAuditLog
	}

	log := models.NewSubscriptionAuditLog(sub.UserID, models.AuditActionReminderSent, sub)
	if sub.NextBillingDate != nil {
		log.SetMetadata("next_billing_date", sub.NextBillingDate.Format("2006-01-02"))
	}
	log.SetMetadata("reminder_days_before", sub.ReminderDaysBefore)
	return s.CreateAuditLog(log)
}

func (s *AuditService) LogSubscriptionsSeeded(userID uuid.UUID, count int, ipAddress, userAgent string) error {
	log := &models.AuditLog{
		UserID:     &userID,
		Action:     models.AuditActionSubscriptionsSeeded,
		Resource:   models.AuditResourceSubscription,
		ResourceID: userID.String(),
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		Metadata: models.JSONBMap{
			"count": count,
		},
	}
	return s.CreateAuditLog(log)
}

// GetUserActivity returns a page of the user's audit trail, newest first
func (s *AuditService) GetUserActivity(userID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error) {
	if userID == uuid.Nil {
		return nil, 0, ErrInvalidUserID
	}

	return s.repo.GetByUserID(userID, offset, limit)
}
