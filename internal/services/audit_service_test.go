package services

import (
	"errors"
	"testing"
	"time"

	"subtrack/internal/models"
	"subtrack/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// AuditServiceTestSuite is the test suite for AuditService
type AuditServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *repository_mocks.MockAuditLogRepositoryInterface
	service  AuditServiceInterface
}

func (s *AuditServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = repository_mocks.NewMockAuditLogRepositoryInterface(s.ctrl)
	s.service = NewAuditService(s.mockRepo)
}

func (s *AuditServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAuditServiceSuite(t *testing.T) {
	suite.Run(t, new(AuditServiceTestSuite))
}

func testSubscription(userID uuid.UUID) *models.Subscription {
	next := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	return &models.Subscription{
		ID:                 uuid.New(),
		UserID:             userID,
		Name:               "Netflix",
		Price:              decimal.RequireFromString("15.49"),
		Currency:           models.DefaultCurrency,
		BillingCycle:       "monthly",
		NextBillingDate:    &next,
		IsActive:           true,
		ReminderEnabled:    true,
		ReminderDaysBefore: 3,
	}
}

func (s *AuditServiceTestSuite) TestValidateActivityType() {
	s.NoError(ValidateActivityType(models.AuditActionLogin))
	s.NoError(ValidateActivityType(models.AuditActionSubscriptionCreated))
	s.NoError(ValidateActivityType(models.AuditActionReminderSent))

	err := ValidateActivityType("invalid_action")
	s.Error(err)
	s.Contains(err.Error(), "invalid activity type")
}

func (s *AuditServiceTestSuite) TestCreateAuditLog_Nil() {
	s.ErrorIs(s.service.CreateAuditLog(nil), ErrInvalidAuditLog)
}

func (s *AuditServiceTestSuite) TestCreateAuditLog_RepositoryError() {
	s.mockRepo.EXPECT().Create(gomock.Any()).Return(errors.New("db down"))

	err := s.service.CreateAuditLog(&models.AuditLog{Action: models.AuditActionLogin, Resource: models.AuditResourceUser})
	s.Error(err)
	s.Contains(err.Error(), "failed to create audit log")
}

func (s *AuditServiceTestSuite) TestLogSubscriptionChange() {
	userID := uuid.New()
	sub := testSubscription(userID)

	s.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(log *models.AuditLog) error {
		s.Equal(models.AuditActionSubscriptionUpdated, log.Action)
		s.Equal(models.AuditResourceSubscription, log.Resource)
		s.Equal(sub.ID.String(), log.ResourceID)
		s.Equal(userID, *log.UserID)
		s.Equal("10.0.0.1", log.IPAddress)
		s.Equal("curl/8", log.UserAgent)
		s.Equal("Netflix", log.GetMetadata("name", ""))
		s.Equal("15.49", log.GetMetadata("price", ""))
		return nil
	})

	s.NoError(s.service.LogSubscriptionChange(userID, models.AuditActionSubscriptionUpdated, sub, "10.0.0.1", "curl/8"))
	s.ErrorIs(s.service.LogSubscriptionChange(userID, models.AuditActionSubscriptionUpdated, nil, "", ""), ErrInvalidAuditLog)
}

func (s *AuditServiceTestSuite) TestLogReminderSent() {
	sub := testSubscription(uuid.New())

	s.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(log *models.AuditLog) error {
		s.Equal(models.AuditActionReminderSent, log.Action)
		s.Equal(sub.UserID, *log.UserID)
		s.Equal("2025-03-10", log.GetMetadata("next_billing_date", ""))
		s.Equal(3, log.GetMetadata("reminder_days_before", 0))
		return nil
	})

	s.NoError(s.service.LogReminderSent(sub))
}

func (s *AuditServiceTestSuite) TestLogSubscriptionsSeeded() {
	userID := uuid.New()

	s.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(log *models.AuditLog) error {
		s.Equal(models.AuditActionSubscriptionsSeeded, log.Action)
		s.Equal(5, log.GetMetadata("count", 0))
		return nil
	})

	s.NoError(s.service.LogSubscriptionsSeeded(userID, 5, "127.0.0.1", "test"))
}

func (s *AuditServiceTestSuite) TestGetUserActivity() {
	userID := uuid.New()
	logs := []*models.AuditLog{{Action: models.AuditActionLogin}}

	s.mockRepo.EXPECT().GetByUserID(userID, 0, 20).Return(logs, int64(1), nil)

	result, total, err := s.service.GetUserActivity(userID, 0, 20)
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Len(result, 1)

	_, _, err = s.service.GetUserActivity(uuid.Nil, 0, 20)
	s.ErrorIs(err, ErrInvalidUserID)
}
