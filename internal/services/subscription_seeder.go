package services

import (
	"fmt"
	"log/slog"
	"time"

	"subtrack/internal/models"
	"subtrack/internal/repositories"

	"github.com/google/uuid"
)

// SubscriptionSeeder stores generated subscriptions for development use
type SubscriptionSeeder struct {
	generator        SubscriptionGeneratorInterface
	subscriptionRepo repositories.SubscriptionRepositoryInterface
	auditService     AuditServiceInterface
	metrics          MetricsRecorderInterface
	logger           *slog.Logger
	now              func() time.Time
}

func NewSubscriptionSeeder(
	generator SubscriptionGeneratorInterface,
	subscriptionRepo repositories.SubscriptionRepositoryInterface,
	auditService AuditServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) SubscriptionSeederInterface {
	return &SubscriptionSeeder{
		generator:        generator,
		subscriptionRepo: subscriptionRepo,
		auditService:     auditService,
		metrics:          metrics,
		logger:           logger,
		now:              time.Now,
	}
}

// Seed generates and stores count subscriptions in one transaction.
// count is clamped to [MinSeedCount, MaxSeedCount].
func (s *SubscriptionSeeder) Seed(userID uuid.UUID, count int, ipAddress, userAgent string) ([]*models.Subscription, error) {
	count = clamp(count, MinSeedCount, MaxSeedCount)

	subs := s.generator.Generate(userID, count, s.now().UTC())
	if err := s.subscriptionRepo.CreateBatch(subs); err != nil {
		return nil, fmt.Errorf("failed to seed subscriptions: %w", err)
	}

	if err := s.auditService.LogSubscriptionsSeeded(userID, len(subs), ipAddress, userAgent); err != nil {
		s.logger.Error("failed to audit seeded subscriptions",
			"error", err,
			"user_id", userID)
	}

	if s.metrics != nil {
		for range subs {
			s.metrics.IncrementCounter(MetricSubscriptionsSeeded, nil)
		}
	}

	s.logger.Info("seeded subscriptions", "user_id", userID, "count", len(subs))
	return subs, nil
}
