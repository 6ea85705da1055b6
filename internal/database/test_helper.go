package database

import (
	"fmt"
	"testing"
	"time"

	"subtrack/internal/config"
	"subtrack/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// cleanupTables is ordered children first
var cleanupTables = []string{
	"audit_logs",
	"blacklisted_tokens",
	"refresh_tokens",
	"subscriptions",
	"users",
}

// SetupTestDB returns a migrated in-memory sqlite database
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// every pooled connection to :memory: would otherwise get its own database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			Driver:         config.DriverSQLite,
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestUser(t *testing.T, db *DB, email string) *models.User {
	t.Helper()

	user := &models.User{
		Email:                     email,
		PasswordHash:              "hashed_password",
		FirstName:                 "Test",
		LastName:                  "User",
		Role:                      models.RoleUser,
		DefaultReminderDaysBefore: models.DefaultReminderDaysBefore,
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

// TestSubscriptionOption customises a subscription built by CreateTestSubscription
type TestSubscriptionOption func(*models.Subscription)

func WithBillingCycle(cycle string) TestSubscriptionOption {
	return func(s *models.Subscription) { s.BillingCycle = cycle }
}

func WithPrice(price string) TestSubscriptionOption {
	return func(s *models.Subscription) { s.Price = decimal.RequireFromString(price) }
}

func WithNextBillingDate(date time.Time) TestSubscriptionOption {
	return func(s *models.Subscription) { s.NextBillingDate = &date }
}

func WithCategory(category string) TestSubscriptionOption {
	return func(s *models.Subscription) { s.Category = &category }
}

func WithInactive() TestSubscriptionOption {
	return func(s *models.Subscription) { s.IsActive = false }
}

func WithReminder(enabled bool, daysBefore int) TestSubscriptionOption {
	return func(s *models.Subscription) {
		s.ReminderEnabled = enabled
		s.ReminderDaysBefore = daysBefore
	}
}

func CreateTestSubscription(t *testing.T, db *DB, user *models.User, name string, opts ...TestSubscriptionOption) *models.Subscription {
	t.Helper()

	sub := &models.Subscription{
		UserID:             user.ID,
		Name:               name,
		Price:              decimal.RequireFromString("9.99"),
		Currency:           models.DefaultCurrency,
		BillingCycle:       "monthly",
		IsActive:           true,
		ReminderEnabled:    true,
		ReminderDaysBefore: models.DefaultReminderDaysBefore,
	}
	for _, opt := range opts {
		opt(sub)
	}

	if err := db.Create(sub).Error; err != nil {
		t.Fatalf("failed to create test subscription: %v", err)
	}

	return sub
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	for _, table := range cleanupTables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
