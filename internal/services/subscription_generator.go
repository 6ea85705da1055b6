package services

import (
	"sync"
	"time"

	"subtrack/internal/forecast"
	"subtrack/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	MinSeedCount = 1
	MaxSeedCount = 50

	activeShare          = 0.85
	reminderEnabledShare = 0.8
)

// ServiceTemplate is a well-known subscription with a realistic price range
type ServiceTemplate struct {
	Name     string
	Category string
	Cycle    forecast.BillingCycle
	MinPrice float64
	MaxPrice float64
}

type subscriptionGenerator struct {
	catalog []ServiceTemplate
	faker   *gofakeit.Faker
	mu      sync.Mutex
}

// NewSubscriptionGenerator creates a generator. A zero seed is random.
func NewSubscriptionGenerator(seed uint64) SubscriptionGeneratorInterface {
	return &subscriptionGenerator{
		catalog: initializeServiceCatalog(),
		faker:   gofakeit.New(seed),
	}
}

func initializeServiceCatalog() []ServiceTemplate {
	return []ServiceTemplate{
		// Streaming
		{"Netflix", "Streaming", forecast.CycleMonthly, 6.99, 22.99},
		{"Disney+", "Streaming", forecast.CycleMonthly, 7.99, 13.99},
		{"Hulu", "Streaming", forecast.CycleMonthly, 7.99, 17.99},
		{"HBO Max", "Streaming", forecast.CycleMonthly, 9.99, 20.99},
		{"Apple TV+", "Streaming", forecast.CycleMonthly, 6.99, 9.99},
		{"Prime Video", "Streaming", forecast.CycleYearly, 89.00, 139.00},
		{"YouTube Premium", "Streaming", forecast.CycleMonthly, 11.99, 22.99},

		// Music
		{"Spotify", "Music", forecast.CycleMonthly, 10.99, 16.99},
		{"Apple Music", "Music", forecast.CycleMonthly, 10.99, 16.99},
		{"Tidal", "Music", forecast.CycleMonthly, 10.99, 19.99},
		{"Audible", "Music", forecast.CycleMonthly, 7.95, 14.95},

		// Software
		{"Adobe Creative Cloud", "Software", forecast.CycleMonthly, 22.99, 59.99},
		{"Microsoft 365", "Software", forecast.CycleYearly, 69.99, 99.99},
		{"JetBrains All Products", "Software", forecast.CycleYearly, 249.00, 289.00},
		{"1Password", "Software", forecast.CycleYearly, 35.88, 59.88},
		{"GitHub Copilot", "Software", forecast.CycleMonthly, 10.00, 19.00},
		{"Notion", "Software", forecast.CycleMonthly, 8.00, 15.00},

		// Cloud storage
		{"Dropbox", "Cloud Storage", forecast.CycleMonthly, 9.99, 19.99},
		{"iCloud+", "Cloud Storage", forecast.CycleMonthly, 0.99, 9.99},
		{"Google One", "Cloud Storage", forecast.CycleYearly, 19.99, 99.99},

		// News
		{"The New York Times", "News", forecast.CycleWeekly, 1.00, 6.25},
		{"The Economist", "News", forecast.CycleYearly, 189.00, 249.00},
		{"The Athletic", "News", forecast.CycleMonthly, 7.99, 9.99},

		// Fitness
		{"Peloton", "Fitness", forecast.CycleMonthly, 12.99, 44.00},
		{"Strava", "Fitness", forecast.CycleYearly, 59.99, 79.99},
		{"ClassPass", "Fitness", forecast.CycleMonthly, 19.00, 79.00},
		{"Local Gym", "Fitness", forecast.CycleMonthly, 25.00, 60.00},

		// Gaming
		{"Xbox Game Pass", "Gaming", forecast.CycleMonthly, 9.99, 19.99},
		{"PlayStation Plus", "Gaming", forecast.CycleYearly, 79.99, 159.99},
		{"Nintendo Switch Online", "Gaming", forecast.CycleYearly, 19.99, 49.99},

		// Food
		{"HelloFresh", "Food", forecast.CycleWeekly, 59.99, 89.99},
		{"DoorDash DashPass", "Food", forecast.CycleMonthly, 9.99, 9.99},
		{"Uber One", "Food", forecast.CycleMonthly, 9.99, 9.99},

		// Education
		{"Duolingo Plus", "Education", forecast.CycleYearly, 59.99, 83.99},
		{"Coursera Plus", "Education", forecast.CycleYearly, 199.00, 399.00},
		{"MasterClass", "Education", forecast.CycleYearly, 120.00, 240.00},
	}
}

// Catalog returns the known services the generator draws from
func (g *subscriptionGenerator) Catalog() []ServiceTemplate {
	return g.catalog
}

// Generate builds count unsaved subscriptions for userID. Catalog services
// are used without repetition; beyond the catalog size invented app names
// fill the remainder.
func (g *subscriptionGenerator) Generate(userID uuid.UUID, count int, today time.Time) []*models.Subscription {
	count = clamp(count, MinSeedCount, MaxSeedCount)
	today = models.DateOnly(today)

	g.mu.Lock()
	defer g.mu.Unlock()

	order := g.shuffledCatalog()
	subs := make([]*models.Subscription, 0, count)
	for i := 0; i < count; i++ {
		var tmpl ServiceTemplate
		if i < len(order) {
			tmpl = order[i]
		} else {
			tmpl = g.inventedService()
		}
		subs = append(subs, g.fromTemplate(userID, tmpl, today))
	}

	return subs
}

func (g *subscriptionGenerator) shuffledCatalog() []ServiceTemplate {
	order := make([]ServiceTemplate, len(g.catalog))
	copy(order, g.catalog)
	for i := len(order) - 1; i > 0; i-- {
		j := g.faker.IntRange(0, i)
		order[i], order[j] = order[j], order[i]
	}
	return order
}

func (g *subscriptionGenerator) inventedService() ServiceTemplate {
	cycles := []string{string(forecast.CycleMonthly), string(forecast.CycleMonthly), string(forecast.CycleYearly), string(forecast.CycleWeekly)}
	cycle := forecast.ResolveBillingCycle(g.faker.RandomString(cycles))

	minPrice, maxPrice := 2.99, 29.99
	switch cycle {
	case forecast.CycleYearly:
		minPrice, maxPrice = 19.99, 199.99
	case forecast.CycleWeekly:
		minPrice, maxPrice = 0.99, 9.99
	}

	return ServiceTemplate{
		Name:     g.faker.AppName(),
		Category: g.faker.RandomString([]string{"Software", "Productivity", "Utilities", "Entertainment", ""}),
		Cycle:    cycle,
		MinPrice: minPrice,
		MaxPrice: maxPrice,
	}
}

func (g *subscriptionGenerator) fromTemplate(userID uuid.UUID, tmpl ServiceTemplate, today time.Time) *models.Subscription {
	price := decimal.NewFromFloat(g.faker.Float64Range(tmpl.MinPrice, tmpl.MaxPrice)).Round(2)

	horizon := 30
	switch tmpl.Cycle {
	case forecast.CycleYearly:
		horizon = 365
	case forecast.CycleWeekly:
		horizon = 7
	}
	next := today.AddDate(0, 0, g.faker.IntRange(0, horizon-1))

	sub := &models.Subscription{
		UserID:             userID,
		Name:               tmpl.Name,
		Price:              price,
		Currency:           models.DefaultCurrency,
		BillingCycle:       string(tmpl.Cycle),
		NextBillingDate:    &next,
		IsActive:           g.faker.Float64Range(0, 1) < activeShare,
		ReminderEnabled:    g.faker.Float64Range(0, 1) < reminderEnabledShare,
		ReminderDaysBefore: g.faker.RandomInt([]int{1, 3, 3, 7}),
	}
	if tmpl.Category != "" {
		category := tmpl.Category
		sub.Category = &category
	}

	return sub
}
