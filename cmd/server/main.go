package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"subtrack/internal/config"
	"subtrack/internal/database"
	"subtrack/internal/handlers"
	"subtrack/internal/middleware"
	"subtrack/internal/notifications"
	"subtrack/internal/repositories"
	"subtrack/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 30 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if cfg.IsDevelopment() {
		opts.Level = slog.LevelDebug
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Initialize(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("Failed to close database", "error", err)
		}
	}()

	notifier, closeNotifier := notifications.FromConfig(cfg, logger)
	defer closeNotifier()

	metrics := services.NewPrometheusMetrics(nil)

	userRepo := repositories.NewUserRepository(db.DB)
	subscriptionRepo := repositories.NewSubscriptionRepository(db.DB)
	auditRepo := repositories.NewAuditLogRepository(db.DB)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db.DB)
	blacklistedTokenRepo := repositories.NewBlacklistedTokenRepository(db.DB)

	auditService := services.NewAuditService(auditRepo)
	passwordService := services.NewPasswordService(cfg.Security)
	tokenService := services.NewTokenService(&cfg.JWT)
	authService := services.NewAuthService(
		userRepo,
		refreshTokenRepo,
		auditRepo,
		blacklistedTokenRepo,
		passwordService,
		tokenService,
		metrics,
		logger,
	)
	subscriptionService := services.NewSubscriptionService(subscriptionRepo, userRepo, auditService, metrics, logger)
	reminderService := services.NewReminderService(subscriptionRepo, notifier, auditService, metrics, logger)
	seeder := services.NewSubscriptionSeeder(
		services.NewSubscriptionGenerator(0),
		subscriptionRepo,
		auditService,
		metrics,
		logger,
	)

	rateLimiter := middleware.NewIPRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitPerSecond*2)

	e := newEcho(cfg, logger, rateLimiter)
	registerRoutes(e, cfg, routeDeps{
		auth:          handlers.NewAuthHandler(authService, tokenService),
		subscriptions: handlers.NewSubscriptionHandler(subscriptionService),
		reminders:     handlers.NewReminderHandler(reminderService),
		dev:           handlers.NewDevHandler(seeder, cfg.IsDevelopment()),
		health:        handlers.NewHealthCheckHandler(db.DB),
		requireAuth:   middleware.RequireAuth(tokenService, blacklistedTokenRepo),
	})

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		logger.Info("Starting subtrack server", "address", addr, "environment", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		rateLimiter.RunCleanup(gctx)
		return nil
	})

	g.Go(func() error {
		return runMaintenance(gctx, db, logger)
	})

	if cfg.Reminders.Enabled {
		scheduler, err := services.NewReminderScheduler(
			reminderService,
			cfg.Reminders.ScheduleHour,
			cfg.Reminders.ScheduleMinute,
			cfg.Reminders.WithinDays,
			logger,
		)
		if err != nil {
			stop()
			_ = g.Wait()
			return err
		}
		g.Go(func() error {
			return scheduler.Run(gctx)
		})
	} else {
		logger.Info("Scheduled renewal reminders disabled")
	}

	return g.Wait()
}

func newEcho(cfg *config.Config, logger *slog.Logger, rateLimiter *middleware.IPRateLimiter) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(logger))
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			attrs := []any{
				"trace_id", middleware.GetTraceID(c),
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency_ms", v.Latency.Milliseconds(),
				"remote_ip", v.RemoteIP,
			}
			if v.Error != nil {
				logger.Warn("request failed", append(attrs, "error", v.Error.Error())...)
				return nil
			}
			logger.Info("request", attrs...)
			return nil
		},
	}))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderContentType,
			echo.HeaderAccept,
			echo.HeaderAuthorization,
			middleware.TraceIDHeader,
			middleware.InternalAPIKeyHeader,
		},
		ExposeHeaders: []string{middleware.TraceIDHeader},
	}))
	e.Use(echomw.BodyLimit("1M"))
	e.Use(rateLimiter.Middleware())
	e.Use(middleware.SecurityHeaders(cfg.IsProduction()))

	return e
}

// runMaintenance purges expired refresh and blacklisted tokens every hour
func runMaintenance(ctx context.Context, db *database.DB, logger *slog.Logger) error {
	c := cron.New()
	if _, err := c.AddFunc("@hourly", func() {
		if err := db.CleanupExpiredTokens(); err != nil {
			logger.Warn("Token cleanup failed", "error", err)
			return
		}
		logger.Debug("Expired tokens cleaned up")
	}); err != nil {
		return err
	}

	c.Start()
	<-ctx.Done()
	<-c.Stop().Done()
	return nil
}
