package main

import (
	"subtrack/internal/config"
	"subtrack/internal/handlers"
	"subtrack/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type routeDeps struct {
	auth          *handlers.AuthHandler
	subscriptions *handlers.SubscriptionHandler
	reminders     *handlers.ReminderHandler
	dev           *handlers.DevHandler
	health        *handlers.HealthCheckHandler
	requireAuth   echo.MiddlewareFunc
}

func registerRoutes(e *echo.Echo, cfg *config.Config, deps routeDeps) {
	e.GET("/health", deps.health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/register", deps.auth.Register)
	auth.POST("/login", deps.auth.Login)
	auth.POST("/refresh", deps.auth.RefreshToken)
	// logout reads the bearer token itself so an expired token can still be revoked
	auth.POST("/logout", deps.auth.Logout)
	auth.GET("/me", deps.auth.Me, deps.requireAuth)

	subs := api.Group("/subscriptions", deps.requireAuth)
	subs.GET("", deps.subscriptions.ListSubscriptions)
	subs.POST("", deps.subscriptions.CreateSubscription)
	subs.GET("/summary", deps.subscriptions.GetSummary)
	subs.GET("/forecast", deps.subscriptions.GetForecast)
	subs.GET("/categories", deps.subscriptions.GetCategoryBreakdown)
	subs.GET("/upcoming", deps.subscriptions.GetUpcomingRenewals)
	subs.GET("/:id", deps.subscriptions.GetSubscription)
	subs.PUT("/:id", deps.subscriptions.UpdateSubscription)
	subs.DELETE("/:id", deps.subscriptions.DeleteSubscription)

	internal := api.Group("/internal", middleware.RequireInternalAPIKey(&cfg.Reminders))
	internal.POST("/run-reminders", deps.reminders.RunReminders)

	if cfg.IsDevelopment() {
		dev := api.Group("/dev", deps.requireAuth)
		dev.POST("/subscriptions/generate", deps.dev.GenerateSubscriptions)
	}
}
