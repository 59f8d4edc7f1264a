package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/weatherdash/backend/internal/service"
)

// SetupRoutes configures all HTTP routes
func SetupRoutes(app *fiber.App, dashboardSvc *service.DashboardService, defaultLocation string) {
	handler := NewHandler(dashboardSvc, defaultLocation)

	// Health check and metrics
	app.Get("/health", handler.HealthCheck)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// API v1 routes
	api := app.Group("/api/v1")
	{
		api.Get("/dashboard", handler.GetDashboard)
		api.Post("/dashboard", handler.GetDashboard)
		api.Get("/geocode", handler.SearchLocations)
		api.Get("/history", handler.GetLookupHistory)
		api.Get("/debug/themes", handler.GetThemeSamples)
	}
}
