package http

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/weatherdash/backend/internal/domain"
	"github.com/weatherdash/backend/internal/service"
)

// Handler contains all HTTP handlers
type Handler struct {
	dashboardSvc    *service.DashboardService
	defaultLocation string
}

// NewHandler creates a new handler
func NewHandler(dashboardSvc *service.DashboardService, defaultLocation string) *Handler {
	return &Handler{
		dashboardSvc:    dashboardSvc,
		defaultLocation: defaultLocation,
	}
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	database := "ok"
	if err := h.dashboardSvc.RepositoryHealth(ctx); err != nil {
		database = "unavailable"
	}

	return c.JSON(fiber.Map{
		"status":   "ok",
		"service":  "weather-dashboard",
		"version":  "1.0.0",
		"database": database,
	})
}

// GetDashboard returns the themed dashboard for ?location=.
// A missing parameter falls back to the default location; an empty one is an error.
func (h *Handler) GetDashboard(c *fiber.Ctx) error {
	location := h.defaultLocation
	args := c.Context().QueryArgs()
	if args.Has("location") {
		location = string(args.Peek("location"))
	}

	resp, err := h.dashboardSvc.GetDashboard(c.Context(), location)
	return c.Status(dashboardStatus(err)).JSON(resp)
}

// SearchLocations returns geocoding matches for ?name=
func (h *Handler) SearchLocations(c *fiber.Ctx) error {
	name := c.Query("name")
	if name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "query parameter 'name' is required")
	}

	locations, err := h.dashboardSvc.SearchLocations(c.Context(), name, c.QueryInt("count", 5))
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "Failed to search locations")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    locations,
	})
}

// GetThemeSamples returns the theme debug table
func (h *Handler) GetThemeSamples(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    h.dashboardSvc.ThemeSamples(),
	})
}

// GetLookupHistory returns recorded dashboard lookups within ?hours=
func (h *Handler) GetLookupHistory(c *fiber.Ctx) error {
	hours := c.QueryInt("hours", 24)
	if hours < 1 || hours > 720 { // max 30 days
		hours = 24
	}

	data, err := h.dashboardSvc.GetLookupHistory(c.Context(), time.Duration(hours)*time.Hour)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch lookup history")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
		"count":   len(data),
	})
}

// ErrorHandler renders every unhandled error as a JSON body
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}

func dashboardStatus(err error) int {
	switch {
	case err == nil:
		return fiber.StatusOK
	case errors.Is(err, domain.ErrEmptyLocation):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrLocationNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusBadGateway
	}
}
