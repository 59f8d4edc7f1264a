package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/weatherdash/backend/internal/domain"
	"github.com/weatherdash/backend/internal/metrics"
	"github.com/weatherdash/backend/pkg/utils"
)

const (
	forecastDays = 7

	msgEmptyLocation    = "Please enter a city name."
	msgLocationNotFound = "Location not found. Please try a different city name."
	msgUpstreamFailure  = "Weather service is temporarily unavailable. Please try again later."
)

var weekdayRotation = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// DashboardService turns a place name into a themed dashboard view model
type DashboardService struct {
	geocoder *GeocodingService
	forecast *ForecastService
	repo     LookupRepository

	wgBg sync.WaitGroup // tracks background goroutines for graceful shutdown
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	geocoder *GeocodingService,
	forecast *ForecastService,
	repo LookupRepository,
) *DashboardService {
	return &DashboardService{
		geocoder: geocoder,
		forecast: forecast,
		repo:     repo,
	}
}

// WaitBackground blocks until all background save goroutines complete.
// Call during graceful shutdown to avoid dropped writes.
func (s *DashboardService) WaitBackground() {
	s.wgBg.Wait()
}

// GetDashboard geocodes location, fetches its forecast and assembles the view model.
// On failure the response still carries the default theme and a user-facing
// message, and the error wraps one of the domain sentinel errors.
func (s *DashboardService) GetDashboard(ctx context.Context, location string) (domain.DashboardResponse, error) {
	resp, err := s.getDashboard(ctx, location)
	metrics.DashboardRequests.WithLabelValues(outcomeLabel(err)).Inc()
	return resp, err
}

func (s *DashboardService) getDashboard(ctx context.Context, location string) (domain.DashboardResponse, error) {
	if strings.TrimSpace(location) == "" {
		return failedResponse(msgEmptyLocation), domain.ErrEmptyLocation
	}

	place, err := s.geocoder.Geocode(ctx, location)
	if err != nil {
		if errors.Is(err, domain.ErrLocationNotFound) {
			return failedResponse(msgLocationNotFound), err
		}
		log.Printf("dashboard: failed to geocode %q: %v", location, err)
		return failedResponse(msgUpstreamFailure), err
	}

	forecast, _, err := s.forecast.GetForecast(ctx, place.Latitude, place.Longitude)
	if err != nil {
		return failedResponse(msgUpstreamFailure), fmt.Errorf("dashboard: %w", err)
	}

	code := intOr(forecast.Current.WeatherCode, 0)
	isDay := intOr(forecast.Current.IsDay, 1) != 0
	theme := GetWeatherTheme(code, isDay)

	log.Printf("Location: %s, Weather code: %d, Theme: %s", location, code, theme.Name)

	data := BuildDashboardData(location, forecast)
	s.recordLookup(location, place, forecast)

	return domain.DashboardResponse{Data: &data, Theme: theme}, nil
}

// BuildDashboardData maps a raw forecast into the display view model
func BuildDashboardData(location string, forecast domain.Forecast) domain.DashboardData {
	current := forecast.Current
	daily := forecast.Daily

	code := intOr(current.WeatherCode, 0)
	isDay := intOr(current.IsDay, 1) != 0

	data := domain.DashboardData{
		Location:    location,
		City:        location,
		CurrentTemp: utils.RoundTemp(floatOr(current.Temperature, 0)),
		WeatherIcon: GetWeatherIcon(code),
		WeatherType: GetWeatherTheme(code, isDay).Name,
		Humidity:    utils.FormatWhole(floatOr(current.Humidity, 50)) + "%",
		WindSpeed:   formatWind(current.WindSpeed) + " km/h",
		HighTemp:    utils.RoundTemp(floatAt(daily.TempMax, 0)),
		LowTemp:     utils.RoundTemp(floatAt(daily.TempMin, 0)),
		Forecast:    make([]domain.ForecastDay, 0, forecastDays),
	}

	days := forecastDays
	if n := len(daily.TempMax); n < days {
		days = n
	}
	if n := len(daily.TempMin); n < days {
		days = n
	}

	for i := 0; i < days; i++ {
		dayCode := 0
		if i < len(daily.WeatherCode) {
			dayCode = daily.WeatherCode[i]
		}
		data.Forecast = append(data.Forecast, domain.ForecastDay{
			Day:  dayLabel(daily.Time, i),
			High: utils.RoundTemp(daily.TempMax[i]),
			Low:  utils.RoundTemp(daily.TempMin[i]),
			Icon: GetWeatherIcon(dayCode),
			Type: GetWeatherTheme(dayCode, true).Name,
		})
	}

	return data
}

// recordLookup persists the lookup asynchronously (tracked for graceful shutdown)
func (s *DashboardService) recordLookup(location string, place domain.Location, forecast domain.Forecast) {
	if s.repo == nil {
		return
	}

	lookup := domain.Lookup{
		ID:          uuid.NewString(),
		Location:    location,
		Latitude:    utils.RoundTo(place.Latitude, 4),
		Longitude:   utils.RoundTo(place.Longitude, 4),
		WeatherCode: intOr(forecast.Current.WeatherCode, 0),
		WeatherType: string(ClassifyWeatherCode(intOr(forecast.Current.WeatherCode, 0))),
		Temperature: floatOr(forecast.Current.Temperature, 0),
		Timestamp:   time.Now().UTC(),
	}

	s.wgBg.Add(1)
	go func() {
		defer s.wgBg.Done()
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.repo.SaveLookup(bgCtx, lookup); err != nil {
			log.Printf("Failed to save lookup: %v", err)
		}
	}()
}

// ThemeSamples returns the theme debug table
func (s *DashboardService) ThemeSamples() []domain.ThemeSample {
	return ThemeSamples()
}

// SearchLocations proxies a location search to the geocoder
func (s *DashboardService) SearchLocations(ctx context.Context, name string, count int) ([]domain.Location, error) {
	return s.geocoder.Search(ctx, name, count)
}

// GetLookupHistory returns recorded lookups within the last window
func (s *DashboardService) GetLookupHistory(ctx context.Context, window time.Duration) ([]domain.Lookup, error) {
	to := time.Now().UTC()
	return s.repo.GetLookupHistory(ctx, to.Add(-window), to)
}

// RepositoryHealth reports storage connectivity
func (s *DashboardService) RepositoryHealth(ctx context.Context) error {
	return s.repo.Health(ctx)
}

func failedResponse(msg string) domain.DashboardResponse {
	return domain.DashboardResponse{
		Theme: GetWeatherTheme(0, true),
		Error: &msg,
	}
}

func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrEmptyLocation):
		return "empty_location"
	case errors.Is(err, domain.ErrLocationNotFound):
		return "not_found"
	default:
		return "upstream_error"
	}
}

// dayLabel names forecast day i after its date, falling back to a fixed rotation
func dayLabel(dates []string, i int) string {
	if i < len(dates) {
		if t, err := time.Parse("2006-01-02", dates[i]); err == nil {
			return t.Weekday().String()[:3]
		}
	}
	return weekdayRotation[(i+1)%7]
}

func formatWind(v *float64) string {
	if v == nil {
		return "0"
	}
	return utils.FormatDecimal(*v)
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

func floatOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

func floatAt(values []float64, i int) float64 {
	if i < len(values) {
		return values[i]
	}
	return 0
}
