package service

import (
	"context"
	"log"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/time/rate"

	"github.com/weatherdash/backend/internal/cache"
	"github.com/weatherdash/backend/internal/domain"
)

const (
	currentFields = "temperature_2m,weather_code,is_day,relative_humidity_2m,wind_speed_10m"
	dailyFields   = "weather_code,temperature_2m_max,temperature_2m_min"
)

// ForecastService fetches current conditions and the daily forecast
type ForecastService struct {
	client upstreamClient
	cache  cache.Cache
}

// NewForecastService creates a new forecast service. forecastCache may be nil.
func NewForecastService(baseURL string, limiter *rate.Limiter, forecastCache cache.Cache) *ForecastService {
	return &ForecastService{
		client: newUpstreamClient("weather", strings.TrimRight(baseURL, "/"), limiter),
		cache:  forecastCache,
	}
}

// GetForecast returns the forecast for a coordinate pair and whether it came from cache
func (s *ForecastService) GetForecast(ctx context.Context, lat, lon float64) (domain.Forecast, bool, error) {
	key := cache.Key(lat, lon)
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			log.Printf("weather: cache read failed for %s: %v", key, err)
		} else if ok {
			return cached, true, nil
		}
	}

	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("current", currentFields)
	params.Set("daily", dailyFields)
	params.Set("timezone", "auto")

	var forecast domain.Forecast
	if err := s.client.getJSON(ctx, "/v1/forecast", params, &forecast); err != nil {
		log.Printf("weather: failed to fetch forecast: %v", err)
		return domain.Forecast{}, false, err
	}

	log.Printf("weather: fetched forecast for %v, %v", lat, lon)
	if code := forecast.Current.WeatherCode; code != nil {
		log.Printf("weather: current weather code %d", *code)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, forecast); err != nil {
			log.Printf("weather: cache write failed for %s: %v", key, err)
		}
	}
	return forecast, false, nil
}
