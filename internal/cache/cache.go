// Package cache stores forecasts by coordinate so repeated lookups of the
// same place skip the forecast API.
package cache

import (
	"context"
	"fmt"

	"github.com/weatherdash/backend/internal/domain"
	"github.com/weatherdash/backend/internal/metrics"
)

// Cache is implemented by every forecast cache backend
type Cache interface {
	Get(ctx context.Context, key string) (domain.Forecast, bool, error)
	Set(ctx context.Context, key string, forecast domain.Forecast) error
}

// Key builds the cache key for a coordinate pair (about 1km resolution)
func Key(lat, lon float64) string {
	return fmt.Sprintf("%.2f,%.2f", lat, lon)
}

func recordLookup(backend string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	metrics.CacheLookups.WithLabelValues(backend, result).Inc()
}
