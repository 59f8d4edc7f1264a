package service

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/time/rate"

	"github.com/weatherdash/backend/internal/domain"
	"github.com/weatherdash/backend/pkg/utils"
)

const maxSearchResults = 10

// GeocodingService resolves place names to coordinates
type GeocodingService struct {
	client upstreamClient
}

// NewGeocodingService creates a new geocoding service for the given API base URL
func NewGeocodingService(baseURL string, limiter *rate.Limiter) *GeocodingService {
	return &GeocodingService{
		client: newUpstreamClient("geocoding", strings.TrimRight(baseURL, "/"), limiter),
	}
}

// geocodingResponse represents the geocoding API search response
type geocodingResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Country   string  `json:"country"`
		Admin1    string  `json:"admin1"`
		Timezone  string  `json:"timezone"`
	} `json:"results"`
}

// Geocode returns the best match for name
func (s *GeocodingService) Geocode(ctx context.Context, name string) (domain.Location, error) {
	locations, err := s.Search(ctx, name, 1)
	if err != nil {
		return domain.Location{}, err
	}
	if len(locations) == 0 {
		return domain.Location{}, fmt.Errorf("geocoding: %q: %w", name, domain.ErrLocationNotFound)
	}
	return locations[0], nil
}

// Search returns up to count matches for name; count is clamped to 1..10
func (s *GeocodingService) Search(ctx context.Context, name string, count int) ([]domain.Location, error) {
	count = utils.ClampInt(count, 1, maxSearchResults)

	params := url.Values{}
	params.Set("name", name)
	params.Set("count", strconv.Itoa(count))
	params.Set("language", "en")
	params.Set("format", "json")

	var resp geocodingResponse
	if err := s.client.getJSON(ctx, "/v1/search", params, &resp); err != nil {
		return nil, err
	}

	locations := make([]domain.Location, 0, len(resp.Results))
	for _, r := range resp.Results {
		locations = append(locations, domain.Location{
			Name:      r.Name,
			Country:   r.Country,
			Admin1:    r.Admin1,
			Latitude:  r.Latitude,
			Longitude: r.Longitude,
			Timezone:  r.Timezone,
		})
	}
	if len(locations) > count {
		locations = locations[:count]
	}
	return locations, nil
}
