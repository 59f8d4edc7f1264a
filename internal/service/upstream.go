package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/weatherdash/backend/internal/domain"
	"github.com/weatherdash/backend/internal/metrics"
)

const upstreamTimeout = 10 * time.Second

// upstreamStatusError is returned when an upstream API answers with a non-200 status
type upstreamStatusError struct {
	status int
	body   string
}

func (e upstreamStatusError) Error() string {
	if e.body == "" {
		return fmt.Sprintf("API returned status %d", e.status)
	}
	return fmt.Sprintf("API returned status %d: %s", e.status, e.body)
}

// NewUpstreamLimiter creates the limiter shared by every outbound client.
// rps can be fractional; a non-positive rps disables limiting.
func NewUpstreamLimiter(rps float64, burst int) *rate.Limiter {
	if rps <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(rps), burst)
}

// upstreamClient performs rate limited JSON GETs against one API
type upstreamClient struct {
	api        string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

func newUpstreamClient(api, baseURL string, limiter *rate.Limiter) upstreamClient {
	if limiter == nil {
		limiter = NewUpstreamLimiter(0, 0)
	}
	return upstreamClient{
		api:     api,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: upstreamTimeout,
		},
		limiter: limiter,
	}
}

// getJSON decodes GET baseURL+path?params into target.
// Every failure is wrapped with domain.ErrUpstreamUnavailable.
func (c upstreamClient) getJSON(ctx context.Context, path string, params url.Values, target any) error {
	err := c.doGetJSON(ctx, path, params, target)
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	metrics.UpstreamRequests.WithLabelValues(c.api, outcome).Inc()
	return err
}

func (c upstreamClient) doGetJSON(ctx context.Context, path string, params url.Values, target any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%s: rate limit wait canceled: %w: %v", c.api, domain.ErrUpstreamUnavailable, err)
	}

	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("%s: failed to create request: %w: %v", c.api, domain.ErrUpstreamUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: request failed: %w: %v", c.api, domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		se := upstreamStatusError{status: resp.StatusCode, body: string(body)}
		return fmt.Errorf("%s: %w: %v", c.api, domain.ErrUpstreamUnavailable, se)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("%s: failed to decode response: %w: %v", c.api, domain.ErrUpstreamUnavailable, err)
	}
	return nil
}
