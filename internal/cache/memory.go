package cache

import (
	"context"
	"sync"
	"time"

	"github.com/weatherdash/backend/internal/domain"
)

type entry struct {
	data      domain.Forecast
	expiresAt time.Time
}

// MemoryCache is an in-process TTL cache
type MemoryCache struct {
	mu    sync.RWMutex
	items map[string]entry
	ttl   time.Duration
	now   func() time.Time
}

// NewMemoryCache creates a cache whose entries live for ttl
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{items: make(map[string]entry), ttl: ttl, now: time.Now}
}

// Get returns the cached forecast for key if it has not expired
func (c *MemoryCache) Get(_ context.Context, key string) (domain.Forecast, bool, error) {
	c.mu.RLock()
	e, ok := c.items[key]
	c.mu.RUnlock()

	if !ok || c.now().After(e.expiresAt) {
		recordLookup("memory", false)
		return domain.Forecast{}, false, nil
	}
	recordLookup("memory", true)
	return e.data, true, nil
}

// Set stores forecast under key and drops expired entries
func (c *MemoryCache) Set(_ context.Context, key string, forecast domain.Forecast) error {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()
	for k, e := range c.items {
		if now.After(e.expiresAt) {
			delete(c.items, k)
		}
	}
	c.items[key] = entry{data: forecast, expiresAt: now.Add(c.ttl)}
	return nil
}

// Len returns the number of stored entries, expired or not
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

var _ Cache = (*MemoryCache)(nil)
