package postgres

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/weatherdash/backend/internal/domain"
)

const historyLimit = 100

// MockRepository implements domain.LookupRepository in memory for demo mode and tests
type MockRepository struct {
	mu      sync.RWMutex
	lookups []domain.Lookup
}

// NewMockRepository creates a new mock repository
func NewMockRepository() *MockRepository {
	return &MockRepository{}
}

// SaveLookup keeps the lookup in memory
func (r *MockRepository) SaveLookup(ctx context.Context, data domain.Lookup) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lookups = append(r.lookups, data)
	return nil
}

// GetLookupHistory returns stored lookups in [from, to], newest first
func (r *MockRepository) GetLookupHistory(ctx context.Context, from, to time.Time) ([]domain.Lookup, error) {
	r.mu.RLock()
	results := make([]domain.Lookup, 0, len(r.lookups))
	for _, l := range r.lookups {
		if l.Timestamp.Before(from) || l.Timestamp.After(to) {
			continue
		}
		results = append(results, l)
	}
	r.mu.RUnlock()

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Timestamp.After(results[j].Timestamp)
	})
	if len(results) > historyLimit {
		results = results[:historyLimit]
	}
	return results, nil
}

// Health always returns nil in mock mode
func (r *MockRepository) Health(ctx context.Context) error {
	return nil
}

var _ domain.LookupRepository = (*MockRepository)(nil)
