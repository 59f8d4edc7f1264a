package domain

import (
	"context"
	"time"
)

// LookupRepository defines the interface for lookup persistence.
// The domain owns the interface; storage packages implement it.
type LookupRepository interface {
	// SaveLookup persists one dashboard lookup
	SaveLookup(ctx context.Context, lookup Lookup) error

	// GetLookupHistory returns lookups between from and to, newest first
	GetLookupHistory(ctx context.Context, from, to time.Time) ([]Lookup, error)

	// Health checks storage connectivity
	Health(ctx context.Context) error
}
