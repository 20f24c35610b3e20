package domain

import (
	"context"
	"time"
)

// TaxonomyRepository loads the full keyword taxonomy from the backing store.
// There is no streaming or pagination contract; the table is read in one go.
type TaxonomyRepository interface {
	LoadAll(ctx context.Context) ([]TaxonomyEntry, error)
}

// ProductRepository retrieves candidate products satisfying a filter.
// Ordering must be deterministic for identical inputs; relevance ordering is
// not its job.
type ProductRepository interface {
	FindCandidates(ctx context.Context, filter Filter) ([]Product, error)
}

// CacheRepository defines the interface for response caching.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
