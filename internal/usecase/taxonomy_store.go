package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/giftwise/backend/internal/domain"
)

// TaxonomyStore holds the keyword taxonomy as a process-wide read-mostly
// cache. Readers always observe a complete mapping: loads build a fresh map
// and publish it with a single atomic pointer swap, so a reload can run
// concurrently with in-flight reads. There is no implicit invalidation;
// freshness is the caller's job via Reload.
type TaxonomyStore struct {
	repo   domain.TaxonomyRepository
	logger zerolog.Logger

	mu      sync.Mutex // serializes loads, never taken by readers
	entries atomic.Pointer[map[string]domain.TaxonomyEntry]
}

// NewTaxonomyStore creates a taxonomy store backed by the given repository.
func NewTaxonomyStore(repo domain.TaxonomyRepository, logger zerolog.Logger) *TaxonomyStore {
	return &TaxonomyStore{
		repo:   repo,
		logger: logger.With().Str("component", "taxonomy").Logger(),
	}
}

// Snapshot returns the current phrase-to-entry mapping, loading it from the
// backing store on first use. The returned map must be treated as read-only.
// A failed load wraps domain.ErrTaxonomyUnavailable and is fatal for the
// request cycle.
func (s *TaxonomyStore) Snapshot(ctx context.Context) (map[string]domain.TaxonomyEntry, error) {
	if m := s.entries.Load(); m != nil {
		return *m, nil
	}
	return s.load(ctx)
}

// Reload replaces the published mapping with a freshly loaded one. On failure
// the previous mapping stays in place untouched.
func (s *TaxonomyStore) Reload(ctx context.Context) error {
	_, err := s.load(ctx)
	return err
}

// Size returns the number of phrases currently published, for diagnostics.
func (s *TaxonomyStore) Size() int {
	if m := s.entries.Load(); m != nil {
		return len(*m)
	}
	return 0
}

func (s *TaxonomyStore) load(ctx context.Context) (map[string]domain.TaxonomyEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTaxonomyUnavailable, err)
	}

	m := make(map[string]domain.TaxonomyEntry, len(rows))
	for _, entry := range rows {
		m[strings.ToLower(entry.Phrase)] = entry
	}

	s.entries.Store(&m)
	s.logger.Info().Int("phrases", len(m)).Msg("taxonomy loaded")
	return m, nil
}
