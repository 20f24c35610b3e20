package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/giftwise/backend/internal/domain"
)

// Defaults for the search pipeline
const (
	defaultResultLimit      = 8
	defaultMaxResultLimit   = 50
	defaultOversampleFactor = 5
	defaultCacheTTL         = 15 * time.Minute
)

// SearchConfig holds configuration for the search service.
type SearchConfig struct {
	DefaultLimit       int
	MaxLimit           int
	OversampleFactor   int
	CacheTTL           time.Duration
	EnableDebugLogging bool
}

// SearchService runs the full pipeline: extract intent, retrieve an
// over-fetched candidate set under the intent's hard constraints, score and
// rank, truncate. Requests are independent; the service holds no per-request
// state.
type SearchService struct {
	extractor *IntentExtractor
	products  domain.ProductRepository
	cache     domain.CacheRepository
	logger    zerolog.Logger

	defaultLimit int
	maxLimit     int
	oversample   int
	cacheTTL     time.Duration
	debug        bool
}

// NewSearchService creates a search service. cache may be nil to disable
// response caching.
func NewSearchService(
	extractor *IntentExtractor,
	products domain.ProductRepository,
	cache domain.CacheRepository,
	logger zerolog.Logger,
	config SearchConfig,
) *SearchService {
	defaultLimit := config.DefaultLimit
	if defaultLimit <= 0 {
		defaultLimit = defaultResultLimit
	}
	maxLimit := config.MaxLimit
	if maxLimit <= 0 {
		maxLimit = defaultMaxResultLimit
	}
	oversample := config.OversampleFactor
	if oversample <= 0 {
		oversample = defaultOversampleFactor
	}
	cacheTTL := config.CacheTTL
	if cacheTTL <= 0 {
		cacheTTL = defaultCacheTTL
	}

	return &SearchService{
		extractor:    extractor,
		products:     products,
		cache:        cache,
		logger:       logger.With().Str("component", "search").Logger(),
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
		oversample:   oversample,
		cacheTTL:     cacheTTL,
		debug:        config.EnableDebugLogging,
	}
}

// Search ranks the catalog against a free-text query and returns the top
// limit products. limit <= 0 selects the default; limits above the configured
// maximum are capped to keep oversampling bounded. Empty or unparseable
// queries are not errors: they yield a maximally permissive intent.
func (s *SearchService) Search(ctx context.Context, query string, limit int) (*domain.SearchResult, error) {
	query = strings.TrimSpace(query)
	if limit <= 0 {
		limit = s.defaultLimit
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}

	cacheKey := fmt.Sprintf("search:%s:%d", strings.ToLower(query), limit)
	if cached := s.cachedResult(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	intent, err := s.extractor.Extract(ctx, query)
	if err != nil {
		return nil, err
	}

	filter := CandidateFilter(intent, limit*s.oversample)
	candidates, err := s.products.FindCandidates(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRetrievalFailed, err)
	}

	ranked := Rank(ctx, candidates, intent, limit)

	if s.debug {
		s.logger.Info().
			Str("query", query).
			Int("candidates", len(candidates)).
			Int("returned", len(ranked)).
			Msg("search completed")
	}

	result := &domain.SearchResult{
		Intent:   intent,
		Products: ranked,
		Count:    len(ranked),
	}
	s.storeResult(ctx, cacheKey, result)

	return result, nil
}

// CandidateFilter translates an intent's hard constraints into a predicate
// tree: each non-empty facet contributes one OR-group of substring
// conditions, and the groups combine with AND. Price bounds and the stock
// flag apply on top.
func CandidateFilter(intent domain.Intent, fetchLimit int) domain.Filter {
	filter := domain.Filter{
		MinPrice:    intent.MinPrice,
		MaxPrice:    intent.MaxPrice,
		InStockOnly: true,
		Limit:       fetchLimit,
	}

	if len(intent.Keywords) > 0 {
		group := domain.Group{}
		for _, keyword := range intent.Keywords {
			group.Conditions = append(group.Conditions,
				domain.Condition{Field: domain.FieldName, Value: keyword},
				domain.Condition{Field: domain.FieldDescription, Value: keyword},
				domain.Condition{Field: domain.FieldSearchTags, Value: keyword},
			)
		}
		filter.Groups = append(filter.Groups, group)
	}

	if len(intent.Categories) > 0 {
		group := domain.Group{}
		for _, category := range intent.Categories {
			group.Conditions = append(group.Conditions,
				domain.Condition{Field: domain.FieldCategory, Value: category},
			)
		}
		filter.Groups = append(filter.Groups, group)
	}

	if len(intent.Franchises) > 0 {
		group := domain.Group{}
		for _, franchise := range intent.Franchises {
			group.Conditions = append(group.Conditions,
				domain.Condition{Field: domain.FieldBrand, Value: franchise},
				domain.Condition{Field: domain.FieldName, Value: franchise},
			)
		}
		filter.Groups = append(filter.Groups, group)
	}

	return filter
}

func (s *SearchService) cachedResult(ctx context.Context, key string) *domain.SearchResult {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil
	}
	var result domain.SearchResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil
	}
	if s.debug {
		s.logger.Info().Str("key", key).Msg("cache hit")
	}
	return &result
}

func (s *SearchService) storeResult(ctx context.Context, key string, result *domain.SearchResult) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.cacheTTL); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("failed to cache result")
	}
}
