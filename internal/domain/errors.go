package domain

import "errors"

var (
	// ErrTaxonomyUnavailable is returned when the taxonomy backing store
	// cannot be read. Fatal for the current request cycle; there is no
	// stale-cache fallback.
	ErrTaxonomyUnavailable = errors.New("taxonomy data unavailable")

	// ErrRetrievalFailed is returned when candidate retrieval against the
	// catalog fails. Callers surface an empty result set with an error flag.
	ErrRetrievalFailed = errors.New("candidate retrieval failed")

	// ErrCacheMiss is returned when data is not found in cache.
	ErrCacheMiss = errors.New("cache miss")

	// ErrCacheUnavailable is returned when the cache service is unreachable.
	ErrCacheUnavailable = errors.New("cache service unavailable")

	// ErrInvalidRequest is returned when request parameters are invalid.
	ErrInvalidRequest = errors.New("invalid request parameters")
)
