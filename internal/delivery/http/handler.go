package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/giftwise/backend/internal/domain"
)

// SearchUsecase is the slice of the search service the handlers need.
type SearchUsecase interface {
	Search(ctx context.Context, query string, limit int) (*domain.SearchResult, error)
}

// TaxonomyReloader refreshes the keyword taxonomy from storage.
type TaxonomyReloader interface {
	Reload(ctx context.Context) error
	Size() int
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	search   SearchUsecase
	taxonomy TaxonomyReloader
	logger   zerolog.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(search SearchUsecase, taxonomy TaxonomyReloader, logger zerolog.Logger) *Handler {
	return &Handler{
		search:   search,
		taxonomy: taxonomy,
		logger:   logger.With().Str("component", "http").Logger(),
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "giftwise-backend",
		"version": "1.0.0",
	})
}

// Search handles product search requests.
// GET /api/v1/search?query=...&limit=...
func (h *Handler) Search(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		query = c.Query("q")
	}

	limit, err := parseLimit(c.Query("limit"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "limit must be a non-negative integer",
		})
		return
	}

	result, err := h.search.Search(c.Request.Context(), query, limit)
	if err != nil {
		h.logger.Error().Err(err).Str("query", query).Msg("search failed")

		// Degrade rather than fail hard: the storefront shows an empty
		// result set instead of an error page.
		if errors.Is(err, domain.ErrTaxonomyUnavailable) || errors.Is(err, domain.ErrRetrievalFailed) {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error":    "search temporarily unavailable",
				"products": []domain.Product{},
				"count":    0,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// parseLimit interprets the limit query parameter. An absent parameter is
// zero, letting the search service apply its configured default.
func parseLimit(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed < 0 {
		return 0, fmt.Errorf("%w: limit %q", domain.ErrInvalidRequest, raw)
	}
	return parsed, nil
}

// ReloadTaxonomy forces a reload of the keyword taxonomy.
// POST /api/v1/taxonomy/reload
func (h *Handler) ReloadTaxonomy(c *gin.Context) {
	if err := h.taxonomy.Reload(c.Request.Context()); err != nil {
		h.logger.Error().Err(err).Msg("taxonomy reload failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "taxonomy reload failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "reloaded",
		"phrases": h.taxonomy.Size(),
	})
}
