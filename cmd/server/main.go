package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/giftwise/backend/config"
	httpDelivery "github.com/giftwise/backend/internal/delivery/http"
	"github.com/giftwise/backend/internal/domain"
	"github.com/giftwise/backend/internal/infrastructure/cache"
	"github.com/giftwise/backend/internal/infrastructure/postgres"
	"github.com/giftwise/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Server.Environment)

	logger.Info().
		Str("environment", cfg.Server.Environment).
		Str("port", cfg.Server.Port).
		Str("cache_type", cfg.Cache.Type).
		Msg("starting GiftWise backend v1.0.0")

	// Initialize infrastructure dependencies
	db, err := postgres.Open(cfg.Database.URL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	taxonomyRepo := postgres.NewTaxonomyRepository(db)
	productRepo := postgres.NewProductRepository(db)

	var searchCache domain.CacheRepository
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := cache.NewRedisCache(cache.RedisConfig{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		})
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisCache.Close()
		searchCache = redisCache
	default:
		searchCache = cache.NewMemoryCache()
	}

	// Initialize usecase layer
	taxonomyStore := usecase.NewTaxonomyStore(taxonomyRepo, logger)

	// Warm the taxonomy so the first search does not pay the load cost.
	// A failure here is not fatal: the store retries on first use.
	warmCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := taxonomyStore.Reload(warmCtx); err != nil {
		logger.Warn().Err(err).Msg("taxonomy warm load failed, will retry on first search")
	} else {
		logger.Info().Int("phrases", taxonomyStore.Size()).Msg("taxonomy warmed")
	}
	cancel()

	extractor := usecase.NewIntentExtractor(taxonomyStore, logger, usecase.ExtractorConfig{
		EnableDebugLogging: cfg.Search.EnableDebugLogging,
	})

	searchService := usecase.NewSearchService(
		extractor,
		productRepo,
		searchCache,
		logger,
		usecase.SearchConfig{
			DefaultLimit:       cfg.Search.DefaultLimit,
			MaxLimit:           cfg.Search.MaxLimit,
			OversampleFactor:   cfg.Search.OversampleFactor,
			CacheTTL:           cfg.Cache.TTL,
			EnableDebugLogging: cfg.Search.EnableDebugLogging,
		},
	)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(searchService, taxonomyStore, logger)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler, logger)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Info().Str("addr", addr).Msg("server listening")

	if err := router.Run(addr); err != nil {
		logger.Fatal().Err(err).Msg("server failed")
	}
}

// newLogger builds the process logger. Development gets human-readable
// console output, everything else gets JSON.
func newLogger(environment string) zerolog.Logger {
	if environment == "development" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			With().Timestamp().Logger().Level(zerolog.DebugLevel)
	}
	return zerolog.New(os.Stdout).With().Timestamp().Logger().Level(zerolog.InfoLevel)
}
