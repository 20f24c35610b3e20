package usecase

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/giftwise/backend/internal/domain"
)

// scoreWorkers bounds the per-request scoring parallelism. Scoring is a pure
// function per candidate, so candidates can be scored in any order; only the
// final sort imposes ordering.
const scoreWorkers = 8

// Rank scores every candidate against the intent, sorts by score descending,
// and returns the first limit products. The sort is stable so ties keep
// retrieval order, making results reproducible for identical inputs.
func Rank(ctx context.Context, candidates []domain.Product, intent domain.Intent, limit int) []domain.Product {
	scored := RankScored(ctx, candidates, intent)

	if limit > len(scored) || limit < 0 {
		limit = len(scored)
	}

	products := make([]domain.Product, 0, limit)
	for _, candidate := range scored[:limit] {
		products = append(products, candidate.Product)
	}
	return products
}

// RankScored is Rank without truncation, returning candidates with their
// scores attached.
func RankScored(ctx context.Context, candidates []domain.Product, intent domain.Intent) []domain.ScoredCandidate {
	scored := make([]domain.ScoredCandidate, len(candidates))

	group, _ := errgroup.WithContext(ctx)
	group.SetLimit(scoreWorkers)
	for i, product := range candidates {
		group.Go(func() error {
			scored[i] = domain.ScoredCandidate{Product: product, Score: Score(product, intent)}
			return nil
		})
	}
	_ = group.Wait() // scoring never fails

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}
