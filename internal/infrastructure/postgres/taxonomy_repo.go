package postgres

import (
	"context"
	"fmt"

	"github.com/giftwise/backend/internal/domain"
)

// TaxonomyRepository loads the keyword taxonomy table.
type TaxonomyRepository struct {
	db DB
}

// NewTaxonomyRepository creates a taxonomy repository.
func NewTaxonomyRepository(db DB) *TaxonomyRepository {
	return &TaxonomyRepository{db: db}
}

// LoadAll reads the full taxonomy in one query. NULL weights default to 1.0.
func (r *TaxonomyRepository) LoadAll(ctx context.Context) ([]domain.TaxonomyEntry, error) {
	const query = `
		SELECT phrase, category, COALESCE(subcategory, ''), COALESCE(weight, 1.0)
		FROM taxonomy
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query taxonomy: %w", err)
	}
	defer rows.Close()

	var entries []domain.TaxonomyEntry
	for rows.Next() {
		var entry domain.TaxonomyEntry
		if err := rows.Scan(&entry.Phrase, &entry.Category, &entry.Subcategory, &entry.Weight); err != nil {
			return nil, fmt.Errorf("scan taxonomy row: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate taxonomy rows: %w", err)
	}

	return entries, nil
}
