package postgres

import (
	"context"
	"fmt"

	"github.com/giftwise/backend/internal/domain"
)

// ProductRepository retrieves candidate products from the catalog table.
type ProductRepository struct {
	db DB
}

// NewProductRepository creates a product repository.
func NewProductRepository(db DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// FindCandidates returns the products satisfying all of the filter's hard
// constraints, in id order, up to the filter's limit.
func (r *ProductRepository) FindCandidates(ctx context.Context, filter domain.Filter) ([]domain.Product, error) {
	query, args := buildCandidateQuery(filter)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query candidates: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.SearchTags,
			&p.Price, &p.Currency, &p.Merchant, &p.Brand, &p.Category,
			&p.AffiliateLink, &p.ImageURL, &p.InStock,
		); err != nil {
			return nil, fmt.Errorf("scan candidate: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate candidates: %w", err)
	}

	return products, nil
}
