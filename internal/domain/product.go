package domain

// Product is a read-only projection of a catalog row. The search core never
// mutates a product; missing optional fields are zero values.
type Product struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	SearchTags    string  `json:"searchTags,omitempty"`
	Price         float64 `json:"price"`
	Currency      string  `json:"currency"`
	Merchant      string  `json:"merchant"`
	Brand         string  `json:"brand,omitempty"`
	Category      string  `json:"category,omitempty"`
	AffiliateLink string  `json:"affiliateLink"`
	ImageURL      string  `json:"imageUrl,omitempty"`
	InStock       bool    `json:"inStock"`
}

// ScoredCandidate pairs a candidate with its relevance score. Lives only
// within a single ranking pass.
type ScoredCandidate struct {
	Product Product
	Score   float64
}

// SearchResult is the caller-facing response for one search request.
type SearchResult struct {
	Intent   Intent    `json:"intent"`
	Products []Product `json:"products"`
	Count    int       `json:"count"`
}
