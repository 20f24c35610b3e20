package domain

// Taxonomy categories with reserved meaning during intent extraction. The
// category set is otherwise open: anything not listed here is treated as a
// product category (Footwear, Toys, Clothing, ...).
const (
	CategoryFranchise = "Franchise"
	CategoryAgeGroup  = "AgeGroup"
	CategoryIntent    = "Intent"
)

// TaxonomyEntry maps a 1-3 word phrase to category metadata. The lowercase
// phrase is the lookup key. Franchise entries carry the franchise's canonical
// name in Subcategory; AgeGroup and Intent entries are modifiers and never
// contribute to a product-category match.
type TaxonomyEntry struct {
	Phrase      string  `json:"phrase"`
	Category    string  `json:"category"`
	Subcategory string  `json:"subcategory,omitempty"`
	Weight      float64 `json:"weight"`
}

// Intent is the structured representation of a query, created fresh per
// request and immutable after construction.
//
// Keywords preserves first-seen order. Categories and Franchises are
// deduplicated but also kept in first-seen order so that downstream
// multiplicative scoring is reproducible.
type Intent struct {
	RawQuery   string             `json:"rawQuery"`
	Keywords   []string           `json:"keywords"`
	Categories []string           `json:"categories"`
	Franchises []string           `json:"franchises"`
	AgeGroup   string             `json:"ageGroup,omitempty"`
	IntentType string             `json:"intentType,omitempty"`
	MinPrice   *float64           `json:"minPrice,omitempty"`
	MaxPrice   *float64           `json:"maxPrice,omitempty"`
	Weights    map[string]float64 `json:"weights,omitempty"`
}

// KeywordWeight returns the taxonomy weight recorded for a keyword, or 1.0
// for plain query residue.
func (i Intent) KeywordWeight(keyword string) float64 {
	if w, ok := i.Weights[keyword]; ok {
		return w
	}
	return 1.0
}

// IsEmpty reports whether the intent carries no constraints at all. An empty
// intent is not an error; it means "match anything".
func (i Intent) IsEmpty() bool {
	return len(i.Keywords) == 0 && len(i.Categories) == 0 && len(i.Franchises) == 0 &&
		i.MinPrice == nil && i.MaxPrice == nil
}
