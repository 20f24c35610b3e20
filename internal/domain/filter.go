package domain

// Field identifies a searchable product attribute.
type Field string

const (
	FieldName        Field = "name"
	FieldDescription Field = "description"
	FieldSearchTags  Field = "search_tags"
	FieldCategory    Field = "category"
	FieldBrand       Field = "brand"
)

// Condition is a single case-insensitive substring test against one field.
type Condition struct {
	Field Field
	Value string
}

// Group is a set of conditions combined with OR. One group corresponds to one
// intent facet (keywords, categories, or franchises).
type Group struct {
	Conditions []Condition
}

// Filter describes the hard constraints for candidate retrieval as a
// structured predicate tree: groups are combined with AND, price bounds and
// the stock flag apply on top. Storage backends compile this to their own
// query form; the tree itself never carries backend syntax.
type Filter struct {
	Groups      []Group
	MinPrice    *float64
	MaxPrice    *float64
	InStockOnly bool
	Limit       int
}
