package postgres

import (
	"fmt"
	"strings"

	"github.com/giftwise/backend/internal/domain"
)

const productColumns = `id, name, COALESCE(description, ''), COALESCE(search_tags, ''), ` +
	`price, COALESCE(currency, 'GBP'), merchant, COALESCE(brand, ''), COALESCE(category, ''), ` +
	`affiliate_link, COALESCE(image_url, ''), COALESCE(in_stock, FALSE)`

// buildCandidateQuery compiles a filter's predicate tree into a parameterized
// SELECT. Every user-supplied value travels as a placeholder argument, never
// as query text. ORDER BY id keeps retrieval deterministic for identical
// inputs; relevance ordering happens downstream.
func buildCandidateQuery(filter domain.Filter) (string, []interface{}) {
	var (
		where []string
		args  []interface{}
	)
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.InStockOnly {
		where = append(where, "in_stock = TRUE")
	}
	if filter.MinPrice != nil {
		where = append(where, "price >= "+arg(*filter.MinPrice))
	}
	if filter.MaxPrice != nil {
		where = append(where, "price <= "+arg(*filter.MaxPrice))
	}

	for _, group := range filter.Groups {
		var ors []string
		for _, cond := range group.Conditions {
			column, ok := columnFor(cond.Field)
			if !ok {
				continue
			}
			ors = append(ors, column+" ILIKE "+arg("%"+cond.Value+"%"))
		}
		if len(ors) > 0 {
			where = append(where, "("+strings.Join(ors, " OR ")+")")
		}
	}

	query := "SELECT " + productColumns + " FROM products"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY id"
	if filter.Limit > 0 {
		query += " LIMIT " + arg(filter.Limit)
	}

	return query, args
}

func columnFor(field domain.Field) (string, bool) {
	switch field {
	case domain.FieldName:
		return "name", true
	case domain.FieldDescription:
		return "description", true
	case domain.FieldSearchTags:
		return "search_tags", true
	case domain.FieldCategory:
		return "category", true
	case domain.FieldBrand:
		return "brand", true
	default:
		return "", false
	}
}
