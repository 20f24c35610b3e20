package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giftwise/backend/internal/domain"
)

func fptr(v float64) *float64 {
	return &v
}

func TestBuildCandidateQuery_EmptyFilter(t *testing.T) {
	query, args := buildCandidateQuery(domain.Filter{})

	assert.NotContains(t, query, "WHERE")
	assert.Contains(t, query, "ORDER BY id")
	assert.Empty(t, args)
}

func TestBuildCandidateQuery_StockAndPrice(t *testing.T) {
	filter := domain.Filter{
		InStockOnly: true,
		MinPrice:    fptr(10),
		MaxPrice:    fptr(20),
		Limit:       40,
	}

	query, args := buildCandidateQuery(filter)

	assert.Contains(t, query, "in_stock = TRUE")
	assert.Contains(t, query, "price >= $1")
	assert.Contains(t, query, "price <= $2")
	assert.Contains(t, query, "LIMIT $3")
	require.Len(t, args, 3)
	assert.Equal(t, 10.0, args[0])
	assert.Equal(t, 20.0, args[1])
	assert.Equal(t, 40, args[2])
}

func TestBuildCandidateQuery_Groups(t *testing.T) {
	filter := domain.Filter{
		Groups: []domain.Group{
			{Conditions: []domain.Condition{
				{Field: domain.FieldName, Value: "lego"},
				{Field: domain.FieldDescription, Value: "lego"},
			}},
			{Conditions: []domain.Condition{
				{Field: domain.FieldCategory, Value: "Toys"},
			}},
		},
	}

	query, args := buildCandidateQuery(filter)

	assert.Contains(t, query, "(name ILIKE $1 OR description ILIKE $2)")
	assert.Contains(t, query, "(category ILIKE $3)")
	// Groups combine with AND
	assert.Contains(t, query, ") AND (")
	require.Len(t, args, 3)
	assert.Equal(t, "%lego%", args[0])
	assert.Equal(t, "%lego%", args[1])
	assert.Equal(t, "%Toys%", args[2])
}

func TestBuildCandidateQuery_ValuesNeverInQueryText(t *testing.T) {
	// Hostile input must only ever appear as a bound argument
	hostile := `'; DROP TABLE products; --`
	filter := domain.Filter{
		Groups: []domain.Group{
			{Conditions: []domain.Condition{
				{Field: domain.FieldName, Value: hostile},
			}},
		},
	}

	query, args := buildCandidateQuery(filter)

	assert.NotContains(t, query, "DROP TABLE")
	require.Len(t, args, 1)
	assert.Equal(t, "%"+hostile+"%", args[0])
}

func TestBuildCandidateQuery_UnknownFieldSkipped(t *testing.T) {
	filter := domain.Filter{
		Groups: []domain.Group{
			{Conditions: []domain.Condition{
				{Field: domain.Field("nonexistent"), Value: "x"},
			}},
		},
	}

	query, args := buildCandidateQuery(filter)

	assert.NotContains(t, query, "WHERE")
	assert.Empty(t, args)
}

func TestBuildCandidateQuery_PlaceholdersSequential(t *testing.T) {
	filter := domain.Filter{
		InStockOnly: true,
		MaxPrice:    fptr(30),
		Groups: []domain.Group{
			{Conditions: []domain.Condition{
				{Field: domain.FieldName, Value: "disney"},
				{Field: domain.FieldBrand, Value: "disney"},
			}},
		},
		Limit: 25,
	}

	query, args := buildCandidateQuery(filter)

	require.Len(t, args, 4)
	for i := 1; i <= len(args); i++ {
		assert.Contains(t, query, "$"+string(rune('0'+i)))
	}
	// Ordering: price bound, then group conditions, then limit
	assert.Equal(t, 30.0, args[0])
	assert.Equal(t, "%disney%", args[1])
	assert.Equal(t, "%disney%", args[2])
	assert.Equal(t, 25, args[3])

	// LIMIT uses the final placeholder
	assert.True(t, strings.HasSuffix(query, "LIMIT $4"))
}
