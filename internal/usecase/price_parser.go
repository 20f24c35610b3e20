package usecase

import (
	"regexp"
	"strconv"
)

// Package-level compiled regex patterns for price phrase parsing
var (
	// "under £20", "below 20", "less than $20", "max 20", "up to €20"
	upperBoundPattern = regexp.MustCompile(`(?i)\b(?:under|below|less than|max|up to)\s*[£$€]?\s*(\d+)`)

	// "over £10", "above 10", "more than $10", "min 10", "at least €10"
	lowerBoundPattern = regexp.MustCompile(`(?i)\b(?:over|above|more than|min|at least)\s*[£$€]?\s*(\d+)`)

	// "£10-£20", "10 to 20", "$10 - $20"
	rangePattern = regexp.MustCompile(`[£$€]?\s*(\d+)\s*(?:-|to)\s*[£$€]?\s*(\d+)`)
)

// ParsePriceRange extracts price bounds from a normalized (lowercased) query.
// Rules apply independently and later rules override earlier ones on the same
// bound: upper-bound phrase, then lower-bound phrase, then explicit range.
// A range always assigns the lower value to minPrice regardless of position.
// Nil means the bound is unconstrained.
func ParsePriceRange(query string) (minPrice, maxPrice *float64) {
	if m := upperBoundPattern.FindStringSubmatch(query); m != nil {
		maxPrice = parseAmount(m[1])
	}

	if m := lowerBoundPattern.FindStringSubmatch(query); m != nil {
		minPrice = parseAmount(m[1])
	}

	if m := rangePattern.FindStringSubmatch(query); m != nil {
		lo := parseAmount(m[1])
		hi := parseAmount(m[2])
		if lo != nil && hi != nil && *lo > *hi {
			lo, hi = hi, lo
		}
		minPrice, maxPrice = lo, hi
	}

	return minPrice, maxPrice
}

func parseAmount(s string) *float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}
