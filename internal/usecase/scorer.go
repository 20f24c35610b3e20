package usecase

import (
	"strings"

	"github.com/giftwise/backend/internal/domain"
)

// Scoring bonuses and penalties
const (
	nameMatchBonus        = 10.0 // keyword found in product name (scaled by weight)
	textMatchBonus        = 5.0  // keyword found in description or search tags (scaled by weight)
	categoryMatchBonus    = 15.0 // intent category matches product category
	franchiseMatchBonus   = 20.0 // franchise matches brand or name
	budgetFitBonus        = 5.0  // scaled by how much of the budget the price uses
	priceViolationPenalty = 50.0 // price outside the requested bounds
	imageBonus            = 3.0  // product has an image
	inStockBonus          = 5.0  // product is in stock
)

// intentCategoryWeights multiplies the running score when the query's intent
// modifier interacts with a matched category. Keys are "IntentType:Category";
// absent pairs leave the score unchanged.
var intentCategoryWeights = map[string]float64{
	"Gift:Toys":        1.3,
	"Gift:Games":       1.2,
	"Gift:Clothing":    1.1,
	"Budget:Toys":      1.0,
	"Budget:Clothing":  1.1,
	"Premium:Toys":     0.9,
	"Premium:Clothing": 1.2,
}

// Score computes the relevance of a product to an intent. It is a pure
// function of its inputs: no hidden state, no randomness, never fails.
// Missing optional product fields score as empty-string/zero defaults.
//
// Order of application matters: the intent/category interaction is
// multiplicative over the keyword/category/franchise bonuses, and the price
// and quality adjustments are additive after it.
func Score(product domain.Product, intent domain.Intent) float64 {
	nameLower := strings.ToLower(product.Name)
	textLower := strings.ToLower(product.Description + " " + product.SearchTags)
	brandLower := strings.ToLower(product.Brand)
	categoryLower := strings.ToLower(product.Category)

	score := 0.0

	// Keyword matches: a name hit wins over a text hit, never both.
	for _, keyword := range intent.Keywords {
		kw := strings.ToLower(keyword)
		weight := intent.KeywordWeight(kw)
		if strings.Contains(nameLower, kw) {
			score += nameMatchBonus * weight
		} else if strings.Contains(textLower, kw) {
			score += textMatchBonus * weight
		}
	}

	for _, category := range intent.Categories {
		if strings.Contains(categoryLower, strings.ToLower(category)) {
			score += categoryMatchBonus
		}
	}

	for _, franchise := range intent.Franchises {
		f := strings.ToLower(franchise)
		if strings.Contains(brandLower, f) || strings.Contains(nameLower, f) {
			score += franchiseMatchBonus
		}
	}

	// Intent/category interaction, compounding in first-seen category order.
	if intent.IntentType != "" {
		for _, category := range intent.Categories {
			if factor, ok := intentCategoryWeights[intent.IntentType+":"+category]; ok {
				score *= factor
			}
		}
	}

	// Price relevance: reward budget utilization, penalize violations.
	if intent.MaxPrice != nil && product.Price > 0 {
		if product.Price <= *intent.MaxPrice {
			score += budgetFitBonus * (product.Price / *intent.MaxPrice)
		} else {
			score -= priceViolationPenalty
		}
	}
	if intent.MinPrice != nil && product.Price < *intent.MinPrice {
		score -= priceViolationPenalty
	}

	// Quality signals
	if product.ImageURL != "" {
		score += imageBonus
	}
	if product.InStock {
		score += inStockBonus
	}

	return score
}
