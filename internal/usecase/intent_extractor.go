package usecase

import (
	"context"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/giftwise/backend/internal/domain"
)

// wordPattern splits a normalized query into word-boundary tokens.
var wordPattern = regexp.MustCompile(`\b\w+\b`)

// stopWords excludes query filler from the keyword residue: articles,
// prepositions, pronouns, verbs of desire, and price comparison words that
// the price parser already consumed.
var stopWords = map[string]bool{
	"a": true, "an": true, "the": true, "for": true, "and": true,
	"or": true, "in": true, "on": true, "at": true, "to": true,
	"is": true, "are": true, "was": true, "were": true, "i": true,
	"me": true, "my": true, "want": true, "need": true, "looking": true,
	"find": true, "get": true, "buy": true, "under": true, "over": true,
	"below": true, "above": true, "with": true, "from": true, "of": true,
	"some": true, "any": true, "size": true, "age": true, "year": true,
	"years": true,
}

// ExtractorConfig holds configuration for the intent extractor.
type ExtractorConfig struct {
	EnableDebugLogging bool
}

// IntentExtractor turns raw queries into structured intents using the
// taxonomy store.
type IntentExtractor struct {
	taxonomy *TaxonomyStore
	logger   zerolog.Logger
	debug    bool
}

// NewIntentExtractor creates an extractor over the given taxonomy store.
func NewIntentExtractor(taxonomy *TaxonomyStore, logger zerolog.Logger, config ExtractorConfig) *IntentExtractor {
	return &IntentExtractor{
		taxonomy: taxonomy,
		logger:   logger.With().Str("component", "extractor").Logger(),
		debug:    config.EnableDebugLogging,
	}
}

// Extract produces the intent for a raw query. Extraction itself never fails;
// the only error is a taxonomy snapshot that cannot be loaded, which is fatal
// for the request.
func (e *IntentExtractor) Extract(ctx context.Context, query string) (domain.Intent, error) {
	taxonomy, err := e.taxonomy.Snapshot(ctx)
	if err != nil {
		return domain.Intent{}, err
	}

	intent := extractIntent(query, taxonomy)

	if e.debug {
		e.logger.Info().
			Str("query", query).
			Strs("keywords", intent.Keywords).
			Strs("categories", intent.Categories).
			Strs("franchises", intent.Franchises).
			Str("ageGroup", intent.AgeGroup).
			Str("intentType", intent.IntentType).
			Msg("intent extracted")
	}

	return intent, nil
}

// extractIntent is the deterministic single-pass core. Scan order matters:
// taxonomy phrases are matched at unigram, then contiguous bigram, then
// contiguous trigram granularity, each left to right. All matches apply; a
// longer phrase never suppresses its component words. For the ageGroup and
// intentType modifiers the first match in scan order wins.
func extractIntent(query string, taxonomy map[string]domain.TaxonomyEntry) domain.Intent {
	intent := domain.Intent{
		RawQuery:   query,
		Keywords:   []string{},
		Categories: []string{},
		Franchises: []string{},
		Weights:    map[string]float64{},
	}

	queryLower := strings.ToLower(query)
	words := wordPattern.FindAllString(queryLower, -1)

	intent.MinPrice, intent.MaxPrice = ParsePriceRange(queryLower)

	seenKeyword := make(map[string]bool)
	seenCategory := make(map[string]bool)
	seenFranchise := make(map[string]bool)

	addKeyword := func(keyword string) {
		if !seenKeyword[keyword] {
			seenKeyword[keyword] = true
			intent.Keywords = append(intent.Keywords, keyword)
		}
	}

	applyMatch := func(entry domain.TaxonomyEntry) {
		phrase := strings.ToLower(entry.Phrase)
		switch entry.Category {
		case domain.CategoryFranchise:
			if entry.Subcategory != "" && !seenFranchise[entry.Subcategory] {
				seenFranchise[entry.Subcategory] = true
				intent.Franchises = append(intent.Franchises, entry.Subcategory)
			}
			addKeyword(phrase)
		case domain.CategoryAgeGroup:
			if intent.AgeGroup == "" {
				intent.AgeGroup = entry.Subcategory
			}
		case domain.CategoryIntent:
			if intent.IntentType == "" {
				intent.IntentType = entry.Subcategory
			}
		default:
			if !seenCategory[entry.Category] {
				seenCategory[entry.Category] = true
				intent.Categories = append(intent.Categories, entry.Category)
			}
			addKeyword(phrase)
		}
		intent.Weights[phrase] = entry.Weight
	}

	for n := 1; n <= 3; n++ {
		for i := 0; i+n <= len(words); i++ {
			phrase := strings.Join(words[i:i+n], " ")
			if entry, ok := taxonomy[phrase]; ok {
				applyMatch(entry)
			}
		}
	}

	// Remaining tokens become plain keywords for text matching.
	for _, word := range words {
		if len(word) <= 1 || stopWords[word] {
			continue
		}
		addKeyword(word)
	}

	if len(intent.Weights) == 0 {
		intent.Weights = nil
	}

	return intent
}
