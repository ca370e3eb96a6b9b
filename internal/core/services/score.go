package services

import (
	"strings"

	"github.com/hidayah-labs/duafinder/internal/core/domain"
	"github.com/hidayah-labs/duafinder/internal/expand"
	"github.com/hidayah-labs/duafinder/internal/textnorm"
)

// Field weights for the primary scorer. The curated search blob and
// keyword lists are trusted most; the raw concatenation least. These
// are fixed constants, not runtime configuration.
const (
	bonusQueryInBlob     = 36
	bonusQueryInKeywords = 28
	bonusQueryInTitle    = 20
	bonusQueryInRaw      = 16

	bonusTokenInKeywords = 11
	bonusTokenInTitle    = 9
	bonusTokenInBody     = 7
	bonusTokenInBlob     = 4
	bonusTokenInRaw      = 3

	// coverageWeight scales the matched-token ratio added on top of
	// the per-field bonuses.
	coverageWeight = 18
)

// scoredFields holds a record's fields normalized once per scoring run.
type scoredFields struct {
	titleCat string
	body     string
	keywords string
	blob     string
	raw      string

	titleCatTokens map[string]struct{}
	bodyTokens     map[string]struct{}
	keywordTokens  map[string]struct{}
	blobTokens     map[string]struct{}
	rawTokens      map[string]struct{}
}

func normalizeFields(rec domain.Record) scoredFields {
	f := scoredFields{
		titleCat: textnorm.Normalize(rec.TitleCategoryText()),
		body:     textnorm.Normalize(rec.BodyText()),
		keywords: textnorm.Normalize(rec.KeywordText()),
		blob:     textnorm.Normalize(rec.SearchBlob),
		raw:      textnorm.Normalize(rec.AllText()),
	}
	f.titleCatTokens = tokenSet(f.titleCat)
	f.bodyTokens = tokenSet(f.body)
	f.keywordTokens = tokenSet(f.keywords)
	f.blobTokens = tokenSet(f.blob)
	f.rawTokens = tokenSet(f.raw)
	return f
}

func tokenSet(normalized string) map[string]struct{} {
	fields := strings.Fields(normalized)
	set := make(map[string]struct{}, len(fields))
	for _, tok := range fields {
		set[tok] = struct{}{}
	}
	return set
}

// scoreRecord computes the weighted primary score for one candidate.
// The second return value is false when the candidate scored zero or
// below and should be discarded.
func scoreRecord(rec domain.Record, q expand.Expansion) (domain.Match, bool) {
	f := normalizeFields(rec)

	var score float64
	exact := false

	// Flat bonuses when the whole normalized query is contained in a
	// field. Non-exclusive: a query can fire several at once.
	if fieldContains(f.blob, q.Query) {
		score += bonusQueryInBlob
		exact = true
	}
	if fieldContains(f.keywords, q.Query) {
		score += bonusQueryInKeywords
		exact = true
	}
	if fieldContains(f.titleCat, q.Query) {
		score += bonusQueryInTitle
		exact = true
	}
	if fieldContains(f.raw, q.Query) {
		score += bonusQueryInRaw
		exact = true
	}

	// Per-token bonuses: a token scores once per field category it
	// hits, and counts toward coverage when it hits anywhere.
	matched := 0
	for tok := range q.Set {
		hit := false
		if _, ok := f.keywordTokens[tok]; ok {
			score += bonusTokenInKeywords
			hit = true
		}
		if _, ok := f.titleCatTokens[tok]; ok {
			score += bonusTokenInTitle
			hit = true
		}
		if _, ok := f.bodyTokens[tok]; ok {
			score += bonusTokenInBody
			hit = true
		}
		if _, ok := f.blobTokens[tok]; ok {
			score += bonusTokenInBlob
			hit = true
		}
		if _, ok := f.rawTokens[tok]; ok {
			score += bonusTokenInRaw
			hit = true
		}
		if hit {
			matched++
		}
	}

	coverage := 0.0
	if len(q.Set) > 0 {
		coverage = float64(matched) / float64(len(q.Set))
	}
	score += coverage * coverageWeight

	if score <= 0 {
		return domain.Match{}, false
	}

	return domain.Match{
		Record:   rec,
		Score:    score,
		Exact:    exact,
		Coverage: coverage,
	}, true
}

// fieldContains is a substring test that never matches against an
// empty field or with an empty query.
func fieldContains(field, query string) bool {
	return field != "" && query != "" && strings.Contains(field, query)
}

// scorePrimary runs the primary scorer over all candidates.
func scorePrimary(records []domain.Record, q expand.Expansion) []domain.Match {
	matches := make([]domain.Match, 0, len(records))
	for _, rec := range records {
		if m, ok := scoreRecord(rec, q); ok {
			matches = append(matches, m)
		}
	}
	return matches
}
