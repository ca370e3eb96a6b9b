package services

import (
	"strings"
	"unicode/utf8"

	"github.com/hidayah-labs/duafinder/internal/core/domain"
	"github.com/hidayah-labs/duafinder/internal/expand"
	"github.com/hidayah-labs/duafinder/internal/textnorm"
)

// Fallback stage bonuses. Deliberately far below the primary weights:
// this stage trades precision for recall and only runs when the
// primary scorer found nothing.
const (
	bonusFallbackSubstring = 5
	bonusFallbackNear      = 2.5

	// nearMatchLongToken is the rune length at which a query token is
	// allowed two edits instead of one.
	nearMatchLongToken = 7
)

// scoreFallback runs the relaxed matcher over all candidates. Each
// expanded query token contributes at most one bonus per candidate:
// a literal substring hit, or failing that a near match against any
// haystack token.
func scoreFallback(records []domain.Record, q expand.Expansion) []domain.Match {
	matches := make([]domain.Match, 0)
	for _, rec := range records {
		haystack := textnorm.Normalize(rec.AllText())
		if haystack == "" {
			continue
		}
		hayTokens := strings.Fields(haystack)

		var score float64
		matched := 0
		for tok := range q.Set {
			if strings.Contains(haystack, tok) {
				score += bonusFallbackSubstring
				matched++
				continue
			}
			for _, hay := range hayTokens {
				if isNearMatch(tok, hay) {
					score += bonusFallbackNear
					matched++
					break
				}
			}
		}

		if score <= 0 {
			continue
		}

		coverage := 0.0
		if len(q.Set) > 0 {
			coverage = float64(matched) / float64(len(q.Set))
		}
		matches = append(matches, domain.Match{
			Record:   rec,
			Score:    score,
			Coverage: coverage,
		})
	}
	return matches
}

// isNearMatch reports whether candidate is close enough to the query
// token to count as a spelling variant: identical, a prefix in either
// direction, or within a bounded edit distance (1 for short tokens,
// 2 for tokens of 7+ runes).
func isNearMatch(query, candidate string) bool {
	if query == "" || candidate == "" {
		return false
	}
	if query == candidate {
		return true
	}
	if strings.HasPrefix(candidate, query) || strings.HasPrefix(query, candidate) {
		return true
	}

	queryLen := utf8.RuneCountInString(query)
	maxDist := 1
	if queryLen >= nearMatchLongToken {
		maxDist = 2
	}

	// Cheap reject before the O(n*m) distance computation.
	if abs(queryLen-utf8.RuneCountInString(candidate)) > maxDist {
		return false
	}

	return levenshtein(query, candidate) <= maxDist
}

// levenshtein computes the edit distance between two strings using
// the two-row dynamic programming form, on runes so multi-byte
// scripts are measured in characters rather than bytes.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return utf8.RuneCountInString(b)
	}
	if len(b) == 0 {
		return utf8.RuneCountInString(a)
	}

	runesA := []rune(a)
	runesB := []rune(b)

	prev := make([]int, len(runesB)+1)
	curr := make([]int, len(runesB)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(runesA); i++ {
		curr[0] = i
		for j := 1; j <= len(runesB); j++ {
			cost := 0
			if runesA[i-1] != runesB[j-1] {
				cost = 1
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(runesB)]
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
