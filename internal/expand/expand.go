// Package expand widens a normalized query's match surface.
//
// Stop words are removed first, then every surviving token is looked
// up in a static alias table covering transliteration and
// cross-language synonyms (safar/travel, rizq/sustenance, ...).
// The tables are immutable after process start; there is no runtime
// mutation path.
package expand

import (
	"github.com/hidayah-labs/duafinder/internal/textnorm"
)

// Expansion is a query prepared for scoring.
type Expansion struct {
	// Query is the full normalized query string, retained for
	// substring containment tests.
	Query string

	// Tokens are the base tokens after stop-word removal, in input
	// order.
	Tokens []string

	// Set is the union of the base tokens and all their aliases,
	// used for per-token field hit tests.
	Set map[string]struct{}
}

// Empty reports whether the expansion carries nothing to match on.
func (e Expansion) Empty() bool {
	return e.Query == "" || len(e.Set) == 0
}

// Contains reports whether token is part of the expanded set.
func (e Expansion) Contains(token string) bool {
	_, ok := e.Set[token]
	return ok
}

// Expand normalizes raw, removes stop words and applies alias
// expansion. A query consisting only of stop words falls back to its
// unfiltered token list so it does not become unsearchable.
func Expand(raw string) Expansion {
	query := textnorm.Normalize(raw)
	all := textnorm.Tokenize(query)

	tokens := make([]string, 0, len(all))
	for _, tok := range all {
		if _, stop := stopWords[tok]; !stop {
			tokens = append(tokens, tok)
		}
	}
	if len(tokens) == 0 {
		tokens = all
	}

	set := make(map[string]struct{}, len(tokens)*2)
	for _, tok := range tokens {
		set[tok] = struct{}{}
		for _, alias := range aliases[tok] {
			if n := textnorm.Normalize(alias); n != "" {
				set[n] = struct{}{}
			}
		}
	}

	return Expansion{Query: query, Tokens: tokens, Set: set}
}
