// Package textnorm canonicalizes free text before matching.
//
// All scripts are treated uniformly: Unicode compatibility
// decomposition, combining-mark removal, case folding, punctuation
// to spaces, whitespace collapse. There is no script-specific
// segmentation; tokens are space-separated words.
//
// All functions are pure and safe for concurrent use.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize canonicalizes s for comparison: NFKD decomposition,
// combining diacritics stripped, lower-cased, every run of
// non-letter/digit characters collapsed to a single space, and the
// result trimmed. Empty input yields "". Normalize is idempotent.
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	// The transform chain carries internal buffers, so build it per
	// call rather than sharing one across goroutines.
	decompose := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	stripped, _, err := transform.String(decompose, s)
	if err != nil {
		// Transform failures leave the input usable as-is; fall back
		// to the raw string rather than dropping the query.
		stripped = s
	}

	stripped = strings.ToLower(stripped)

	var b strings.Builder
	b.Grow(len(stripped))
	pendingSpace := false
	for _, r := range stripped {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r)
		} else {
			pendingSpace = true
		}
	}

	return b.String()
}

// Tokenize normalizes s and splits it into words.
// Empty input yields an empty slice.
func Tokenize(s string) []string {
	return strings.Fields(Normalize(s))
}
