package domain

import (
	"strings"
	"time"
)

// Record represents one searchable devotional text entry.
// All text fields are optional; an absent field is the empty string
// and contributes nothing to matching.
type Record struct {
	// ID is the unique identifier. It is also the deterministic
	// tie-break key when two records score equally.
	ID string

	// Title is the chapter or heading of the entry.
	Title string

	// Category groups entries (e.g. "Morning", "Evening", "Travel").
	Category string

	// Arabic is the primary-script text.
	Arabic string

	// English is the English translation.
	English string

	// Urdu is the Urdu translation.
	Urdu string

	// RomanUrdu is the romanized Urdu transliteration.
	RomanUrdu string

	// Keywords are curated search terms across all scripts.
	Keywords []string

	// Tags are free-form labels.
	Tags []string

	// SearchBlob is a precomputed aggregate of the searchable text,
	// maintained by whoever curates the corpus.
	SearchBlob string

	// CreatedAt is when the record was first stored.
	CreatedAt time.Time

	// UpdatedAt is when the record was last updated.
	UpdatedAt time.Time
}

// KeywordText joins the keyword and tag lists into a single string
// for substring and token matching.
func (r Record) KeywordText() string {
	parts := make([]string, 0, len(r.Keywords)+len(r.Tags))
	parts = append(parts, r.Keywords...)
	parts = append(parts, r.Tags...)
	return strings.Join(parts, " ")
}

// TitleCategoryText joins title and category for combined matching.
func (r Record) TitleCategoryText() string {
	return strings.TrimSpace(r.Title + " " + r.Category)
}

// BodyText joins the primary and secondary script texts.
func (r Record) BodyText() string {
	return joinNonEmpty(r.Arabic, r.English, r.Urdu, r.RomanUrdu)
}

// AllText is the raw concatenation of every text field.
func (r Record) AllText() string {
	return joinNonEmpty(
		r.Title,
		r.Category,
		r.Arabic,
		r.English,
		r.Urdu,
		r.RomanUrdu,
		r.KeywordText(),
		r.SearchBlob,
	)
}

func joinNonEmpty(parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}

// Match pairs a record with its computed relevance score and the
// ordering signals used for tie-breaking. Scores do not leave the
// ranking boundary; hosts only see the ordered records.
type Match struct {
	// Record is the matched entry.
	Record Record

	// Score is the relevance score from the primary or fallback stage.
	Score float64

	// Exact reports whether the full normalized query appeared as a
	// substring of any weighted field.
	Exact bool

	// Coverage is the fraction of expanded query tokens that matched
	// at least one field.
	Coverage float64
}
