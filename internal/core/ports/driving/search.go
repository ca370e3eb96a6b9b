package driving

import (
	"context"

	"github.com/hidayah-labs/duafinder/internal/core/domain"
)

// Searcher provides query matching to external actors.
type Searcher interface {
	// Search matches query against the candidate records from the
	// configured source and returns at most limit records, best
	// first. Malformed or empty queries return an empty list, never
	// an error; only a supplier failure is an error.
	Search(ctx context.Context, query string, limit int) ([]domain.Record, error)
}
