package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/hidayah-labs/duafinder/internal/core/domain"
	"github.com/hidayah-labs/duafinder/internal/core/ports/driven"
	"github.com/hidayah-labs/duafinder/internal/core/ports/driving"
	"github.com/hidayah-labs/duafinder/internal/expand"
	"github.com/hidayah-labs/duafinder/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.Searcher = (*SearchService)(nil)

// SearchService matches queries against the candidate records
// supplied by a RecordSource. The service itself performs no I/O
// beyond that single fetch and holds no mutable state, so one
// instance serves concurrent requests.
type SearchService struct {
	source driven.RecordSource
}

// NewSearchService creates a search service over the given source.
func NewSearchService(source driven.RecordSource) *SearchService {
	return &SearchService{source: source}
}

// Search fetches the current candidate set and runs the matching
// pipeline. A supplier failure propagates wrapped in
// domain.ErrSourceUnavailable so hosts can offer a retry without
// touching session state; everything else is a normal empty result.
func (s *SearchService) Search(ctx context.Context, query string, limit int) ([]domain.Record, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", query)

	if s.source == nil {
		return nil, domain.ErrSourceUnavailable
	}

	records, err := s.source.Records(ctx)
	if err != nil {
		logger.Warn("Record source failed: %v", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
	}
	logger.Debug("Candidates: %d records", len(records))

	results := Match(query, records, limit)
	logger.Info("Final results: %d", len(results))
	return results, nil
}

// Match is the pure matching pipeline: normalize and expand the
// query, run the primary scorer, fall back to the relaxed matcher
// when the primary finds nothing, then rank and truncate. It never
// fails; malformed input yields an empty list.
func Match(query string, records []domain.Record, limit int) []domain.Record {
	if strings.TrimSpace(query) == "" || len(records) == 0 {
		return []domain.Record{}
	}

	q := expand.Expand(query)
	if q.Empty() {
		logger.Debug("Query normalized to nothing, returning no results")
		return []domain.Record{}
	}
	logger.Debug("Expanded query: %q -> %d tokens", q.Query, len(q.Set))

	matches := scorePrimary(records, q)
	logger.Debug("Primary scorer: %d candidates", len(matches))

	if len(matches) == 0 {
		matches = scoreFallback(records, q)
		logger.Debug("Fallback matcher: %d candidates", len(matches))
	}

	return rank(matches, limit)
}
