package services

import (
	"sort"

	"github.com/hidayah-labs/duafinder/internal/core/domain"
)

// DefaultLimit is the result count when the caller does not specify one.
const DefaultLimit = 3

// rank orders matches by score descending with a deterministic
// tie-break on record ID, then truncates to limit. Scores do not
// cross this boundary; callers get records only.
func rank(matches []domain.Match, limit int) []domain.Record {
	if limit <= 0 {
		limit = DefaultLimit
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Record.ID < matches[j].Record.ID
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	records := make([]domain.Record, len(matches))
	for i, m := range matches {
		records[i] = m.Record
	}
	return records
}
