package driven

import (
	"context"

	"github.com/hidayah-labs/duafinder/internal/core/domain"
)

// RecordSource supplies the candidate records a search runs against.
// Implementations may fetch remotely, read files or serve from cache;
// the core only requires a complete list or an error. A failure should
// wrap domain.ErrSourceUnavailable so hosts can distinguish it from
// normal empty results.
type RecordSource interface {
	// Records returns the current candidate set.
	Records(ctx context.Context) ([]domain.Record, error)
}

// RecordStore persists records.
type RecordStore interface {
	RecordSource

	// Save stores or updates a record.
	Save(ctx context.Context, rec domain.Record) error

	// Get retrieves a record by ID.
	Get(ctx context.Context, id string) (*domain.Record, error)

	// Delete removes a record.
	Delete(ctx context.Context, id string) error
}
