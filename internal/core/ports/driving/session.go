package driving

import (
	"context"

	"github.com/hidayah-labs/duafinder/internal/core/domain"
)

// SelectionOutcome classifies a numbered-reply resolution attempt.
type SelectionOutcome int

const (
	// SelectionResolved means the reply picked a stored option and the
	// session has been cleared.
	SelectionResolved SelectionOutcome = iota

	// SelectionInvalid means the reply was not a valid option number;
	// the session stays in its selection stage.
	SelectionInvalid

	// SelectionNone means no live session was awaiting a selection.
	SelectionNone
)

// SessionManager tracks per-conversation multi-turn query state.
type SessionManager interface {
	// Begin unconditionally creates or replaces the session for the
	// key in the awaiting-query stage.
	Begin(ctx context.Context, key domain.SessionKey) error

	// RecordOptions stores an ordered result set and moves the
	// session to the awaiting-selection stage.
	RecordOptions(ctx context.Context, key domain.SessionKey, options []domain.Record) error

	// Get returns the live session for the key, or
	// domain.ErrNoSession if absent or expired. Expired sessions are
	// evicted on this read; there is no background sweep.
	Get(ctx context.Context, key domain.SessionKey) (*domain.Session, error)

	// Resolve interprets reply as a 1-based option number against the
	// stored options. On success the session is cleared and the
	// chosen record returned.
	Resolve(ctx context.Context, key domain.SessionKey, reply string) (*domain.Record, SelectionOutcome, error)

	// Clear unconditionally removes the session for the key.
	Clear(ctx context.Context, key domain.SessionKey) error
}
