package driven

import (
	"context"

	"github.com/hidayah-labs/duafinder/internal/core/domain"
)

// SessionStore persists conversational session state.
//
// Implementations must serialize individual calls so no transition is
// lost when two messages from the same conversation race; no cross-key
// ordering is required. TTL handling is NOT the store's job - the
// session service evicts expired entries lazily on read.
type SessionStore interface {
	// Get retrieves the session for a key.
	// Returns domain.ErrNoSession when none exists.
	Get(ctx context.Context, key domain.SessionKey) (*domain.Session, error)

	// Put stores or replaces the session for its key.
	Put(ctx context.Context, session domain.Session) error

	// Delete removes the session for a key. Deleting a missing
	// session is not an error.
	Delete(ctx context.Context, key domain.SessionKey) error
}
