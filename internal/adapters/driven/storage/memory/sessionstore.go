package memory

import (
	"context"
	"sync"

	"github.com/hidayah-labs/duafinder/internal/core/domain"
	"github.com/hidayah-labs/duafinder/internal/core/ports/driven"
)

// Ensure SessionStore implements the interface.
var _ driven.SessionStore = (*SessionStore)(nil)

// SessionStore is an in-memory implementation of driven.SessionStore.
// A single RWMutex serializes calls, which satisfies the per-key
// ordering the session service needs; state does not survive process
// restarts, which matches the session lifecycle contract.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[domain.SessionKey]domain.Session
}

// NewSessionStore creates a new in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[domain.SessionKey]domain.Session),
	}
}

// Get retrieves the session for a key.
func (s *SessionStore) Get(_ context.Context, key domain.SessionKey) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[key]
	if !ok {
		return nil, domain.ErrNoSession
	}
	return &session, nil
}

// Put stores or replaces the session for its key.
func (s *SessionStore) Put(_ context.Context, session domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.Key] = session
	return nil
}

// Delete removes the session for a key.
func (s *SessionStore) Delete(_ context.Context, key domain.SessionKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, key)
	return nil
}

// Len returns the number of stored sessions. Used by tests.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
