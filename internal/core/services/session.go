package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hidayah-labs/duafinder/internal/core/domain"
	"github.com/hidayah-labs/duafinder/internal/core/ports/driven"
	"github.com/hidayah-labs/duafinder/internal/core/ports/driving"
	"github.com/hidayah-labs/duafinder/internal/logger"
)

// Ensure SessionService implements the interface.
var _ driving.SessionManager = (*SessionService)(nil)

// SessionService owns all multi-turn query state. Sessions live in a
// SessionStore and expire after domain.SessionTTL; eviction happens
// lazily on read, never in a background sweep.
type SessionService struct {
	store driven.SessionStore
	now   func() time.Time
}

// NewSessionService creates a session service over the given store.
func NewSessionService(store driven.SessionStore) *SessionService {
	return &SessionService{
		store: store,
		now:   time.Now,
	}
}

// SetClock overrides the time source. Useful for testing expiry.
func (s *SessionService) SetClock(now func() time.Time) {
	s.now = now
}

// Begin unconditionally creates or replaces the session for the key
// in the awaiting-query stage. A conversation never holds more than
// one outstanding query.
func (s *SessionService) Begin(ctx context.Context, key domain.SessionKey) error {
	logger.Debug("Session begin: %v", key)
	return s.store.Put(ctx, domain.Session{
		Key:       key,
		Stage:     domain.StageAwaitingQuery,
		UpdatedAt: s.now(),
	})
}

// RecordOptions stores an ordered result set and moves the session to
// the awaiting-selection stage. Options beyond the presentation cap
// are dropped.
func (s *SessionService) RecordOptions(ctx context.Context, key domain.SessionKey, options []domain.Record) error {
	if len(options) > domain.MaxSessionOptions {
		options = options[:domain.MaxSessionOptions]
	}
	logger.Debug("Session options recorded: %v (%d options)", key, len(options))
	return s.store.Put(ctx, domain.Session{
		Key:       key,
		Stage:     domain.StageAwaitingSelection,
		Options:   options,
		UpdatedAt: s.now(),
	})
}

// Get returns the live session for the key. An expired session is
// deleted on this read and reported as absent.
func (s *SessionService) Get(ctx context.Context, key domain.SessionKey) (*domain.Session, error) {
	session, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if session.Expired(s.now()) {
		logger.Debug("Session expired, evicting: %v", key)
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("evict expired session: %w", delErr)
		}
		return nil, domain.ErrNoSession
	}
	return session, nil
}

// Resolve interprets reply as a 1-based option number. A valid number
// clears the session and returns the chosen record. An out-of-range
// or non-numeric reply leaves the session awaiting another attempt.
func (s *SessionService) Resolve(ctx context.Context, key domain.SessionKey, reply string) (*domain.Record, driving.SelectionOutcome, error) {
	session, err := s.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrNoSession) {
			return nil, driving.SelectionNone, nil
		}
		return nil, driving.SelectionNone, err
	}
	if session.Stage != domain.StageAwaitingSelection || len(session.Options) == 0 {
		return nil, driving.SelectionNone, nil
	}

	n, convErr := strconv.Atoi(strings.TrimSpace(reply))
	if convErr != nil || n < 1 || n > len(session.Options) {
		logger.Debug("Invalid selection %q for %d options", reply, len(session.Options))
		return nil, driving.SelectionInvalid, nil
	}

	record := session.Options[n-1]
	if err := s.store.Delete(ctx, key); err != nil {
		return nil, driving.SelectionNone, fmt.Errorf("clear resolved session: %w", err)
	}
	logger.Debug("Session resolved to record %s: %v", record.ID, key)
	return &record, driving.SelectionResolved, nil
}

// Clear unconditionally removes the session for the key.
func (s *SessionService) Clear(ctx context.Context, key domain.SessionKey) error {
	return s.store.Delete(ctx, key)
}
