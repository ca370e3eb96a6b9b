package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/hidayah-labs/duafinder/internal/core/domain"
	"github.com/hidayah-labs/duafinder/internal/core/ports/driven"
)

// Ensure RecordStore implements the interfaces.
var (
	_ driven.RecordStore  = (*RecordStore)(nil)
	_ driven.RecordSource = (*RecordStore)(nil)
)

// RecordStore is an in-memory implementation of driven.RecordStore.
// It doubles as the candidate supplier for tests and for hosts that
// load their corpus once at startup.
type RecordStore struct {
	mu      sync.RWMutex
	records map[string]domain.Record
}

// NewRecordStore creates a new in-memory record store.
func NewRecordStore(records ...domain.Record) *RecordStore {
	s := &RecordStore{
		records: make(map[string]domain.Record, len(records)),
	}
	for _, rec := range records {
		s.records[rec.ID] = rec
	}
	return s
}

// Save stores or updates a record.
func (s *RecordStore) Save(_ context.Context, rec domain.Record) error {
	if rec.ID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.ID] = rec
	return nil
}

// Get retrieves a record by ID.
func (s *RecordStore) Get(_ context.Context, id string) (*domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &rec, nil
}

// Delete removes a record.
func (s *RecordStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, id)
	return nil
}

// Records returns all stored records ordered by ID, so repeated
// fetches present candidates in a stable order.
func (s *RecordStore) Records(_ context.Context) ([]domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Record, 0, len(s.records))
	for _, rec := range s.records {
		result = append(result, rec)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}
