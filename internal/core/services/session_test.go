package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hidayah-labs/duafinder/internal/adapters/driven/storage/memory"
	"github.com/hidayah-labs/duafinder/internal/core/domain"
	"github.com/hidayah-labs/duafinder/internal/core/ports/driving"
)

func setupSessionService(t *testing.T) (*SessionService, *memory.SessionStore) {
	t.Helper()
	store := memory.NewSessionStore()
	return NewSessionService(store), store
}

func sessionKey() domain.SessionKey {
	return domain.NewSessionKey("chat-1", "user-1")
}

func sessionOptions() []domain.Record {
	return []domain.Record{
		{ID: "morning-01", Title: "Upon waking"},
		{ID: "morning-02", Title: "Leaving the house"},
	}
}

func TestSessionService_BeginAndGet(t *testing.T) {
	service, _ := setupSessionService(t)
	ctx := context.Background()

	require.NoError(t, service.Begin(ctx, sessionKey()))

	session, err := service.Get(ctx, sessionKey())
	require.NoError(t, err)
	assert.Equal(t, domain.StageAwaitingQuery, session.Stage)
	assert.Empty(t, session.Options)
}

func TestSessionService_Get_NoSession(t *testing.T) {
	service, _ := setupSessionService(t)

	_, err := service.Get(context.Background(), sessionKey())

	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestSessionService_Begin_ReplacesExisting(t *testing.T) {
	service, _ := setupSessionService(t)
	ctx := context.Background()

	require.NoError(t, service.Begin(ctx, sessionKey()))
	require.NoError(t, service.RecordOptions(ctx, sessionKey(), sessionOptions()))
	require.NoError(t, service.Begin(ctx, sessionKey()))

	session, err := service.Get(ctx, sessionKey())
	require.NoError(t, err)
	assert.Equal(t, domain.StageAwaitingQuery, session.Stage)
	assert.Empty(t, session.Options)
}

func TestSessionService_RecordOptions(t *testing.T) {
	service, _ := setupSessionService(t)
	ctx := context.Background()

	require.NoError(t, service.RecordOptions(ctx, sessionKey(), sessionOptions()))

	session, err := service.Get(ctx, sessionKey())
	require.NoError(t, err)
	assert.Equal(t, domain.StageAwaitingSelection, session.Stage)
	require.Len(t, session.Options, 2)
	assert.Equal(t, "morning-01", session.Options[0].ID)
}

func TestSessionService_RecordOptions_CapsAtMax(t *testing.T) {
	service, _ := setupSessionService(t)
	ctx := context.Background()

	many := []domain.Record{
		{ID: "1"}, {ID: "2"}, {ID: "3"}, {ID: "4"}, {ID: "5"},
	}
	require.NoError(t, service.RecordOptions(ctx, sessionKey(), many))

	session, err := service.Get(ctx, sessionKey())
	require.NoError(t, err)
	assert.Len(t, session.Options, domain.MaxSessionOptions)
	assert.Equal(t, "1", session.Options[0].ID)
}

func TestSessionService_Resolve_ValidSelection(t *testing.T) {
	service, store := setupSessionService(t)
	ctx := context.Background()

	require.NoError(t, service.RecordOptions(ctx, sessionKey(), sessionOptions()))

	record, outcome, err := service.Resolve(ctx, sessionKey(), "2")

	require.NoError(t, err)
	assert.Equal(t, driving.SelectionResolved, outcome)
	require.NotNil(t, record)
	assert.Equal(t, "morning-02", record.ID)

	// The session is gone once the choice is made.
	assert.Equal(t, 0, store.Len())
}

func TestSessionService_Resolve_WhitespaceTolerated(t *testing.T) {
	service, _ := setupSessionService(t)
	ctx := context.Background()

	require.NoError(t, service.RecordOptions(ctx, sessionKey(), sessionOptions()))

	record, outcome, err := service.Resolve(ctx, sessionKey(), "  1  ")

	require.NoError(t, err)
	assert.Equal(t, driving.SelectionResolved, outcome)
	require.NotNil(t, record)
	assert.Equal(t, "morning-01", record.ID)
}

func TestSessionService_Resolve_OutOfRange(t *testing.T) {
	service, _ := setupSessionService(t)
	ctx := context.Background()

	require.NoError(t, service.RecordOptions(ctx, sessionKey(), sessionOptions()))

	record, outcome, err := service.Resolve(ctx, sessionKey(), "5")

	require.NoError(t, err)
	assert.Equal(t, driving.SelectionInvalid, outcome)
	assert.Nil(t, record)

	// An invalid reply keeps the selection open for another attempt.
	session, err := service.Get(ctx, sessionKey())
	require.NoError(t, err)
	assert.Equal(t, domain.StageAwaitingSelection, session.Stage)
}

func TestSessionService_Resolve_NonNumeric(t *testing.T) {
	service, _ := setupSessionService(t)
	ctx := context.Background()

	require.NoError(t, service.RecordOptions(ctx, sessionKey(), sessionOptions()))

	record, outcome, err := service.Resolve(ctx, sessionKey(), "the first one")

	require.NoError(t, err)
	assert.Equal(t, driving.SelectionInvalid, outcome)
	assert.Nil(t, record)
}

func TestSessionService_Resolve_NoSession(t *testing.T) {
	service, _ := setupSessionService(t)

	record, outcome, err := service.Resolve(context.Background(), sessionKey(), "1")

	require.NoError(t, err)
	assert.Equal(t, driving.SelectionNone, outcome)
	assert.Nil(t, record)
}

func TestSessionService_Resolve_AwaitingQueryStage(t *testing.T) {
	service, _ := setupSessionService(t)
	ctx := context.Background()

	// A session with no presented options has nothing to resolve.
	require.NoError(t, service.Begin(ctx, sessionKey()))

	record, outcome, err := service.Resolve(ctx, sessionKey(), "1")

	require.NoError(t, err)
	assert.Equal(t, driving.SelectionNone, outcome)
	assert.Nil(t, record)
}

func TestSessionService_Expiry(t *testing.T) {
	service, store := setupSessionService(t)
	ctx := context.Background()

	start := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	current := start
	service.SetClock(func() time.Time { return current })

	require.NoError(t, service.RecordOptions(ctx, sessionKey(), sessionOptions()))

	// Just inside the TTL the session is still live.
	current = start.Add(domain.SessionTTL)
	_, err := service.Get(ctx, sessionKey())
	require.NoError(t, err)

	// One tick past the TTL it is evicted on read.
	current = start.Add(domain.SessionTTL + time.Second)
	_, err = service.Get(ctx, sessionKey())
	assert.ErrorIs(t, err, domain.ErrNoSession)
	assert.Equal(t, 0, store.Len())
}

func TestSessionService_Resolve_ExpiredSession(t *testing.T) {
	service, _ := setupSessionService(t)
	ctx := context.Background()

	start := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	current := start
	service.SetClock(func() time.Time { return current })

	require.NoError(t, service.RecordOptions(ctx, sessionKey(), sessionOptions()))

	current = start.Add(domain.SessionTTL + time.Minute)
	record, outcome, err := service.Resolve(ctx, sessionKey(), "1")

	require.NoError(t, err)
	assert.Equal(t, driving.SelectionNone, outcome)
	assert.Nil(t, record)
}

func TestSessionService_BeginAfterExpiry(t *testing.T) {
	service, _ := setupSessionService(t)
	ctx := context.Background()

	start := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	current := start
	service.SetClock(func() time.Time { return current })

	require.NoError(t, service.RecordOptions(ctx, sessionKey(), sessionOptions()))

	current = start.Add(time.Hour)
	require.NoError(t, service.Begin(ctx, sessionKey()))

	session, err := service.Get(ctx, sessionKey())
	require.NoError(t, err)
	assert.Equal(t, domain.StageAwaitingQuery, session.Stage)
}

func TestSessionService_Clear(t *testing.T) {
	service, store := setupSessionService(t)
	ctx := context.Background()

	require.NoError(t, service.Begin(ctx, sessionKey()))
	require.NoError(t, service.Clear(ctx, sessionKey()))

	assert.Equal(t, 0, store.Len())
	_, err := service.Get(ctx, sessionKey())
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestSessionService_KeysIsolateConversations(t *testing.T) {
	service, _ := setupSessionService(t)
	ctx := context.Background()

	otherKey := domain.NewSessionKey("chat-2", "user-2")
	require.NoError(t, service.RecordOptions(ctx, sessionKey(), sessionOptions()))
	require.NoError(t, service.Begin(ctx, otherKey))

	mine, err := service.Get(ctx, sessionKey())
	require.NoError(t, err)
	assert.Equal(t, domain.StageAwaitingSelection, mine.Stage)

	theirs, err := service.Get(ctx, otherKey)
	require.NoError(t, err)
	assert.Equal(t, domain.StageAwaitingQuery, theirs.Stage)
}
