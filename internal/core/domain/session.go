package domain

import "time"

// SessionTTL is how long an untouched session stays alive.
// A session older than this is treated as absent and lazily
// evicted on the next read.
const SessionTTL = 15 * time.Minute

// MaxSessionOptions caps how many records a selection prompt offers.
const MaxSessionOptions = 3

// SessionStage identifies where a conversation is in the query flow.
type SessionStage string

const (
	// StageAwaitingQuery means the user has started a search and the
	// next message is treated as the query text.
	StageAwaitingQuery SessionStage = "awaiting_query"

	// StageAwaitingSelection means results were presented and the next
	// message is expected to be a numbered choice.
	StageAwaitingSelection SessionStage = "awaiting_selection"
)

// SessionKey identifies the conversation a session belongs to.
// UserID falls back to ChatID for chats without a distinct user
// (e.g. private chats where both are the same identifier).
type SessionKey struct {
	ChatID string
	UserID string
}

// NewSessionKey builds a key, substituting chatID when userID is empty.
func NewSessionKey(chatID, userID string) SessionKey {
	if userID == "" {
		userID = chatID
	}
	return SessionKey{ChatID: chatID, UserID: userID}
}

// Session tracks one in-progress multi-turn search.
// It is exclusively owned by the session service; no other
// component mutates it.
type Session struct {
	// Key identifies the conversation.
	Key SessionKey

	// Stage is the current conversational state.
	Stage SessionStage

	// Options holds the last presented result set, ordered as shown.
	// Only meaningful in StageAwaitingSelection.
	Options []Record

	// UpdatedAt is the last transition time, used for TTL eviction.
	UpdatedAt time.Time
}

// Expired reports whether the session has outlived the TTL at the
// given instant.
func (s Session) Expired(now time.Time) bool {
	return now.Sub(s.UpdatedAt) > SessionTTL
}
