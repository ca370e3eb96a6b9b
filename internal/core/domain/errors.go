package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSourceUnavailable indicates the record supplier failed.
	// Hosts should surface a retry message and leave the session in
	// its awaiting-query stage rather than tearing it down.
	ErrSourceUnavailable = errors.New("record source unavailable")

	// ErrNoSession indicates no live session exists for the key.
	// Expired sessions report this too; expiry is not an error the
	// user ever sees distinctly.
	ErrNoSession = errors.New("no active session")
)
