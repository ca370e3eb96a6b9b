// Package domain defines the core business entities for duafinder.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Record: A devotional text entry with multilingual fields
//   - Match: A record paired with its relevance score and ordering signals
//   - Session: Per-user multi-turn query state
//   - SessionKey: The (chat, user) identity a session is tracked under
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
