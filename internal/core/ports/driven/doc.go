// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - RecordSource: Supplies the current candidate record set
//   - RecordStore: Record persistence (SQLite or in-memory)
//   - SessionStore: Session persistence (in-memory by default)
//
// The core never learns how records are stored or how long a supplier
// caches them; staleness policy belongs to the adapter.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
