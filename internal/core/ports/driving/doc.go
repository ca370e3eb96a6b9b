// Package driving defines the interfaces that hosts call IN to the core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// A host (a chat bot dispatcher, the CLI, a test harness) depends on
// these interfaces; core services implement them.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or service package
package driving
