// Package corpus supplies candidate records from a TOML corpus file.
//
// FileSource reads and parses the file on every fetch. CachedSource
// wraps it with an in-memory cache that is invalidated by filesystem
// events and reloaded at a bounded rate, so a host serving many
// queries does not re-parse an unchanged corpus and a hot file cannot
// trigger a reload storm.
package corpus
