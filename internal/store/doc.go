// Package store provides SQLite-backed conversion history.
//
// Each run of the converter may be recorded as a Conversion: the input and
// output paths, SHA-256 digests of both texts, their sizes, and how many
// matches each rewrite rule made. Records are append-only.
//
// # Ordering
//
// Every record carries an autoincrement seq. Listings order by seq, never by
// recorded_at, so two conversions recorded in the same millisecond still list
// deterministically.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//
// Digests are computed by the caller with canon.Digest; rule-hit maps are
// stored as canonical JSON.
package store
