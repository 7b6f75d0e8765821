// Package sqlite provides the SQLite-backed dialog journal.
//
// The journal records async dialog lifecycle events and forced dialog
// resets. Writes are queued and applied in batches by a single writer
// goroutine, so dialog code never waits on the disk.
package sqlite
