// Package timeouts defines shared timeout constants used across the world
// server. Centralizing these values prevents drift between the game listener
// and the admin surfaces.
package timeouts

import "time"

// ReadHeader limits how long the admin HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long servers wait for in-flight work during graceful
// shutdown.
const Shutdown = 5 * time.Second

// ClientIdle closes a game connection that has sent nothing for this long.
const ClientIdle = 5 * time.Minute

// Write caps a single flush of queued frames to a client socket.
const Write = 10 * time.Second

// JournalFlush caps one batch write to the dialog journal.
const JournalFlush = 2 * time.Second
