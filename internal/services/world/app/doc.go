// Package server hosts the world server's client listener.
//
// Each accepted connection gets a reader goroutine, an ordered worker that
// runs its packet handlers, and a send loop that encrypts and coalesces
// outbound frames. The admin listener multiplexes gRPC health checks and the
// Prometheus /metrics endpoint on one port.
package server
