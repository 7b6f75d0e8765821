// Package metrics defines the Prometheus collectors of the world server.
//
// A nil *World is valid and records nothing, so components can be built
// without a registry in tests.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Namespace prefixes every collector.
const Namespace = "world"

// World holds the world server collectors.
type World struct {
	packetsDecoded  *prometheus.CounterVec
	packetsEncoded  *prometheus.CounterVec
	malformedFrames prometheus.Counter
	dialogResets    *prometheus.CounterVec
	asyncSessions   prometheus.Gauge
	asyncRequests   *prometheus.CounterVec
	connections     prometheus.Gauge
	handleDuration  *prometheus.HistogramVec
}

// New registers the world collectors with reg.
func New(reg prometheus.Registerer) *World {
	factory := promauto.With(reg)
	return &World{
		packetsDecoded: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "packets_decoded_total",
			Help:      "Client frames decoded, by opcode",
		}, []string{"opcode"}),
		packetsEncoded: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "packets_encoded_total",
			Help:      "Server frames encoded, by opcode",
		}, []string{"opcode"}),
		malformedFrames: factory.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "malformed_frames_total",
			Help:      "Client frames dropped as malformed",
		}),
		dialogResets: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "dialog",
			Name:      "resets_total",
			Help:      "Dialog states reset, by error code",
		}, []string{"code"}),
		asyncSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: "dialog",
			Name:      "async_sessions",
			Help:      "Registered async dialog sessions",
		}),
		asyncRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "dialog",
			Name:      "async_requests_total",
			Help:      "Async dialog requests, by outcome",
		}, []string{"outcome"}),
		connections: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "connections",
			Help:      "Open client connections",
		}),
		handleDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "handle_duration_seconds",
			Help:      "Client packet handling duration",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1},
		}, []string{"opcode"}),
	}
}

// Handler serves the collectors gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

func opcodeLabel(op byte) string {
	return "0x" + strconv.FormatUint(uint64(op), 16)
}

func (w *World) PacketDecoded(op byte) {
	if w == nil {
		return
	}
	w.packetsDecoded.WithLabelValues(opcodeLabel(op)).Inc()
}

func (w *World) PacketEncoded(op byte) {
	if w == nil {
		return
	}
	w.packetsEncoded.WithLabelValues(opcodeLabel(op)).Inc()
}

func (w *World) MalformedFrame() {
	if w == nil {
		return
	}
	w.malformedFrames.Inc()
}

func (w *World) DialogReset(code string) {
	if w == nil {
		return
	}
	w.dialogResets.WithLabelValues(code).Inc()
}

// AsyncSessions sets the number of registered async sessions.
func (w *World) AsyncSessions(n int) {
	if w == nil {
		return
	}
	w.asyncSessions.Set(float64(n))
}

// AsyncRequest counts one async request outcome: shown, rejected, race or
// failed.
func (w *World) AsyncRequest(outcome string) {
	if w == nil {
		return
	}
	w.asyncRequests.WithLabelValues(outcome).Inc()
}

func (w *World) ConnectionOpened() {
	if w == nil {
		return
	}
	w.connections.Inc()
}

func (w *World) ConnectionClosed() {
	if w == nil {
		return
	}
	w.connections.Dec()
}

// ObserveHandle records how long handling one client frame took.
func (w *World) ObserveHandle(op byte, seconds float64) {
	if w == nil {
		return
	}
	w.handleDuration.WithLabelValues(opcodeLabel(op)).Observe(seconds)
}
