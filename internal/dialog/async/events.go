package async

import (
	"time"

	"github.com/google/uuid"
)

// EventKind names a step in an async request's lifecycle.
type EventKind string

const (
	EventRequested EventKind = "requested"
	EventRejected  EventKind = "rejected"
	EventRace      EventKind = "race"
	EventShown     EventKind = "shown"
	EventFailed    EventKind = "failed"
	EventClosed    EventKind = "closed"
	EventCompleted EventKind = "completed"
	EventEnded     EventKind = "ended"
)

// Event is one journaled lifecycle step.
type Event struct {
	RequestID uuid.UUID
	Kind      EventKind
	InvokerID uint32
	InvokeeID uint32
	Sequence  string
	// ActorID is the side an EventClosed refers to.
	ActorID uint32
	Detail  string
	At      time.Time
}

// Recorder receives lifecycle events. Record must not block.
type Recorder interface {
	Record(Event)
}

type nopRecorder struct{}

func (nopRecorder) Record(Event) {}
