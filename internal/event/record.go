package event

import (
	"time"

	"github.com/google/uuid"
)

// timeNow is a variable to allow testing with fixed timestamps.
var timeNow = time.Now

// Event is the record carried through one dispatch pass. Its identity (ID,
// Name, Data, Timestamp) is fixed at creation; the delivery flags are set by
// listeners and middleware during the pass and discarded with it. Records are
// never reused across emissions.
//
// The flags are owned by the goroutine running the pass. Handlers must not
// retain the record past their own invocation.
type Event struct {
	// ID uniquely identifies this emission.
	ID string

	// Name is the event name this record was emitted under.
	Name string

	// Data is the opaque payload supplied to Emit.
	Data any

	// Timestamp is when the record was created.
	Timestamp time.Time

	cancelled bool
	stopped   bool
}

// newEvent creates a fresh record for one emission.
func newEvent(name string, data any) *Event {
	return &Event{
		ID:        uuid.NewString(),
		Name:      name,
		Data:      data,
		Timestamp: timeNow(),
	}
}

// Cancel marks the emission cancelled. Delivery to the remaining listeners
// continues; only the result reported by Emit changes.
func (e *Event) Cancel() {
	e.cancelled = true
}

// IsCancelled reports whether the emission has been marked cancelled.
func (e *Event) IsCancelled() bool {
	return e.cancelled
}

// StopPropagation prevents the remaining listeners of the current pass from
// running. After middleware still executes.
func (e *Event) StopPropagation() {
	e.stopped = true
}

// PropagationStopped reports whether a listener has stopped the pass.
func (e *Event) PropagationStopped() bool {
	return e.stopped
}
