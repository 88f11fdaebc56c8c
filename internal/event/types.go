package event

// Priority determines listener execution order within a dispatch pass.
// Higher values execute first.
type Priority int

const (
	// PriorityCritical is for state-keeping listeners that must observe an
	// event before anything else reacts to it.
	PriorityCritical Priority = 200

	// PriorityHigh is for feature-module listeners on their own events.
	PriorityHigh Priority = 100

	// PriorityNormal is the default priority.
	PriorityNormal Priority = 0

	// PriorityLow is for observers (statistics, logging) that run last.
	PriorityLow Priority = -100
)

// String returns a human-readable priority name.
func (p Priority) String() string {
	switch {
	case p >= PriorityCritical:
		return "critical"
	case p >= PriorityHigh:
		return "high"
	case p >= PriorityNormal:
		return "normal"
	default:
		return "low"
	}
}

// Handler processes one event during a dispatch pass. The verdict matters
// only for cancellable emissions: returning false marks the emission
// cancelled. Handlers with no opinion return true.
//
// A panicking handler is isolated: the panic is logged and the pass continues
// with the next listener.
type Handler func(e *Event) bool

// Disposer removes the subscription it was returned for. It removes exactly
// that entry and is safe to call more than once; subsequent calls are no-ops.
type Disposer func()

// SubscribeOption configures a single subscription.
type SubscribeOption func(*subscribeConfig)

type subscribeConfig struct {
	priority Priority
}

// WithPriority sets the listener priority. Higher priorities run first;
// listeners sharing a priority run in registration order.
func WithPriority(p Priority) SubscribeOption {
	return func(c *subscribeConfig) {
		c.priority = p
	}
}

// ListenerInfo is a read-only view of one registered listener.
type ListenerInfo struct {
	// ID is the unique listener identity.
	ID string

	// Priority is the listener's dispatch priority.
	Priority Priority

	// Once reports whether the listener is removed after its first event.
	Once bool
}

// Statistics is a point-in-time snapshot of bus state plus running counters.
type Statistics struct {
	// EventNames is the number of distinct names with registered listeners.
	EventNames int

	// OnceListeners is the number of pending one-shot listeners.
	OnceListeners int

	// RegularListeners is the number of persistent listeners.
	RegularListeners int

	// Middleware is the number of installed middleware entries.
	Middleware int

	// Debug reports whether lifecycle logging is enabled.
	Debug bool

	// EventsEmitted is the total number of dispatch passes started.
	EventsEmitted uint64

	// HandlersInvoked is the total number of listener invocations.
	HandlersInvoked uint64

	// HandlerPanics is the number of listener invocations that panicked.
	HandlerPanics uint64
}
