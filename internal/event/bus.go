package event

import (
	"log/slog"
	"sync"
	"sync/atomic"
)

// Bus is an in-process publish/subscribe event bus. One instance is created
// at startup and passed to every module; the zero value is not usable.
//
// All methods are safe for concurrent use. Dispatch ordering guarantees are
// documented in the package comment.
type Bus struct {
	registry *registry

	mwMu       sync.RWMutex
	middleware []*Middleware

	logger *slog.Logger
	debug  atomic.Bool

	emitted atomic.Uint64
	invoked atomic.Uint64
	panics  atomic.Uint64
}

// Option configures a Bus.
type Option func(*Bus)

// WithLogger sets the diagnostic logger. Listener panics and, in debug mode,
// lifecycle events are reported here. Defaults to slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bus) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithDebug enables lifecycle logging from the start.
func WithDebug(enabled bool) Option {
	return func(b *Bus) {
		b.debug.Store(enabled)
	}
}

// New creates an event bus.
func New(opts ...Option) *Bus {
	b := &Bus{
		registry: newRegistry(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// On subscribes h to the named event until the returned Disposer is called.
// Registering the same handler twice yields two independent entries.
//
// A nil handler or empty name registers nothing; the returned Disposer is a
// no-op.
func (b *Bus) On(name string, h Handler, opts ...SubscribeOption) Disposer {
	return b.subscribe(name, h, false, opts)
}

// Once subscribes h for a single delivery. The entry is removed immediately
// before invocation, so re-entrant emission from within the handler cannot
// re-trigger it. Once listeners run ahead of all regular listeners for the
// same name, regardless of priority.
func (b *Bus) Once(name string, h Handler, opts ...SubscribeOption) Disposer {
	return b.subscribe(name, h, true, opts)
}

func (b *Bus) subscribe(name string, h Handler, once bool, opts []SubscribeOption) Disposer {
	if name == "" || h == nil {
		return func() {}
	}

	cfg := subscribeConfig{priority: PriorityNormal}
	for _, opt := range opts {
		opt(&cfg)
	}

	entry := b.registry.add(name, h, cfg.priority, once)
	if b.debug.Load() {
		b.logger.Debug("event: subscribe",
			"event", name,
			"listener", entry.id,
			"priority", cfg.priority,
			"once", once,
		)
	}

	return func() {
		if b.registry.remove(name, entry.id) && b.debug.Load() {
			b.logger.Debug("event: unsubscribe", "event", name, "listener", entry.id)
		}
	}
}

// RemoveAllListeners drops the listeners for the given names, or every
// listener on the bus when called with no arguments.
func (b *Bus) RemoveAllListeners(names ...string) {
	b.registry.removeAll(names...)
	if b.debug.Load() {
		if len(names) == 0 {
			b.logger.Debug("event: remove all listeners")
		} else {
			b.logger.Debug("event: remove all listeners", "events", names)
		}
	}
}

// HasListeners reports whether any listener is registered for the name.
func (b *Bus) HasListeners(name string) bool {
	return b.registry.has(name)
}

// Listeners returns a read-only snapshot of the listeners registered for the
// name, in dispatch order: once listeners first, then regular listeners.
func (b *Bus) Listeners(name string) []ListenerInfo {
	return b.registry.infos(name)
}

// EventNames returns the names with at least one registered listener, sorted.
func (b *Bus) EventNames() []string {
	return b.registry.names()
}

// SetDebugMode toggles structured lifecycle logging (subscribe, unsubscribe,
// emit) on the bus logger.
func (b *Bus) SetDebugMode(enabled bool) {
	b.debug.Store(enabled)
}

// Statistics returns a point-in-time snapshot of bus state.
func (b *Bus) Statistics() Statistics {
	names, once, regular := b.registry.counts()

	b.mwMu.RLock()
	mwCount := len(b.middleware)
	b.mwMu.RUnlock()

	return Statistics{
		EventNames:       names,
		OnceListeners:    once,
		RegularListeners: regular,
		Middleware:       mwCount,
		Debug:            b.debug.Load(),
		EventsEmitted:    b.emitted.Load(),
		HandlersInvoked:  b.invoked.Load(),
		HandlerPanics:    b.panics.Load(),
	}
}
