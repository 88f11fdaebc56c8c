package event

import "runtime/debug"

// EmitOption configures a single emission.
type EmitOption func(*emitConfig)

type emitConfig struct {
	cancellable bool
}

// Cancellable lets before hooks and listeners cancel the emission: a hook
// returning false aborts the pass, a listener returning false marks the
// result cancelled without stopping delivery.
func Cancellable() EmitOption {
	return func(c *emitConfig) {
		c.cancellable = true
	}
}

// Emit dispatches one event synchronously in the caller's goroutine and
// reports whether the emission survived uncancelled. Emitting an empty name
// is a no-op that reports true.
func (b *Bus) Emit(name string, data any, opts ...EmitOption) bool {
	if name == "" {
		return true
	}

	var cfg emitConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return b.dispatch(newEvent(name, data), cfg)
}

// EmitAsync runs the same dispatch pass as Emit on its own goroutine.
// The returned channel is buffered and receives the result exactly once, so
// callers that do not care may drop it. Listener order within the pass is
// identical to the synchronous mode.
func (b *Bus) EmitAsync(name string, data any, opts ...EmitOption) <-chan bool {
	done := make(chan bool, 1)
	if name == "" {
		done <- true
		return done
	}

	var cfg emitConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	e := newEvent(name, data)
	go func() {
		done <- b.dispatch(e, cfg)
	}()
	return done
}

// dispatch runs one full pass: before hooks, listener snapshot, after hooks.
func (b *Bus) dispatch(e *Event, cfg emitConfig) bool {
	b.emitted.Add(1)

	mws := b.middlewareSnapshot()

	for _, mw := range mws {
		if mw.Before == nil {
			continue
		}
		if !b.runBefore(mw, e) && cfg.cancellable {
			e.Cancel()
			if b.debug.Load() {
				b.logger.Debug("event: emit vetoed", "event", e.Name, "id", e.ID)
			}
			b.runAfter(mws, e)
			return false
		}
	}

	snap := b.registry.snapshot(e.Name)
	if b.debug.Load() {
		b.logger.Debug("event: emit",
			"event", e.Name,
			"id", e.ID,
			"listeners", len(snap),
			"cancellable", cfg.cancellable,
		)
	}

	for _, entry := range snap {
		if e.PropagationStopped() {
			break
		}
		if !b.invoke(entry, e) && cfg.cancellable {
			e.Cancel()
		}
	}

	b.runAfter(mws, e)
	return !e.IsCancelled()
}

// invoke runs one listener with panic isolation. A panic is logged with its
// stack and treated as a true verdict so dispatch continues unaffected.
func (b *Bus) invoke(entry *listenerEntry, e *Event) (verdict bool) {
	defer func() {
		if r := recover(); r != nil {
			verdict = true
			b.panics.Add(1)
			b.logger.Error("event: listener panic",
				"event", e.Name,
				"listener", entry.id,
				"panic", r,
				"stack", string(debug.Stack()),
			)
		}
	}()

	b.invoked.Add(1)
	return entry.handler(e)
}

// runBefore runs one before hook with the same isolation as listeners.
// A panicking hook neither vetoes nor aborts the pass.
func (b *Bus) runBefore(mw *Middleware, e *Event) (verdict bool) {
	defer func() {
		if r := recover(); r != nil {
			verdict = true
			b.logger.Error("event: before middleware panic",
				"event", e.Name,
				"panic", r,
				"stack", string(debug.Stack()),
			)
		}
	}()

	return mw.Before(e.Name, e.Data)
}

// runAfter runs every after hook with the final record. After hooks always
// run, including for vetoed and stopped passes.
func (b *Bus) runAfter(mws []*Middleware, e *Event) {
	for _, mw := range mws {
		if mw.After == nil {
			continue
		}
		func() {
			defer func() {
				if r := recover(); r != nil {
					b.logger.Error("event: after middleware panic",
						"event", e.Name,
						"panic", r,
						"stack", string(debug.Stack()),
					)
				}
			}()
			mw.After(e.Name, e.Data, e)
		}()
	}
}
