package event

// Middleware observes every emission on a bus. The hooks are optional; a nil
// hook is skipped.
type Middleware struct {
	// Before runs ahead of listener dispatch. Returning false vetoes the
	// emission, honored only when the emission was made Cancellable.
	Before func(name string, data any) bool

	// After runs once the pass completes, with the final record. Its return
	// is ignored; it runs even for vetoed or stopped passes.
	After func(name string, data any, e *Event)
}

// AddMiddleware appends mw to the pipeline. Middleware runs in the order it
// was added, for every emission, for the lifetime of the bus (or until
// removed).
func (b *Bus) AddMiddleware(mw *Middleware) {
	if mw == nil {
		return
	}
	b.mwMu.Lock()
	b.middleware = append(b.middleware, mw)
	b.mwMu.Unlock()
}

// RemoveMiddleware removes mw from the pipeline. Removing middleware that was
// never added is a no-op.
func (b *Bus) RemoveMiddleware(mw *Middleware) {
	b.mwMu.Lock()
	defer b.mwMu.Unlock()

	for i, existing := range b.middleware {
		if existing == mw {
			b.middleware = append(b.middleware[:i], b.middleware[i+1:]...)
			return
		}
	}
}

// middlewareSnapshot copies the pipeline so a pass is unaffected by
// concurrent Add/Remove calls.
func (b *Bus) middlewareSnapshot() []*Middleware {
	b.mwMu.RLock()
	defer b.mwMu.RUnlock()

	if len(b.middleware) == 0 {
		return nil
	}
	snap := make([]*Middleware, len(b.middleware))
	copy(snap, b.middleware)
	return snap
}
