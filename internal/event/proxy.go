package event

// Proxy forwards the listed events from this bus to target: whenever one of
// the names is emitted here, the same (name, data) pair is re-emitted on the
// target bus. The returned Disposer removes every underlying subscription as
// one unit.
//
// Proxying two buses at each other for overlapping names will loop; guarding
// against that is the caller's responsibility.
func (b *Bus) Proxy(target *Bus, names ...string) Disposer {
	if target == nil || target == b {
		return func() {}
	}

	disposers := make([]Disposer, 0, len(names))
	for _, name := range names {
		forwarded := name
		disposers = append(disposers, b.On(forwarded, func(e *Event) bool {
			target.Emit(forwarded, e.Data)
			return true
		}))
	}

	return func() {
		for _, dispose := range disposers {
			dispose()
		}
	}
}
