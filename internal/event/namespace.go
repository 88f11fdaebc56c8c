package event

import (
	"context"
	"time"
)

// NamespaceSeparator joins a namespace prefix to an event name.
const NamespaceSeparator = ":"

// Namespace is a name-prefixing facade over a bus. It holds no listener state
// of its own: Namespace("auth").On("login", h) registers on the parent bus
// under "auth:login". Facades are cheap and may be created freely.
type Namespace struct {
	bus    *Bus
	prefix string
}

// Namespace returns a facade that prefixes every event name with
// prefix + ":".
func (b *Bus) Namespace(prefix string) *Namespace {
	return &Namespace{bus: b, prefix: prefix}
}

// Namespace returns a nested facade, e.g. Namespace("app").Namespace("auth")
// addresses "app:auth:*".
func (n *Namespace) Namespace(prefix string) *Namespace {
	return &Namespace{bus: n.bus, prefix: n.qualify(prefix)}
}

// Prefix returns the facade's full prefix.
func (n *Namespace) Prefix() string {
	return n.prefix
}

func (n *Namespace) qualify(name string) string {
	return n.prefix + NamespaceSeparator + name
}

// On subscribes under the prefixed name.
func (n *Namespace) On(name string, h Handler, opts ...SubscribeOption) Disposer {
	return n.bus.On(n.qualify(name), h, opts...)
}

// Once subscribes for a single delivery under the prefixed name.
func (n *Namespace) Once(name string, h Handler, opts ...SubscribeOption) Disposer {
	return n.bus.Once(n.qualify(name), h, opts...)
}

// Emit dispatches under the prefixed name.
func (n *Namespace) Emit(name string, data any, opts ...EmitOption) bool {
	return n.bus.Emit(n.qualify(name), data, opts...)
}

// EmitAsync dispatches asynchronously under the prefixed name.
func (n *Namespace) EmitAsync(name string, data any, opts ...EmitOption) <-chan bool {
	return n.bus.EmitAsync(n.qualify(name), data, opts...)
}

// WaitFor waits for the prefixed name.
func (n *Namespace) WaitFor(ctx context.Context, name string, timeout time.Duration) (*Event, error) {
	return n.bus.WaitFor(ctx, n.qualify(name), timeout)
}

// HasListeners reports whether the prefixed name has listeners.
func (n *Namespace) HasListeners(name string) bool {
	return n.bus.HasListeners(n.qualify(name))
}
