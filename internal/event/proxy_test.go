package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProxy_ForwardsListedEvents(t *testing.T) {
	source := New()
	target := New()

	var got any
	target.On("e1", func(e *Event) bool { got = e.Data; return true })

	source.Proxy(target, "e1")
	source.Emit("e1", "x")
	assert.Equal(t, "x", got)
}

func TestProxy_IgnoresUnlistedEvents(t *testing.T) {
	source := New()
	target := New()

	called := false
	target.On("e2", func(e *Event) bool { called = true; return true })

	source.Proxy(target, "e1")
	source.Emit("e2", nil)
	assert.False(t, called)
}

func TestProxy_DisposerRemovesAllBindings(t *testing.T) {
	source := New()
	target := New()

	calls := 0
	target.On("e1", func(e *Event) bool { calls++; return true })
	target.On("e2", func(e *Event) bool { calls++; return true })

	dispose := source.Proxy(target, "e1", "e2")
	require.True(t, source.HasListeners("e1"))
	require.True(t, source.HasListeners("e2"))

	dispose()
	assert.False(t, source.HasListeners("e1"))
	assert.False(t, source.HasListeners("e2"))

	source.Emit("e1", nil)
	source.Emit("e2", nil)
	assert.Equal(t, 0, calls)
}

func TestProxy_TargetGetsFreshRecord(t *testing.T) {
	source := New()
	target := New()

	var sourceID, targetID string
	source.On("e1", func(e *Event) bool { sourceID = e.ID; return true }, WithPriority(PriorityHigh))
	target.On("e1", func(e *Event) bool { targetID = e.ID; return true })

	source.Proxy(target, "e1")
	source.Emit("e1", "payload")

	require.NotEmpty(t, sourceID)
	require.NotEmpty(t, targetID)
	assert.NotEqual(t, sourceID, targetID, "re-emission constructs its own record")
}

func TestProxy_SelfAndNilTargetsAreNoops(t *testing.T) {
	bus := New()

	dispose := bus.Proxy(bus, "e1")
	dispose()
	dispose = bus.Proxy(nil, "e1")
	dispose()

	assert.False(t, bus.HasListeners("e1"))
}
