package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMiddleware_BeforeAfterOrder(t *testing.T) {
	bus := New()

	var order []string
	bus.AddMiddleware(&Middleware{
		Before: func(name string, data any) bool { order = append(order, "before-1"); return true },
		After:  func(name string, data any, e *Event) { order = append(order, "after-1") },
	})
	bus.AddMiddleware(&Middleware{
		Before: func(name string, data any) bool { order = append(order, "before-2"); return true },
		After:  func(name string, data any, e *Event) { order = append(order, "after-2") },
	})
	bus.On("x", func(e *Event) bool { order = append(order, "listener"); return true })

	bus.Emit("x", nil)
	assert.Equal(t, []string{"before-1", "before-2", "listener", "after-1", "after-2"}, order)
}

func TestMiddleware_AfterReceivesNameAndData(t *testing.T) {
	bus := New()

	var gotName string
	var gotData any
	bus.AddMiddleware(&Middleware{After: func(name string, data any, e *Event) {
		gotName = name
		gotData = data
	}})

	bus.Emit("x", "payload")
	assert.Equal(t, "x", gotName)
	assert.Equal(t, "payload", gotData)
}

func TestMiddleware_AfterRunsWithoutListeners(t *testing.T) {
	bus := New()

	ran := false
	bus.AddMiddleware(&Middleware{After: func(name string, data any, e *Event) { ran = true }})

	assert.True(t, bus.Emit("x", nil))
	assert.True(t, ran)
}

func TestMiddleware_Remove(t *testing.T) {
	bus := New()

	calls := 0
	mw := &Middleware{Before: func(name string, data any) bool { calls++; return true }}
	bus.AddMiddleware(mw)

	bus.Emit("x", nil)
	bus.RemoveMiddleware(mw)
	bus.Emit("x", nil)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, bus.Statistics().Middleware)
}

func TestMiddleware_RemoveUnknownIsNoop(t *testing.T) {
	bus := New()

	bus.AddMiddleware(&Middleware{})
	bus.RemoveMiddleware(&Middleware{})
	bus.RemoveMiddleware(nil)

	assert.Equal(t, 1, bus.Statistics().Middleware)
}

func TestMiddleware_AddNilIsNoop(t *testing.T) {
	bus := New()
	bus.AddMiddleware(nil)
	assert.Equal(t, 0, bus.Statistics().Middleware)
}

func TestMiddleware_VetoStopsAtFirstFalse(t *testing.T) {
	bus := New()

	secondBeforeRan := false
	bus.AddMiddleware(&Middleware{Before: func(name string, data any) bool { return false }})
	bus.AddMiddleware(&Middleware{Before: func(name string, data any) bool { secondBeforeRan = true; return true }})

	assert.False(t, bus.Emit("x", nil, Cancellable()))
	assert.False(t, secondBeforeRan)
}
