package event

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietBus(opts ...Option) *Bus {
	opts = append([]Option{WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))}, opts...)
	return New(opts...)
}

func TestEmit_CancellableListenerVerdict(t *testing.T) {
	bus := New()

	calls := 0
	bus.On("x", func(e *Event) bool { calls++; return false }, WithPriority(1))

	result := bus.Emit("x", nil, Cancellable())
	assert.False(t, result)
	assert.Equal(t, 1, calls, "listener invoked exactly once")
}

func TestEmit_FalseVerdictIgnoredWithoutCancellable(t *testing.T) {
	bus := New()

	bus.On("x", func(e *Event) bool { return false })
	assert.True(t, bus.Emit("x", nil))
}

func TestEmit_CancelDoesNotStopDelivery(t *testing.T) {
	bus := New()

	var order []string
	bus.On("x", func(e *Event) bool { order = append(order, "veto"); return false }, WithPriority(2))
	bus.On("x", func(e *Event) bool { order = append(order, "after-veto"); return true }, WithPriority(1))

	result := bus.Emit("x", nil, Cancellable())
	assert.False(t, result)
	assert.Equal(t, []string{"veto", "after-veto"}, order)
}

func TestEmit_ExplicitCancel(t *testing.T) {
	bus := New()

	bus.On("x", func(e *Event) bool { e.Cancel(); return true })
	assert.False(t, bus.Emit("x", nil))
}

func TestEmit_StopPropagation(t *testing.T) {
	bus := New()

	var order []string
	afterRan := false
	bus.AddMiddleware(&Middleware{After: func(name string, data any, e *Event) {
		afterRan = true
		assert.True(t, e.PropagationStopped())
	}})

	bus.On("x", func(e *Event) bool { order = append(order, "first"); e.StopPropagation(); return true }, WithPriority(2))
	bus.On("x", func(e *Event) bool { order = append(order, "second"); return true }, WithPriority(1))

	result := bus.Emit("x", nil)
	assert.True(t, result, "stopping propagation does not cancel")
	assert.Equal(t, []string{"first"}, order)
	assert.True(t, afterRan, "after middleware runs despite stopPropagation")
}

func TestEmit_StopPropagationPlusCancel(t *testing.T) {
	bus := New()

	secondRan := false
	bus.On("x", func(e *Event) bool { e.StopPropagation(); return false }, WithPriority(2))
	bus.On("x", func(e *Event) bool { secondRan = true; return true }, WithPriority(1))

	result := bus.Emit("x", nil, Cancellable())
	assert.False(t, result)
	assert.False(t, secondRan)
}

func TestEmit_BeforeHookVeto(t *testing.T) {
	bus := New()

	listenerRan := false
	var afterRecord *Event
	bus.AddMiddleware(&Middleware{
		Before: func(name string, data any) bool { return false },
		After:  func(name string, data any, e *Event) { afterRecord = e },
	})
	bus.On("x", func(e *Event) bool { listenerRan = true; return true })

	result := bus.Emit("x", "payload", Cancellable())
	assert.False(t, result)
	assert.False(t, listenerRan, "veto prevents all listener invocation")
	require.NotNil(t, afterRecord, "after middleware still runs on veto")
	assert.True(t, afterRecord.IsCancelled())
}

func TestEmit_BeforeHookVetoIgnoredWithoutCancellable(t *testing.T) {
	bus := New()

	listenerRan := false
	bus.AddMiddleware(&Middleware{Before: func(name string, data any) bool { return false }})
	bus.On("x", func(e *Event) bool { listenerRan = true; return true })

	assert.True(t, bus.Emit("x", nil))
	assert.True(t, listenerRan)
}

func TestEmit_ListenerPanicIsolated(t *testing.T) {
	bus := quietBus()

	var order []string
	bus.On("x", func(e *Event) bool { order = append(order, "first"); panic("boom") }, WithPriority(2))
	bus.On("x", func(e *Event) bool { order = append(order, "second"); return true }, WithPriority(1))

	result := bus.Emit("x", nil, Cancellable())
	assert.True(t, result, "a panic is not a cancellation vote")
	assert.Equal(t, []string{"first", "second"}, order)
	assert.Equal(t, uint64(1), bus.Statistics().HandlerPanics)
}

func TestEmit_MiddlewarePanicIsolated(t *testing.T) {
	bus := quietBus()

	listenerRan := false
	afterRan := false
	bus.AddMiddleware(&Middleware{
		Before: func(name string, data any) bool { panic("before boom") },
		After:  func(name string, data any, e *Event) { panic("after boom") },
	})
	bus.AddMiddleware(&Middleware{
		After: func(name string, data any, e *Event) { afterRan = true },
	})
	bus.On("x", func(e *Event) bool { listenerRan = true; return true })

	result := bus.Emit("x", nil, Cancellable())
	assert.True(t, result, "a panicking before hook is not a veto")
	assert.True(t, listenerRan)
	assert.True(t, afterRan, "later after hooks run despite an earlier panic")
}

func TestEmit_RecordFields(t *testing.T) {
	bus := New()

	var seen *Event
	bus.On("x", func(e *Event) bool { seen = e; return true })

	bus.Emit("x", 42)
	require.NotNil(t, seen)
	assert.Equal(t, "x", seen.Name)
	assert.Equal(t, 42, seen.Data)
	assert.NotEmpty(t, seen.ID)
	assert.False(t, seen.Timestamp.IsZero())
}

func TestEmit_FreshRecordPerEmission(t *testing.T) {
	bus := New()

	var ids []string
	bus.On("x", func(e *Event) bool { ids = append(ids, e.ID); return true })

	bus.Emit("x", nil)
	bus.Emit("x", nil)
	require.Len(t, ids, 2)
	assert.NotEqual(t, ids[0], ids[1])
}

func TestEmitAsync_Result(t *testing.T) {
	bus := New()

	var order []string
	bus.On("x", func(e *Event) bool { order = append(order, "b"); return true }, WithPriority(3))
	bus.On("x", func(e *Event) bool { order = append(order, "c"); return false }, WithPriority(2))
	bus.On("x", func(e *Event) bool { order = append(order, "a"); return true }, WithPriority(1))

	result := <-bus.EmitAsync("x", nil, Cancellable())
	assert.False(t, result)
	assert.Equal(t, []string{"b", "c", "a"}, order)
}

func TestEmitAsync_EmptyName(t *testing.T) {
	bus := New()
	assert.True(t, <-bus.EmitAsync("", nil))
}

func TestEmitAsync_ConcurrentEmissionsAreIsolated(t *testing.T) {
	bus := New()

	const emissions = 50
	results := make(chan bool, emissions)
	bus.On("x", func(e *Event) bool { return e.Data.(int)%2 == 0 })

	var chans []<-chan bool
	for i := 0; i < emissions; i++ {
		chans = append(chans, bus.EmitAsync("x", i, Cancellable()))
	}
	for _, ch := range chans {
		results <- <-ch
	}
	close(results)

	cancelled := 0
	for ok := range results {
		if !ok {
			cancelled++
		}
	}
	assert.Equal(t, emissions/2, cancelled, "each pass owns its own record")
}
