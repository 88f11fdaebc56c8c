package typing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/typetrain/internal/event"
	"github.com/dshills/typetrain/internal/event/events"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		typed   string
		total   int
		correct int
	}{
		{name: "exact match", target: "hello", typed: "hello", total: 5, correct: 5},
		{name: "one wrong", target: "hello", typed: "hallo", total: 5, correct: 4},
		{name: "short typed", target: "hello", typed: "he", total: 5, correct: 2},
		{name: "long typed", target: "he", typed: "hello", total: 2, correct: 2},
		{name: "nothing typed", target: "hello", typed: "", total: 5, correct: 0},
		{name: "multibyte", target: "日本語", typed: "日本誤", total: 3, correct: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, correct := score(tt.target, tt.typed)
			assert.Equal(t, tt.total, total)
			assert.Equal(t, tt.correct, correct)
		})
	}
}

func TestAccuracy(t *testing.T) {
	assert.Equal(t, float64(0), accuracy(0, 0))
	assert.Equal(t, float64(100), accuracy(4, 4))
	assert.Equal(t, float64(50), accuracy(4, 2))
}

func TestService_StartAndComplete(t *testing.T) {
	bus := event.New()
	svc := NewService(bus)

	started := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	clock := started
	svc.now = func() time.Time {
		defer func() { clock = clock.Add(30 * time.Second) }()
		return clock
	}

	var startPayload events.SessionStarted
	bus.On(events.TypingStarted, func(e *event.Event) bool {
		startPayload = e.Data.(events.SessionStarted)
		return true
	})
	var completed []events.TypingResult
	bus.On(events.TypingCompleted, func(e *event.Event) bool {
		completed = append(completed, e.Data.(events.TypingResult))
		return true
	})

	sess, err := svc.Start("u-1", "b-1", "golang")
	require.NoError(t, err)
	assert.Equal(t, sess.ID, startPayload.SessionID)
	assert.Equal(t, started, startPayload.StartedAt)

	result, err := svc.Complete(sess.ID, "golanG")
	require.NoError(t, err)
	assert.Equal(t, 6, result.TotalChars)
	assert.Equal(t, 5, result.CorrectChars)
	assert.InDelta(t, 83.33, result.Accuracy, 0.01)
	assert.Equal(t, 30*time.Second, result.Duration)

	require.Len(t, completed, 1)
	assert.Equal(t, result, completed[0])
}

func TestService_StartEmptyTarget(t *testing.T) {
	svc := NewService(event.New())

	_, err := svc.Start("u-1", "b-1", "")
	assert.ErrorIs(t, err, ErrEmptyTarget)
}

func TestService_CompleteOnce(t *testing.T) {
	svc := NewService(event.New())

	sess, err := svc.Start("u-1", "b-1", "abc")
	require.NoError(t, err)

	_, err = svc.Complete(sess.ID, "abc")
	require.NoError(t, err)

	_, err = svc.Complete(sess.ID, "abc")
	assert.ErrorIs(t, err, ErrSessionCompleted)
}

func TestService_CompleteUnknownSession(t *testing.T) {
	svc := NewService(event.New())

	_, err := svc.Complete("missing", "abc")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
