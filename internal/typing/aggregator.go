package typing

import (
	"sync"

	"github.com/dshills/typetrain/internal/event"
	"github.com/dshills/typetrain/internal/event/events"
)

// UserStats accumulates the results of a user's completed sessions.
type UserStats struct {
	// Sessions is the number of completed sessions.
	Sessions int

	// TotalChars is the sum of target lengths across sessions.
	TotalChars int

	// CorrectChars is the sum of correctly typed characters.
	CorrectChars int

	// AverageAccuracy is the mean per-session accuracy.
	AverageAccuracy float64

	// BestAccuracy is the highest per-session accuracy seen.
	BestAccuracy float64

	accuracySum float64
}

// Aggregator folds typing:completed events into per-user statistics. It
// subscribes at low priority so gameplay listeners observe results first.
type Aggregator struct {
	dispose event.Disposer

	mu    sync.Mutex
	stats map[string]UserStats
}

// NewAggregator subscribes an aggregator on the bus. Close releases the
// subscription.
func NewAggregator(bus *event.Bus) *Aggregator {
	a := &Aggregator{stats: make(map[string]UserStats)}
	a.dispose = bus.On(events.TypingCompleted, a.record, event.WithPriority(event.PriorityLow))
	return a
}

func (a *Aggregator) record(e *event.Event) bool {
	result, ok := e.Data.(events.TypingResult)
	if !ok {
		return true
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	stats := a.stats[result.UserID]
	stats.Sessions++
	stats.TotalChars += result.TotalChars
	stats.CorrectChars += result.CorrectChars
	stats.accuracySum += result.Accuracy
	stats.AverageAccuracy = stats.accuracySum / float64(stats.Sessions)
	if result.Accuracy > stats.BestAccuracy {
		stats.BestAccuracy = result.Accuracy
	}
	a.stats[result.UserID] = stats
	return true
}

// Stats returns the accumulated statistics for a user.
func (a *Aggregator) Stats(userID string) (UserStats, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	stats, ok := a.stats[userID]
	return stats, ok
}

// Close unsubscribes the aggregator from the bus.
func (a *Aggregator) Close() {
	a.dispose()
}
