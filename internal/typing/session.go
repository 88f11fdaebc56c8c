// Package typing runs practice sessions. A session pins the target text at
// start, scores the typed text character by character on completion, and
// announces both transitions on the event bus. The Aggregator in this package
// listens for completions and keeps per-user accuracy statistics.
package typing

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/typetrain/internal/event"
	"github.com/dshills/typetrain/internal/event/events"
)

var (
	// ErrEmptyTarget is returned when a session is started with no target text.
	ErrEmptyTarget = errors.New("target text cannot be empty")

	// ErrSessionNotFound is returned when a session ID is unknown.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionCompleted is returned when a session is completed twice.
	ErrSessionCompleted = errors.New("session already completed")
)

// Session is one typing practice run against a study book question.
type Session struct {
	// ID identifies the session.
	ID string

	// UserID is the practicing user.
	UserID string

	// BookID is the study book being practiced.
	BookID string

	// Target is the text the user is asked to type.
	Target string

	// StartedAt is when the session began.
	StartedAt time.Time

	completed bool
}

// score compares typed against the target. Characters are compared
// position by position up to the length of the typed text; the total is
// always the target length, so missing characters count as wrong.
func score(target, typed string) (total, correct int) {
	targetRunes := []rune(target)
	typedRunes := []rune(typed)

	limit := len(typedRunes)
	if limit > len(targetRunes) {
		limit = len(targetRunes)
	}
	for i := 0; i < limit; i++ {
		if typedRunes[i] == targetRunes[i] {
			correct++
		}
	}
	return len(targetRunes), correct
}

// accuracy converts a score to a percentage. A zero-length target scores 0.
func accuracy(total, correct int) float64 {
	if total == 0 {
		return 0
	}
	return float64(correct) / float64(total) * 100
}

// Service manages typing sessions.
type Service struct {
	bus *event.Bus
	now func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewService creates the typing module on the given bus.
func NewService(bus *event.Bus) *Service {
	return &Service{
		bus:      bus,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// Start opens a session against the given target text and emits
// events.TypingStarted.
func (s *Service) Start(userID, bookID, target string) (*Session, error) {
	if target == "" {
		return nil, ErrEmptyTarget
	}

	sess := &Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		BookID:    bookID,
		Target:    target,
		StartedAt: s.now(),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	s.bus.Emit(events.TypingStarted, events.SessionStarted{
		SessionID: sess.ID,
		UserID:    sess.UserID,
		BookID:    sess.BookID,
		StartedAt: sess.StartedAt,
	})
	return sess, nil
}

// Complete scores the typed text against the session target, emits
// events.TypingCompleted, and returns the result. A session completes at
// most once; later calls return ErrSessionCompleted.
func (s *Service) Complete(sessionID, typed string) (events.TypingResult, error) {
	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return events.TypingResult{}, ErrSessionNotFound
	}
	if sess.completed {
		s.mu.Unlock()
		return events.TypingResult{}, ErrSessionCompleted
	}
	sess.completed = true
	s.mu.Unlock()

	total, correct := score(sess.Target, typed)
	result := events.TypingResult{
		SessionID:    sess.ID,
		UserID:       sess.UserID,
		BookID:       sess.BookID,
		TotalChars:   total,
		CorrectChars: correct,
		Accuracy:     accuracy(total, correct),
		Duration:     s.now().Sub(sess.StartedAt),
	}

	s.bus.Emit(events.TypingCompleted, result)
	return result, nil
}
