package events

import "time"

// TypingPrefix is the namespace prefix for typing practice events.
const TypingPrefix = "typing"

// Typing practice event names.
const (
	// TypingStarted is emitted when a practice session begins.
	TypingStarted = "typing:started"

	// TypingCompleted is emitted when a practice session finishes with a
	// scored result.
	TypingCompleted = "typing:completed"
)

// SessionStarted is the payload for TypingStarted.
type SessionStarted struct {
	// SessionID identifies the practice session.
	SessionID string

	// UserID is the practicing user.
	UserID string

	// BookID is the study book being practiced.
	BookID string

	// StartedAt is when the session began.
	StartedAt time.Time
}

// TypingResult is the payload for TypingCompleted.
type TypingResult struct {
	// SessionID identifies the practice session.
	SessionID string

	// UserID is the practicing user.
	UserID string

	// BookID is the study book that was practiced.
	BookID string

	// TotalChars is the number of characters in the target text.
	TotalChars int

	// CorrectChars is the number of correctly typed characters.
	CorrectChars int

	// Accuracy is CorrectChars over TotalChars as a percentage.
	Accuracy float64

	// Duration is how long the session took.
	Duration time.Duration
}
