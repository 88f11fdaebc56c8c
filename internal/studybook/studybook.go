// Package studybook manages the texts users practice against. Storage sits
// behind the Repository interface; request-level validation is the caller's
// concern. Every mutation is announced on the event bus.
package studybook

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when no study book has the given ID.
	ErrNotFound = errors.New("study book not found")

	// ErrEmptyLanguage is returned when a study book has no language.
	ErrEmptyLanguage = errors.New("language cannot be empty")

	// ErrEmptyQuestion is returned when a study book has no question text.
	ErrEmptyQuestion = errors.New("question cannot be empty")
)

// StudyBook is one practice text. A book with an empty UserID is a built-in
// system problem.
type StudyBook struct {
	ID          string
	UserID      string
	Language    string
	Question    string
	Explanation string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Repository stores study books. Implementations are external to this
// module; MemoryRepository serves tests and the demo wiring.
type Repository interface {
	Save(book StudyBook) error
	FindByID(id string) (StudyBook, error)
	FindByUser(userID string) ([]StudyBook, error)
	Delete(id string) error
}
