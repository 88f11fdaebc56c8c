package events

// StudyBookPrefix is the namespace prefix for study book events.
const StudyBookPrefix = "studybook"

// Study book event names.
const (
	// StudyBookCreated is emitted after a study book is added.
	StudyBookCreated = "studybook:created"

	// StudyBookUpdated is emitted after a study book's content changes.
	StudyBookUpdated = "studybook:updated"

	// StudyBookDeleted is emitted after a study book is removed.
	StudyBookDeleted = "studybook:deleted"
)

// StudyBookChange is the payload for the StudyBookCreated, StudyBookUpdated,
// and StudyBookDeleted events.
type StudyBookChange struct {
	// BookID identifies the study book.
	BookID string

	// UserID is the owner, empty for system problems.
	UserID string

	// Language is the programming language the book drills.
	Language string

	// Question is the text to be typed.
	Question string
}

// IsSystemProblem reports whether the book is a built-in problem rather than
// a user-created one.
func (c StudyBookChange) IsSystemProblem() bool {
	return c.UserID == ""
}
