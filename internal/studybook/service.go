package studybook

import (
	"time"

	"github.com/google/uuid"

	"github.com/dshills/typetrain/internal/event"
	"github.com/dshills/typetrain/internal/event/events"
)

// Service is the study book module.
type Service struct {
	bus  *event.Bus
	repo Repository
	now  func() time.Time
}

// NewService creates the study book module on the given bus and repository.
func NewService(bus *event.Bus, repo Repository) *Service {
	return &Service{
		bus:  bus,
		repo: repo,
		now:  time.Now,
	}
}

// Create stores a new study book and emits studybook:created. An empty
// userID creates a system problem.
func (s *Service) Create(userID, language, question, explanation string) (StudyBook, error) {
	if language == "" {
		return StudyBook{}, ErrEmptyLanguage
	}
	if question == "" {
		return StudyBook{}, ErrEmptyQuestion
	}

	now := s.now()
	book := StudyBook{
		ID:          uuid.NewString(),
		UserID:      userID,
		Language:    language,
		Question:    question,
		Explanation: explanation,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Save(book); err != nil {
		return StudyBook{}, err
	}

	s.bus.Emit(events.StudyBookCreated, s.changeOf(book))
	return book, nil
}

// Update replaces a book's question and explanation and emits
// studybook:updated.
func (s *Service) Update(id, question, explanation string) (StudyBook, error) {
	if question == "" {
		return StudyBook{}, ErrEmptyQuestion
	}

	book, err := s.repo.FindByID(id)
	if err != nil {
		return StudyBook{}, err
	}

	book.Question = question
	book.Explanation = explanation
	book.UpdatedAt = s.now()
	if err := s.repo.Save(book); err != nil {
		return StudyBook{}, err
	}

	s.bus.Emit(events.StudyBookUpdated, s.changeOf(book))
	return book, nil
}

// Delete removes a book and emits studybook:deleted.
func (s *Service) Delete(id string) error {
	book, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.bus.Emit(events.StudyBookDeleted, s.changeOf(book))
	return nil
}

// Get returns one book by ID.
func (s *Service) Get(id string) (StudyBook, error) {
	return s.repo.FindByID(id)
}

// ListByUser returns the user's books.
func (s *Service) ListByUser(userID string) ([]StudyBook, error) {
	return s.repo.FindByUser(userID)
}

func (s *Service) changeOf(book StudyBook) events.StudyBookChange {
	return events.StudyBookChange{
		BookID:   book.ID,
		UserID:   book.UserID,
		Language: book.Language,
		Question: book.Question,
	}
}
