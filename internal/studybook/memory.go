package studybook

import (
	"sort"
	"sync"
)

// MemoryRepository is a map-backed Repository.
type MemoryRepository struct {
	mu    sync.RWMutex
	books map[string]StudyBook
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{books: make(map[string]StudyBook)}
}

// Save inserts or replaces a book.
func (r *MemoryRepository) Save(book StudyBook) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.books[book.ID] = book
	return nil
}

// FindByID returns the book with the given ID.
func (r *MemoryRepository) FindByID(id string) (StudyBook, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	book, ok := r.books[id]
	if !ok {
		return StudyBook{}, ErrNotFound
	}
	return book, nil
}

// FindByUser returns the user's books ordered by creation time.
func (r *MemoryRepository) FindByUser(userID string) ([]StudyBook, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var books []StudyBook
	for _, book := range r.books {
		if book.UserID == userID {
			books = append(books, book)
		}
	}
	sort.Slice(books, func(i, j int) bool {
		return books[i].CreatedAt.Before(books[j].CreatedAt)
	})
	return books, nil
}

// Delete removes the book with the given ID.
func (r *MemoryRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.books[id]; !ok {
		return ErrNotFound
	}
	delete(r.books, id)
	return nil
}
