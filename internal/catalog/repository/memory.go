package repository

import (
	"fmt"
	"sync"

	"github.com/bookhaven/storefront/internal/catalog/domain"
)

// MemoryBookRepository is the in-memory catalog store. Insertion order is
// preserved so search results come back in canonical catalog order.
type MemoryBookRepository struct {
	mu    sync.RWMutex
	books []domain.Book
	index map[string]int
}

func NewMemoryBookRepository() *MemoryBookRepository {
	return &MemoryBookRepository{
		index: make(map[string]int),
	}
}

func (r *MemoryBookRepository) Seed(books []domain.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.books = make([]domain.Book, 0, len(books))
	r.index = make(map[string]int, len(books))
	for _, b := range books {
		if _, exists := r.index[b.ID]; exists {
			return fmt.Errorf("duplicate book id %q in seed", b.ID)
		}
		r.index[b.ID] = len(r.books)
		r.books = append(r.books, b)
	}
	return nil
}

func (r *MemoryBookRepository) FindByID(id string) (*domain.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return nil, domain.ErrBookNotFound
	}
	book := r.books[i]
	return &book, nil
}

func (r *MemoryBookRepository) FindAll(limit, offset int) ([]domain.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if offset >= len(r.books) {
		return []domain.Book{}, nil
	}
	end := len(r.books)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	out := make([]domain.Book, end-offset)
	copy(out, r.books[offset:end])
	return out, nil
}

// Search returns every book matching the query, in insertion order.
// The empty query matches all books.
func (r *MemoryBookRepository) Search(query string) ([]domain.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]domain.Book, 0)
	for _, b := range r.books {
		if b.Matches(query) {
			matches = append(matches, b)
		}
	}
	return matches, nil
}

func (r *MemoryBookRepository) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.books), nil
}
