package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Book represents a catalog entry. Books are immutable once created;
// the canonical catalog is seeded at startup and never mutated afterwards.
type Book struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	CoverURL    string  `json:"coverUrl"`
	Category    string  `json:"category"`
	Rating      float64 `json:"rating"`
}

// ErrBookNotFound is returned when a book id is not in the catalog
var ErrBookNotFound = errors.New("book not found")

// Matches reports whether the book matches a free-text filter.
// The match is a case-insensitive substring check against title, author
// and category; the empty query matches every book.
func (b *Book) Matches(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(b.Title), q) ||
		strings.Contains(strings.ToLower(b.Author), q) ||
		strings.Contains(strings.ToLower(b.Category), q)
}

// CoverURL builds a deterministic placeholder cover reference for a seed value
func CoverURL(seed string) string {
	return fmt.Sprintf("https://picsum.photos/seed/%s/300/450", seed)
}

// CoverForTitle derives a cover reference from a title. Identical titles
// reuse the same placeholder image; that is a convention, not an invariant.
func CoverForTitle(title string) string {
	return CoverURL(strings.ReplaceAll(title, " ", ""))
}

// BookRepository defines the contract for catalog access
type BookRepository interface {
	Seed(books []Book) error
	FindByID(id string) (*Book, error)
	FindAll(limit, offset int) ([]Book, error)
	Search(query string) ([]Book, error)
	Count() (int, error)
}
