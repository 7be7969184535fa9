package query

import (
	"fmt"

	"github.com/bookhaven/storefront/internal/catalog/domain"
)

// DefaultPageSize is how many titles the storefront shows per page
const DefaultPageSize = 24

// SearchBooksQuery represents the query to search the catalog
type SearchBooksQuery struct {
	Query  string
	Limit  int
	Offset int
}

// SearchBooksResult carries one page of matches plus the total match count
type SearchBooksResult struct {
	Books []domain.Book `json:"books"`
	Total int           `json:"total"`
}

// SearchBooksHandler handles catalog search queries
type SearchBooksHandler struct {
	repo domain.BookRepository
}

// NewSearchBooksHandler creates a new search books handler
func NewSearchBooksHandler(repo domain.BookRepository) *SearchBooksHandler {
	return &SearchBooksHandler{repo: repo}
}

// Handle executes the search. The empty query is the degenerate substring
// match and returns the full catalog.
func (h *SearchBooksHandler) Handle(q SearchBooksQuery) (*SearchBooksResult, error) {
	if q.Limit <= 0 {
		q.Limit = DefaultPageSize
	}
	if q.Offset < 0 {
		q.Offset = 0
	}

	matches, err := h.repo.Search(q.Query)
	if err != nil {
		return nil, fmt.Errorf("failed to search catalog: %w", err)
	}

	total := len(matches)
	if q.Offset >= total {
		return &SearchBooksResult{Books: []domain.Book{}, Total: total}, nil
	}
	end := q.Offset + q.Limit
	if end > total {
		end = total
	}

	return &SearchBooksResult{Books: matches[q.Offset:end], Total: total}, nil
}
