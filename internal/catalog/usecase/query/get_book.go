package query

import (
	"fmt"

	"github.com/bookhaven/storefront/internal/catalog/domain"
)

// GetBookQuery represents the query to fetch a single book
type GetBookQuery struct {
	ID string
}

// GetBookHandler handles get book queries
type GetBookHandler struct {
	repo domain.BookRepository
}

// NewGetBookHandler creates a new get book handler
func NewGetBookHandler(repo domain.BookRepository) *GetBookHandler {
	return &GetBookHandler{repo: repo}
}

// Handle executes the get book query
func (h *GetBookHandler) Handle(q GetBookQuery) (*domain.Book, error) {
	if q.ID == "" {
		return nil, fmt.Errorf("book id is required")
	}
	return h.repo.FindByID(q.ID)
}
