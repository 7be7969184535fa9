package query

import (
	"fmt"

	"github.com/bookhaven/storefront/internal/catalog/domain"
)

// GetStatsQuery represents the query to get catalog statistics
type GetStatsQuery struct{}

// CatalogStats represents catalog statistics
type CatalogStats struct {
	TotalBooks    int            `json:"total_books"`
	Categories    map[string]int `json:"categories"`
	AverageRating float64        `json:"average_rating"`
}

// GetStatsHandler handles catalog statistics queries
type GetStatsHandler struct {
	repo domain.BookRepository
}

// NewGetStatsHandler creates a new get stats handler
func NewGetStatsHandler(repo domain.BookRepository) *GetStatsHandler {
	return &GetStatsHandler{repo: repo}
}

// Handle executes the get stats query
func (h *GetStatsHandler) Handle(_ GetStatsQuery) (*CatalogStats, error) {
	books, err := h.repo.Search("")
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	stats := &CatalogStats{
		TotalBooks: len(books),
		Categories: make(map[string]int),
	}

	var ratingSum float64
	for _, b := range books {
		stats.Categories[b.Category]++
		ratingSum += b.Rating
	}
	if len(books) > 0 {
		stats.AverageRating = ratingSum / float64(len(books))
	}

	return stats, nil
}
