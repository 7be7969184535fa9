package command

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	catalogdomain "github.com/bookhaven/storefront/internal/catalog/domain"
	"github.com/bookhaven/storefront/internal/recommend/domain"
	sessiondomain "github.com/bookhaven/storefront/internal/session/domain"
	"github.com/bookhaven/storefront/pkg/logger"
)

// ErrRequestInFlight gates re-submission while a prior request is pending
var ErrRequestInFlight = errors.New("a recommendation request is already in flight")

// RecommendBooksCommand represents the command to fetch AI recommendations
type RecommendBooksCommand struct {
	SessionID string
	Query     string
}

// RecommendBooksHandler handles recommendation requests
type RecommendBooksHandler struct {
	sessions sessiondomain.SessionRepository
	books    catalogdomain.BookRepository
	source   domain.Source
	seq      atomic.Uint64
}

// NewRecommendBooksHandler creates a new recommend books handler
func NewRecommendBooksHandler(
	sessions sessiondomain.SessionRepository,
	books catalogdomain.BookRepository,
	source domain.Source,
) *RecommendBooksHandler {
	return &RecommendBooksHandler{sessions: sessions, books: books, source: source}
}

// Handle executes the recommendation request. External failures degrade
// to an empty result: a broken AI feature must never block browsing.
// Returned records get fresh ids from a monotonic request counter and a
// cover derived from the title.
func (h *RecommendBooksHandler) Handle(ctx context.Context, cmd RecommendBooksCommand) ([]catalogdomain.Book, error) {
	query := strings.TrimSpace(cmd.Query)
	if query == "" {
		return nil, fmt.Errorf("query is required")
	}

	session, err := h.sessions.FindByID(cmd.SessionID)
	if err != nil {
		return nil, err
	}

	if !session.BeginRecommendation() {
		return nil, ErrRequestInFlight
	}
	defer session.EndRecommendation()

	seq := h.seq.Add(1)

	catalog, err := h.books.Search("")
	if err != nil {
		catalog = nil
	}

	drafts, err := h.source.Recommend(ctx, query, catalog)
	if err != nil {
		logger.Error(ctx).
			Err(err).
			Str("query", query).
			Msg("Failed to get recommendations")
		session.SetRecommendations(nil)
		return []catalogdomain.Book{}, nil
	}

	books := make([]catalogdomain.Book, len(drafts))
	for i, d := range drafts {
		books[i] = catalogdomain.Book{
			ID:          fmt.Sprintf("ai-%d-%d", seq, i),
			Title:       d.Title,
			Author:      d.Author,
			Price:       d.Price,
			Description: d.Description,
			CoverURL:    catalogdomain.CoverForTitle(d.Title),
			Category:    d.Category,
			Rating:      d.Rating,
		}
	}

	session.SetRecommendations(books)
	return books, nil
}
