package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookhaven/storefront/internal/catalog/repository"
	"github.com/bookhaven/storefront/internal/catalog/seed"
)

func newSearchHandler(t *testing.T) *SearchBooksHandler {
	t.Helper()
	repo := repository.NewMemoryBookRepository()
	require.NoError(t, repo.Seed(seed.Books(42)))
	return NewSearchBooksHandler(repo)
}

func TestSearchDefaults(t *testing.T) {
	h := newSearchHandler(t)

	result, err := h.Handle(SearchBooksQuery{})
	require.NoError(t, err)

	// Empty query lists the catalog, one default-sized page at a time
	assert.Equal(t, seed.CatalogSize, result.Total)
	assert.Len(t, result.Books, DefaultPageSize)
	assert.Equal(t, "1", result.Books[0].ID)
}

func TestSearchPaging(t *testing.T) {
	h := newSearchHandler(t)

	page2, err := h.Handle(SearchBooksQuery{Limit: 24, Offset: 24})
	require.NoError(t, err)
	assert.Len(t, page2.Books, 24)
	assert.Equal(t, "25", page2.Books[0].ID)

	tail, err := h.Handle(SearchBooksQuery{Limit: 24, Offset: 96})
	require.NoError(t, err)
	assert.Len(t, tail.Books, 4)

	past, err := h.Handle(SearchBooksQuery{Limit: 24, Offset: 1000})
	require.NoError(t, err)
	assert.Empty(t, past.Books)
	assert.Equal(t, seed.CatalogSize, past.Total)
}

func TestSearchFilters(t *testing.T) {
	h := newSearchHandler(t)

	result, err := h.Handle(SearchBooksQuery{Query: "culinary"})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Total)
	assert.Equal(t, "Culinary Secrets", result.Books[0].Title)

	// Total counts all matches even when the page is smaller
	result, err = h.Handle(SearchBooksQuery{Query: "the", Limit: 5})
	require.NoError(t, err)
	assert.Len(t, result.Books, 5)
	assert.GreaterOrEqual(t, result.Total, 5)
}

func TestSearchNegativeOffset(t *testing.T) {
	h := newSearchHandler(t)

	result, err := h.Handle(SearchBooksQuery{Offset: -10, Limit: 3})
	require.NoError(t, err)
	assert.Len(t, result.Books, 3)
	assert.Equal(t, "1", result.Books[0].ID)
}
