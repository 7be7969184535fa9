package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookhaven/storefront/internal/catalog/domain"
	"github.com/bookhaven/storefront/internal/catalog/repository"
	"github.com/bookhaven/storefront/internal/catalog/seed"
)

func newSampleHandler(t *testing.T) *GetSampleHandler {
	t.Helper()
	repo := repository.NewMemoryBookRepository()
	require.NoError(t, repo.Seed(seed.Books(42)))
	return NewGetSampleHandler(repo)
}

func TestSampleFirstPage(t *testing.T) {
	h := newSampleHandler(t)

	page, err := h.Handle(GetSampleQuery{BookID: "1", Page: 1})
	require.NoError(t, err)

	assert.Equal(t, "1", page.BookID)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, SamplePageCount, page.TotalPages)
	assert.Contains(t, page.Heading, "The Echoes of Time")
	assert.Contains(t, page.Heading, "Sarah J. Miller")
	require.Len(t, page.Paragraphs, 2)
	assert.Equal(t, "Chapter One", page.Paragraphs[0])
	// The opening paragraph folds in the book's own description
	assert.Contains(t, page.Paragraphs[1], "rewrite history")
}

func TestSampleLaterPages(t *testing.T) {
	h := newSampleHandler(t)

	page, err := h.Handle(GetSampleQuery{BookID: "3", Page: 5})
	require.NoError(t, err)

	assert.Empty(t, page.Heading)
	require.Len(t, page.Paragraphs, 3)
	assert.Contains(t, page.Paragraphs[0], "Page 5")
	assert.Contains(t, page.Paragraphs[0], "Elena Ruskov")
	assert.Contains(t, page.Paragraphs[2], "The Silent Forest")
}

func TestSampleDeterministic(t *testing.T) {
	h := newSampleHandler(t)

	a, err := h.Handle(GetSampleQuery{BookID: "2", Page: 7})
	require.NoError(t, err)
	b, err := h.Handle(GetSampleQuery{BookID: "2", Page: 7})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSampleBounds(t *testing.T) {
	h := newSampleHandler(t)

	_, err := h.Handle(GetSampleQuery{BookID: "1", Page: 0})
	assert.Error(t, err)

	_, err = h.Handle(GetSampleQuery{BookID: "1", Page: SamplePageCount + 1})
	assert.Error(t, err)

	_, err = h.Handle(GetSampleQuery{BookID: "missing", Page: 1})
	assert.ErrorIs(t, err, domain.ErrBookNotFound)
}
