package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBooksSize(t *testing.T) {
	books := Books(42)
	require.Len(t, books, CatalogSize)

	seen := make(map[string]bool, len(books))
	for _, b := range books {
		assert.False(t, seen[b.ID], "duplicate id %s", b.ID)
		seen[b.ID] = true

		assert.NotEmpty(t, b.Title)
		assert.NotEmpty(t, b.Author)
		assert.NotEmpty(t, b.Category)
		assert.NotEmpty(t, b.Description)
		assert.Greater(t, b.Price, 0.0)
		assert.GreaterOrEqual(t, b.Rating, 3.0)
		assert.LessOrEqual(t, b.Rating, 5.0)
	}
}

func TestCuratedBooksComeFirst(t *testing.T) {
	books := Books(42)

	assert.Equal(t, "1", books[0].ID)
	assert.Equal(t, "The Echoes of Time", books[0].Title)
	assert.Equal(t, "Sarah J. Miller", books[0].Author)
	assert.InDelta(t, 19.99, books[0].Price, 1e-9)

	assert.Equal(t, "Culinary Secrets", books[1].Title)
	assert.Equal(t, "The Lost Painter", books[7].Title)

	// Generated filler starts at id 9
	assert.Equal(t, "9", books[8].ID)
	assert.Contains(t, books[8].Author, "Author ")
}

func TestBooksDeterministic(t *testing.T) {
	a := Books(7)
	b := Books(7)
	assert.Equal(t, a, b)

	c := Books(8)
	assert.NotEqual(t, a, c)
}

func TestCoverURLs(t *testing.T) {
	books := Books(42)
	assert.Equal(t, "https://picsum.photos/seed/book1/300/450", books[0].CoverURL)
	assert.Equal(t, "https://picsum.photos/seed/book100/300/450", books[99].CoverURL)
}
