package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookhaven/storefront/internal/catalog/domain"
	"github.com/bookhaven/storefront/internal/catalog/seed"
)

func seededRepo(t *testing.T) *MemoryBookRepository {
	t.Helper()
	repo := NewMemoryBookRepository()
	require.NoError(t, repo.Seed(seed.Books(42)))
	return repo
}

func TestSeedAndCount(t *testing.T) {
	repo := seededRepo(t)
	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, seed.CatalogSize, count)
}

func TestSeedRejectsDuplicateIDs(t *testing.T) {
	repo := NewMemoryBookRepository()
	err := repo.Seed([]domain.Book{
		{ID: "1", Title: "A"},
		{ID: "1", Title: "B"},
	})
	assert.Error(t, err)
}

func TestFindByID(t *testing.T) {
	repo := seededRepo(t)

	book, err := repo.FindByID("4")
	require.NoError(t, err)
	assert.Equal(t, "Code of the Future", book.Title)

	_, err = repo.FindByID("no-such-id")
	assert.ErrorIs(t, err, domain.ErrBookNotFound)
}

func TestFindByIDReturnsCopy(t *testing.T) {
	repo := seededRepo(t)

	book, err := repo.FindByID("1")
	require.NoError(t, err)
	book.Title = "mutated"

	again, err := repo.FindByID("1")
	require.NoError(t, err)
	assert.Equal(t, "The Echoes of Time", again.Title)
}

func TestFindAllPaging(t *testing.T) {
	repo := seededRepo(t)

	tests := []struct {
		name    string
		limit   int
		offset  int
		wantLen int
		firstID string
	}{
		{name: "first page", limit: 10, offset: 0, wantLen: 10, firstID: "1"},
		{name: "second page", limit: 10, offset: 10, wantLen: 10, firstID: "11"},
		{name: "tail page", limit: 10, offset: 95, wantLen: 5, firstID: "96"},
		{name: "offset past end", limit: 10, offset: 200, wantLen: 0},
		{name: "no limit returns all", limit: 0, offset: 0, wantLen: 100, firstID: "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			books, err := repo.FindAll(tt.limit, tt.offset)
			require.NoError(t, err)
			assert.Len(t, books, tt.wantLen)
			if tt.wantLen > 0 {
				assert.Equal(t, tt.firstID, books[0].ID)
			}
		})
	}
}

func TestSearch(t *testing.T) {
	repo := seededRepo(t)

	// Empty query matches the whole catalog
	all, err := repo.Search("")
	require.NoError(t, err)
	assert.Len(t, all, seed.CatalogSize)

	// Case-insensitive substring over title, author and category
	matches, err := repo.Search("culinary")
	require.NoError(t, err)
	require.NotEmpty(t, matches)
	assert.Equal(t, "Culinary Secrets", matches[0].Title)

	byAuthor, err := repo.Search("chef antonio")
	require.NoError(t, err)
	assert.Len(t, byAuthor, 1)

	byCategory, err := repo.Search("science fiction")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(byCategory), 2)

	none, err := repo.Search("zzzzzz-no-match")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSearchPreservesCatalogOrder(t *testing.T) {
	repo := seededRepo(t)

	matches, err := repo.Search("the")
	require.NoError(t, err)
	require.NotEmpty(t, matches)

	// Every run returns ids in the order they were seeded
	prev := -1
	index := map[string]int{}
	all, _ := repo.Search("")
	for i, b := range all {
		index[b.ID] = i
	}
	for _, b := range matches {
		assert.Greater(t, index[b.ID], prev)
		prev = index[b.ID]
	}
}
