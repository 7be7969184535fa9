package command

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdomain "github.com/bookhaven/storefront/internal/catalog/domain"
	catalogrepo "github.com/bookhaven/storefront/internal/catalog/repository"
	"github.com/bookhaven/storefront/internal/recommend/domain"
	sessiondomain "github.com/bookhaven/storefront/internal/session/domain"
	sessionrepo "github.com/bookhaven/storefront/internal/session/repository"
)

type fakeScheduler struct{}

func (fakeScheduler) AfterFunc(d time.Duration, f func()) {}

// fakeSource returns canned drafts or a canned error
type fakeSource struct {
	drafts []domain.BookDraft
	err    error
	calls  int
}

func (f *fakeSource) Recommend(ctx context.Context, query string, catalog []catalogdomain.Book) ([]domain.BookDraft, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.drafts, nil
}

func setup(t *testing.T, source domain.Source) (*RecommendBooksHandler, *sessiondomain.Session) {
	t.Helper()

	sessions := sessionrepo.NewMemorySessionRepository()
	session := sessiondomain.NewSession("s1", fakeScheduler{})
	require.NoError(t, sessions.Create(session))

	books := catalogrepo.NewMemoryBookRepository()
	require.NoError(t, books.Seed([]catalogdomain.Book{{ID: "1", Title: "Seeded"}}))

	return NewRecommendBooksHandler(sessions, books, source), session
}

func TestRecommendAssignsLocalIdentity(t *testing.T) {
	source := &fakeSource{drafts: []domain.BookDraft{
		{Title: "Dune", Author: "Frank Herbert", Price: 12.99, Description: "d", Category: "Science Fiction", Rating: 4.8},
		{Title: "Good Omens", Author: "Pratchett & Gaiman", Price: 9.99, Description: "d", Category: "Fantasy", Rating: 4.5},
	}}
	h, session := setup(t, source)

	books, err := h.Handle(context.Background(), RecommendBooksCommand{SessionID: "s1", Query: "epics"})
	require.NoError(t, err)
	require.Len(t, books, 2)

	assert.Equal(t, "ai-1-0", books[0].ID)
	assert.Equal(t, "ai-1-1", books[1].ID)
	assert.Equal(t, "https://picsum.photos/seed/Dune/300/450", books[0].CoverURL)
	assert.Equal(t, "https://picsum.photos/seed/GoodOmens/300/450", books[1].CoverURL)

	// Results land on the session for later cart lookups
	stored, ok := session.RecommendationByID("ai-1-1")
	require.True(t, ok)
	assert.Equal(t, "Good Omens", stored.Title)

	// A second request gets a fresh sequence number
	books, err = h.Handle(context.Background(), RecommendBooksCommand{SessionID: "s1", Query: "more epics"})
	require.NoError(t, err)
	assert.Equal(t, "ai-2-0", books[0].ID)
}

func TestRecommendFailsSoft(t *testing.T) {
	source := &fakeSource{err: errors.New("model unavailable")}
	h, session := setup(t, source)

	session.SetRecommendations([]catalogdomain.Book{{ID: "ai-0-0"}})

	books, err := h.Handle(context.Background(), RecommendBooksCommand{SessionID: "s1", Query: "anything"})
	require.NoError(t, err, "external failure must not surface")
	assert.NotNil(t, books)
	assert.Empty(t, books)

	// Stale results do not linger after a failed request
	assert.Empty(t, session.Recommendations())
}

func TestRecommendRequiresQuery(t *testing.T) {
	h, _ := setup(t, &fakeSource{})

	_, err := h.Handle(context.Background(), RecommendBooksCommand{SessionID: "s1", Query: "   "})
	assert.Error(t, err)
}

func TestRecommendBusyGate(t *testing.T) {
	source := &fakeSource{drafts: []domain.BookDraft{}}
	h, session := setup(t, source)

	require.True(t, session.BeginRecommendation())

	_, err := h.Handle(context.Background(), RecommendBooksCommand{SessionID: "s1", Query: "epics"})
	assert.ErrorIs(t, err, ErrRequestInFlight)
	assert.Zero(t, source.calls)

	session.EndRecommendation()
	_, err = h.Handle(context.Background(), RecommendBooksCommand{SessionID: "s1", Query: "epics"})
	assert.NoError(t, err)
	assert.Equal(t, 1, source.calls)
}

func TestRecommendUnknownSession(t *testing.T) {
	h, _ := setup(t, &fakeSource{})

	_, err := h.Handle(context.Background(), RecommendBooksCommand{SessionID: "missing", Query: "epics"})
	assert.ErrorIs(t, err, sessiondomain.ErrSessionNotFound)
}
