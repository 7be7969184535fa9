package command

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdomain "github.com/bookhaven/storefront/internal/catalog/domain"
	catalogrepo "github.com/bookhaven/storefront/internal/catalog/repository"
	sessiondomain "github.com/bookhaven/storefront/internal/session/domain"
	sessionrepo "github.com/bookhaven/storefront/internal/session/repository"
)

type fakeScheduler struct{}

func (fakeScheduler) AfterFunc(d time.Duration, f func()) {}

func setup(t *testing.T) (*AddItemHandler, *sessiondomain.Session) {
	t.Helper()

	sessions := sessionrepo.NewMemorySessionRepository()
	session := sessiondomain.NewSession("s1", fakeScheduler{})
	require.NoError(t, sessions.Create(session))

	books := catalogrepo.NewMemoryBookRepository()
	require.NoError(t, books.Seed([]catalogdomain.Book{
		{ID: "1", Title: "The Echoes of Time", Price: 19.99},
		{ID: "2", Title: "Culinary Secrets", Price: 34.50},
	}))

	return NewAddItemHandler(sessions, books), session
}

func TestAddItemFromCatalog(t *testing.T) {
	h, session := setup(t)

	require.NoError(t, h.Handle(AddItemCommand{SessionID: "s1", BookID: "1"}))

	items := session.Cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "The Echoes of Time", items[0].Title)
	assert.Equal(t, 1, items[0].Quantity)

	// Adding opens the cart drawer
	assert.True(t, session.View().CartOpen)
}

func TestAddRecommendedBook(t *testing.T) {
	h, session := setup(t)

	session.SetRecommendations([]catalogdomain.Book{
		{ID: "ai-1-0", Title: "Invented Book", Price: 11.00},
	})

	require.NoError(t, h.Handle(AddItemCommand{SessionID: "s1", BookID: "ai-1-0"}))

	items := session.Cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Invented Book", items[0].Title)
}

func TestAddUnknownBook(t *testing.T) {
	h, session := setup(t)

	err := h.Handle(AddItemCommand{SessionID: "s1", BookID: "nope"})
	assert.ErrorIs(t, err, catalogdomain.ErrBookNotFound)
	assert.True(t, session.Cart.IsEmpty())
}

func TestAddItemUnknownSession(t *testing.T) {
	h, _ := setup(t)

	err := h.Handle(AddItemCommand{SessionID: "missing", BookID: "1"})
	assert.ErrorIs(t, err, sessiondomain.ErrSessionNotFound)
}

func TestAddItemRequiresBookID(t *testing.T) {
	h, _ := setup(t)

	assert.Error(t, h.Handle(AddItemCommand{SessionID: "s1"}))
}
