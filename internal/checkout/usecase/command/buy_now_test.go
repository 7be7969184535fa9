package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdomain "github.com/bookhaven/storefront/internal/catalog/domain"
	catalogrepo "github.com/bookhaven/storefront/internal/catalog/repository"
)

func TestBuyNow(t *testing.T) {
	repo, session, _ := setup(t)
	books := catalogrepo.NewMemoryBookRepository()
	require.NoError(t, books.Seed([]catalogdomain.Book{{ID: "1", Title: "Dune", Price: 12.50}}))
	h := NewBuyNowHandler(repo, books)

	require.NoError(t, h.Handle(BuyNowCommand{SessionID: "s1", BookID: "1"}))

	assert.Equal(t, 1, session.Cart.Count())
	view := session.View()
	assert.False(t, view.CartOpen)
	assert.True(t, view.CheckoutOpen)
	assert.True(t, session.Checkout.Snapshot().Open)
	assert.InDelta(t, 12.50, session.Cart.Total(), 0.001)
}

func TestBuyNowRecommendedBook(t *testing.T) {
	repo, session, _ := setup(t)
	books := catalogrepo.NewMemoryBookRepository()
	session.SetRecommendations([]catalogdomain.Book{{ID: "ai-1-0", Title: "Hyperion", Price: 9.99}})
	h := NewBuyNowHandler(repo, books)

	require.NoError(t, h.Handle(BuyNowCommand{SessionID: "s1", BookID: "ai-1-0"}))

	assert.Equal(t, 1, session.Cart.Count())
	assert.True(t, session.View().CheckoutOpen)
}

func TestBuyNowUnknownBook(t *testing.T) {
	repo, session, _ := setup(t)
	books := catalogrepo.NewMemoryBookRepository()
	h := NewBuyNowHandler(repo, books)

	assert.ErrorIs(t, h.Handle(BuyNowCommand{SessionID: "s1", BookID: "missing"}), catalogdomain.ErrBookNotFound)
	assert.Equal(t, 0, session.Cart.Count())
	assert.False(t, session.View().CheckoutOpen)
}

func TestBuyNowUnknownSession(t *testing.T) {
	repo, _, _ := setup(t)
	books := catalogrepo.NewMemoryBookRepository()
	h := NewBuyNowHandler(repo, books)

	assert.Error(t, h.Handle(BuyNowCommand{SessionID: "nope", BookID: "1"}))
	assert.Error(t, h.Handle(BuyNowCommand{SessionID: "s1", BookID: ""}))
}
