package command

import (
	"errors"
	"fmt"

	catalogdomain "github.com/bookhaven/storefront/internal/catalog/domain"
	sessiondomain "github.com/bookhaven/storefront/internal/session/domain"
)

// BuyNowCommand adds a book to the cart and opens checkout in one step
type BuyNowCommand struct {
	SessionID string
	BookID    string
}

// BuyNowHandler handles buy-now commands
type BuyNowHandler struct {
	sessions sessiondomain.SessionRepository
	books    catalogdomain.BookRepository
}

// NewBuyNowHandler creates a new buy now handler
func NewBuyNowHandler(sessions sessiondomain.SessionRepository, books catalogdomain.BookRepository) *BuyNowHandler {
	return &BuyNowHandler{sessions: sessions, books: books}
}

// Handle executes the buy-now command. The book resolves from the
// catalog first, then from the session's AI recommendations. The cart
// is never empty after the add, so the open cannot be refused.
func (h *BuyNowHandler) Handle(cmd BuyNowCommand) error {
	if cmd.BookID == "" {
		return fmt.Errorf("book id is required")
	}

	session, err := h.sessions.FindByID(cmd.SessionID)
	if err != nil {
		return err
	}

	book, err := h.books.FindByID(cmd.BookID)
	if err != nil {
		if !errors.Is(err, catalogdomain.ErrBookNotFound) {
			return fmt.Errorf("failed to resolve book: %w", err)
		}
		rec, ok := session.RecommendationByID(cmd.BookID)
		if !ok {
			return catalogdomain.ErrBookNotFound
		}
		book = rec
	}

	session.Cart.AddItem(*book)
	if err := session.Checkout.Open(session.Cart.IsEmpty()); err != nil {
		return err
	}

	session.UpdateView(func(v sessiondomain.ViewState) sessiondomain.ViewState {
		return v.WithCart(false).WithCheckout(true)
	})
	return nil
}
