package command

import (
	"errors"
	"fmt"

	catalogdomain "github.com/bookhaven/storefront/internal/catalog/domain"
	sessiondomain "github.com/bookhaven/storefront/internal/session/domain"
)

// AddItemCommand represents the command to add a book to the cart
type AddItemCommand struct {
	SessionID string
	BookID    string
}

// AddItemHandler handles add-to-cart commands
type AddItemHandler struct {
	sessions sessiondomain.SessionRepository
	books    catalogdomain.BookRepository
}

// NewAddItemHandler creates a new add item handler
func NewAddItemHandler(sessions sessiondomain.SessionRepository, books catalogdomain.BookRepository) *AddItemHandler {
	return &AddItemHandler{sessions: sessions, books: books}
}

// Handle executes the add item command. The book is resolved from the
// canonical catalog first, then from the session's AI recommendations,
// so recommended books are purchasable even though they never join the
// catalog. Adding opens the cart drawer.
func (h *AddItemHandler) Handle(cmd AddItemCommand) error {
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
	session.UpdateView(func(v sessiondomain.ViewState) sessiondomain.ViewState {
		return v.WithCart(true)
	})
	return nil
}
