package command

import (
	sessiondomain "github.com/bookhaven/storefront/internal/session/domain"
)

// OpenCheckoutCommand represents the command to open the checkout surface
type OpenCheckoutCommand struct {
	SessionID string
}

// OpenCheckoutHandler handles checkout opening
type OpenCheckoutHandler struct {
	sessions sessiondomain.SessionRepository
}

// NewOpenCheckoutHandler creates a new open checkout handler
func NewOpenCheckoutHandler(sessions sessiondomain.SessionRepository) *OpenCheckoutHandler {
	return &OpenCheckoutHandler{sessions: sessions}
}

// Handle executes the open. Checkout refuses an empty cart; on success
// the cart drawer closes and the checkout surface opens.
func (h *OpenCheckoutHandler) Handle(cmd OpenCheckoutCommand) error {
	session, err := h.sessions.FindByID(cmd.SessionID)
	if err != nil {
		return err
	}

	if err := session.Checkout.Open(session.Cart.IsEmpty()); err != nil {
		return err
	}

	session.UpdateView(func(v sessiondomain.ViewState) sessiondomain.ViewState {
		return v.WithCart(false).WithCheckout(true)
	})
	return nil
}
