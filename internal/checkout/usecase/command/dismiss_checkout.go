package command

import (
	sessiondomain "github.com/bookhaven/storefront/internal/session/domain"
)

// DismissCheckoutCommand closes the checkout surface
type DismissCheckoutCommand struct {
	SessionID string
}

// DismissCheckoutHandler handles checkout dismissal
type DismissCheckoutHandler struct {
	sessions sessiondomain.SessionRepository
}

// NewDismissCheckoutHandler creates a new dismiss checkout handler
func NewDismissCheckoutHandler(sessions sessiondomain.SessionRepository) *DismissCheckoutHandler {
	return &DismissCheckoutHandler{sessions: sessions}
}

// Handle executes the dismissal. Dismissing while processing is refused;
// otherwise the surface closes and the view flag clears.
func (h *DismissCheckoutHandler) Handle(cmd DismissCheckoutCommand) error {
	session, err := h.sessions.FindByID(cmd.SessionID)
	if err != nil {
		return err
	}
	if err := session.Checkout.Dismiss(); err != nil {
		return err
	}
	session.UpdateView(func(v sessiondomain.ViewState) sessiondomain.ViewState {
		return v.WithCheckout(false)
	})
	return nil
}
