package command

import (
	sessiondomain "github.com/bookhaven/storefront/internal/session/domain"
)

// UpdateQuantityCommand represents the command to change an entry's quantity
type UpdateQuantityCommand struct {
	SessionID string
	BookID    string
	Delta     int
}

// UpdateQuantityHandler handles quantity updates
type UpdateQuantityHandler struct {
	sessions sessiondomain.SessionRepository
}

// NewUpdateQuantityHandler creates a new update quantity handler
func NewUpdateQuantityHandler(sessions sessiondomain.SessionRepository) *UpdateQuantityHandler {
	return &UpdateQuantityHandler{sessions: sessions}
}

// Handle executes the update. The quantity clamps at 1 and an unknown
// book id fails silently, both by contract.
func (h *UpdateQuantityHandler) Handle(cmd UpdateQuantityCommand) error {
	session, err := h.sessions.FindByID(cmd.SessionID)
	if err != nil {
		return err
	}
	session.Cart.UpdateQuantity(cmd.BookID, cmd.Delta)
	return nil
}
