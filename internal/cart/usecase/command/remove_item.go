package command

import (
	sessiondomain "github.com/bookhaven/storefront/internal/session/domain"
)

// RemoveItemCommand represents the command to remove a cart entry
type RemoveItemCommand struct {
	SessionID string
	BookID    string
}

// RemoveItemHandler handles item removal
type RemoveItemHandler struct {
	sessions sessiondomain.SessionRepository
}

// NewRemoveItemHandler creates a new remove item handler
func NewRemoveItemHandler(sessions sessiondomain.SessionRepository) *RemoveItemHandler {
	return &RemoveItemHandler{sessions: sessions}
}

// Handle executes the removal; removing an absent id is a no-op
func (h *RemoveItemHandler) Handle(cmd RemoveItemCommand) error {
	session, err := h.sessions.FindByID(cmd.SessionID)
	if err != nil {
		return err
	}
	session.Cart.RemoveItem(cmd.BookID)
	return nil
}
