package command

import (
	sessiondomain "github.com/bookhaven/storefront/internal/session/domain"
)

// SubmitContactCommand carries the contact email gating review -> payment
type SubmitContactCommand struct {
	SessionID string
	Email     string
}

// SubmitContactHandler handles the contact step
type SubmitContactHandler struct {
	sessions sessiondomain.SessionRepository
}

// NewSubmitContactHandler creates a new submit contact handler
func NewSubmitContactHandler(sessions sessiondomain.SessionRepository) *SubmitContactHandler {
	return &SubmitContactHandler{sessions: sessions}
}

// Handle executes the contact step; an empty email keeps the user in
// review with a blocking notice
func (h *SubmitContactHandler) Handle(cmd SubmitContactCommand) error {
	session, err := h.sessions.FindByID(cmd.SessionID)
	if err != nil {
		return err
	}
	return session.Checkout.SubmitContact(cmd.Email)
}
