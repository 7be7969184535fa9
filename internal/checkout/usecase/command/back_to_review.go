package command

import (
	sessiondomain "github.com/bookhaven/storefront/internal/session/domain"
)

// BackToReviewCommand returns from payment to the review step
type BackToReviewCommand struct {
	SessionID string
}

// BackToReviewHandler handles the back transition
type BackToReviewHandler struct {
	sessions sessiondomain.SessionRepository
}

// NewBackToReviewHandler creates a new back to review handler
func NewBackToReviewHandler(sessions sessiondomain.SessionRepository) *BackToReviewHandler {
	return &BackToReviewHandler{sessions: sessions}
}

// Handle executes the back transition
func (h *BackToReviewHandler) Handle(cmd BackToReviewCommand) error {
	session, err := h.sessions.FindByID(cmd.SessionID)
	if err != nil {
		return err
	}
	return session.Checkout.Back()
}
