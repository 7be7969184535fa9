package command

import (
	sessiondomain "github.com/bookhaven/storefront/internal/session/domain"
)

// ClearRecommendationsCommand represents the command to drop the
// session's recommendation list ("Clear results")
type ClearRecommendationsCommand struct {
	SessionID string
}

// ClearRecommendationsHandler handles recommendation clearing
type ClearRecommendationsHandler struct {
	sessions sessiondomain.SessionRepository
}

// NewClearRecommendationsHandler creates a new clear recommendations handler
func NewClearRecommendationsHandler(sessions sessiondomain.SessionRepository) *ClearRecommendationsHandler {
	return &ClearRecommendationsHandler{sessions: sessions}
}

// Handle executes the clear. A request still in flight is not aborted;
// its result simply lands in an already-cleared list on arrival.
func (h *ClearRecommendationsHandler) Handle(cmd ClearRecommendationsCommand) error {
	session, err := h.sessions.FindByID(cmd.SessionID)
	if err != nil {
		return err
	}
	session.ClearRecommendations()
	return nil
}
