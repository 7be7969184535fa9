package command

import (
	"github.com/bookhaven/storefront/internal/session/domain"
)

// LogoutUserCommand represents the command to sign a visitor out
type LogoutUserCommand struct {
	SessionID string
}

// LogoutUserHandler handles user logout command
type LogoutUserHandler struct {
	repo domain.SessionRepository
}

// NewLogoutUserHandler creates a new logout user handler
func NewLogoutUserHandler(repo domain.SessionRepository) *LogoutUserHandler {
	return &LogoutUserHandler{repo: repo}
}

// Handle executes the logout command; it clears the user unconditionally
func (h *LogoutUserHandler) Handle(cmd LogoutUserCommand) error {
	session, err := h.repo.FindByID(cmd.SessionID)
	if err != nil {
		return err
	}
	session.ClearUser()
	return nil
}
