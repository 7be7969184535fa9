package command

import (
	"fmt"

	"github.com/google/uuid"

	checkoutdomain "github.com/bookhaven/storefront/internal/checkout/domain"
	"github.com/bookhaven/storefront/internal/session/domain"
)

// OpenSessionCommand represents the command to open a browsing session
type OpenSessionCommand struct{}

// OpenSessionHandler handles session creation
type OpenSessionHandler struct {
	repo  domain.SessionRepository
	sched checkoutdomain.Scheduler
}

// NewOpenSessionHandler creates a new open session handler
func NewOpenSessionHandler(repo domain.SessionRepository, sched checkoutdomain.Scheduler) *OpenSessionHandler {
	return &OpenSessionHandler{repo: repo, sched: sched}
}

// Handle executes the open session command
func (h *OpenSessionHandler) Handle(_ OpenSessionCommand) (*domain.Session, error) {
	session := domain.NewSession(uuid.NewString(), h.sched)
	if err := h.repo.Create(session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session, nil
}
