package command

import (
	"github.com/bookhaven/storefront/internal/session/domain"
)

// UpdateViewCommand represents a view-state transition request. Nil
// fields leave the corresponding part of the view unchanged.
type UpdateViewCommand struct {
	SessionID      string
	CartOpen       *bool
	LoginOpen      *bool
	SelectedBookID *string
	SamplingBookID *string
}

// UpdateViewHandler handles view-state transitions
type UpdateViewHandler struct {
	repo domain.SessionRepository
}

// NewUpdateViewHandler creates a new update view handler
func NewUpdateViewHandler(repo domain.SessionRepository) *UpdateViewHandler {
	return &UpdateViewHandler{repo: repo}
}

// Handle executes the view transition and returns the next view state
func (h *UpdateViewHandler) Handle(cmd UpdateViewCommand) (domain.ViewState, error) {
	session, err := h.repo.FindByID(cmd.SessionID)
	if err != nil {
		return domain.ViewState{}, err
	}

	next := session.UpdateView(func(v domain.ViewState) domain.ViewState {
		if cmd.CartOpen != nil {
			v = v.WithCart(*cmd.CartOpen)
		}
		if cmd.LoginOpen != nil {
			v = v.WithLogin(*cmd.LoginOpen)
		}
		if cmd.SelectedBookID != nil {
			v = v.WithSelectedBook(*cmd.SelectedBookID)
		}
		if cmd.SamplingBookID != nil {
			v = v.WithSamplingBook(*cmd.SamplingBookID)
		}
		return v
	})
	return next, nil
}
