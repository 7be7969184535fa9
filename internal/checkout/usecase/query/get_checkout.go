package query

import (
	checkoutdomain "github.com/bookhaven/storefront/internal/checkout/domain"
	sessiondomain "github.com/bookhaven/storefront/internal/session/domain"
)

// GetCheckoutQuery represents the query to read the checkout state
type GetCheckoutQuery struct {
	SessionID string
}

// GetCheckoutHandler handles checkout state queries
type GetCheckoutHandler struct {
	sessions sessiondomain.SessionRepository
}

// NewGetCheckoutHandler creates a new get checkout handler
func NewGetCheckoutHandler(sessions sessiondomain.SessionRepository) *GetCheckoutHandler {
	return &GetCheckoutHandler{sessions: sessions}
}

// Handle executes the checkout state query
func (h *GetCheckoutHandler) Handle(q GetCheckoutQuery) (*checkoutdomain.Snapshot, error) {
	session, err := h.sessions.FindByID(q.SessionID)
	if err != nil {
		return nil, err
	}
	snap := session.Checkout.Snapshot()
	return &snap, nil
}
