package query

import (
	cartdomain "github.com/bookhaven/storefront/internal/cart/domain"
	sessiondomain "github.com/bookhaven/storefront/internal/session/domain"
)

// GetCartQuery represents the query to read the cart
type GetCartQuery struct {
	SessionID string
}

// CartView is the cart with its derived totals, recomputed on every read
type CartView struct {
	Items []cartdomain.CartItem `json:"items"`
	Total float64               `json:"total"`
	Count int                   `json:"count"`
}

// GetCartHandler handles cart read queries
type GetCartHandler struct {
	sessions sessiondomain.SessionRepository
}

// NewGetCartHandler creates a new get cart handler
func NewGetCartHandler(sessions sessiondomain.SessionRepository) *GetCartHandler {
	return &GetCartHandler{sessions: sessions}
}

// Handle executes the cart read
func (h *GetCartHandler) Handle(q GetCartQuery) (*CartView, error) {
	session, err := h.sessions.FindByID(q.SessionID)
	if err != nil {
		return nil, err
	}
	return &CartView{
		Items: session.Cart.Items(),
		Total: session.Cart.Total(),
		Count: session.Cart.Count(),
	}, nil
}
