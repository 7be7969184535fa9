package query

import (
	checkoutdomain "github.com/bookhaven/storefront/internal/checkout/domain"
	"github.com/bookhaven/storefront/internal/session/domain"
)

// GetSessionQuery represents the query to fetch a session snapshot
type GetSessionQuery struct {
	SessionID string
}

// SessionSnapshot is what the client needs to render the storefront
type SessionSnapshot struct {
	ID              string                  `json:"id"`
	User            *domain.User            `json:"user,omitempty"`
	View            domain.ViewState        `json:"view"`
	ActiveQuery     string                  `json:"activeQuery"`
	CartCount       int                     `json:"cartCount"`
	CartTotal       float64                 `json:"cartTotal"`
	Checkout        checkoutdomain.Snapshot `json:"checkout"`
	Recommendations int                     `json:"recommendations"`
}

// GetSessionHandler handles session snapshot queries
type GetSessionHandler struct {
	repo domain.SessionRepository
}

// NewGetSessionHandler creates a new get session handler
func NewGetSessionHandler(repo domain.SessionRepository) *GetSessionHandler {
	return &GetSessionHandler{repo: repo}
}

// Handle executes the session snapshot query
func (h *GetSessionHandler) Handle(q GetSessionQuery) (*SessionSnapshot, error) {
	session, err := h.repo.FindByID(q.SessionID)
	if err != nil {
		return nil, err
	}

	return &SessionSnapshot{
		ID:              session.ID,
		User:            session.User(),
		View:            session.View(),
		ActiveQuery:     session.ActiveQuery(),
		CartCount:       session.Cart.Count(),
		CartTotal:       session.Cart.Total(),
		Checkout:        session.Checkout.Snapshot(),
		Recommendations: len(session.Recommendations()),
	}, nil
}
