package command

import (
	checkoutdomain "github.com/bookhaven/storefront/internal/checkout/domain"
	sessiondomain "github.com/bookhaven/storefront/internal/session/domain"
)

// SubmitPaymentCommand carries the payment form. Field constraints are
// applied as input-time normalization, not a separate validation step.
type SubmitPaymentCommand struct {
	SessionID  string
	CardName   string
	CardNumber string
	Expiry     string
	CVC        string
}

// SubmitPaymentHandler handles payment submission
type SubmitPaymentHandler struct {
	sessions sessiondomain.SessionRepository
}

// NewSubmitPaymentHandler creates a new submit payment handler
func NewSubmitPaymentHandler(sessions sessiondomain.SessionRepository) *SubmitPaymentHandler {
	return &SubmitPaymentHandler{sessions: sessions}
}

// Handle executes the payment submission; settlement and completion are
// timer-driven from here on
func (h *SubmitPaymentHandler) Handle(cmd SubmitPaymentCommand) error {
	session, err := h.sessions.FindByID(cmd.SessionID)
	if err != nil {
		return err
	}
	return session.Checkout.SubmitPayment(checkoutdomain.Card{
		Name:   cmd.CardName,
		Number: cmd.CardNumber,
		Expiry: cmd.Expiry,
		CVC:    cmd.CVC,
	})
}
