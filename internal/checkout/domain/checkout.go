package domain

import (
	"errors"
	"fmt"
	"strings"
)

// State is a checkout step
type State string

// Checkout states
const (
	StateReview     State = "review"
	StatePayment    State = "payment"
	StateProcessing State = "processing"
	StateSuccess    State = "success"
)

// Event drives a checkout transition
type Event string

// Checkout events
const (
	EventSubmitContact  Event = "submit_contact"
	EventBack           Event = "back"
	EventSubmitPayment  Event = "submit_payment"
	EventPaymentSettled Event = "payment_settled"
	EventComplete       Event = "complete"
)

// ErrInvalidTransition is returned when an event does not apply to a state
var ErrInvalidTransition = errors.New("invalid checkout transition")

// Next is the pure transition table. It never touches timers or stores;
// the Machine layers those on top.
func Next(s State, e Event) (State, error) {
	switch {
	case s == StateReview && e == EventSubmitContact:
		return StatePayment, nil
	case s == StatePayment && e == EventBack:
		return StateReview, nil
	case s == StatePayment && e == EventSubmitPayment:
		return StateProcessing, nil
	case s == StateProcessing && e == EventPaymentSettled:
		return StateSuccess, nil
	case s == StateSuccess && e == EventComplete:
		return StateReview, nil
	}
	return s, fmt.Errorf("%w: %s on %s", ErrInvalidTransition, e, s)
}

// Card is the payment form input
type Card struct {
	Name   string `json:"name"`
	Number string `json:"number"`
	Expiry string `json:"expiry"`
	CVC    string `json:"cvc"`
}

// Normalize applies the form's input-time constraints: the card number
// keeps digits only and at most 16 of them, the CVC at most 3 characters.
func (c Card) Normalize() Card {
	var digits strings.Builder
	for _, r := range c.Number {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	number := digits.String()
	if len(number) > 16 {
		number = number[:16]
	}
	cvc := c.CVC
	if len(cvc) > 3 {
		cvc = cvc[:3]
	}
	return Card{Name: c.Name, Number: number, Expiry: c.Expiry, CVC: cvc}
}
