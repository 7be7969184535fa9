package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNext(t *testing.T) {
	tests := []struct {
		name    string
		state   State
		event   Event
		want    State
		wantErr bool
	}{
		{name: "review accepts contact", state: StateReview, event: EventSubmitContact, want: StatePayment},
		{name: "payment goes back", state: StatePayment, event: EventBack, want: StateReview},
		{name: "payment accepts submission", state: StatePayment, event: EventSubmitPayment, want: StateProcessing},
		{name: "processing settles", state: StateProcessing, event: EventPaymentSettled, want: StateSuccess},
		{name: "success completes", state: StateSuccess, event: EventComplete, want: StateReview},

		{name: "review rejects back", state: StateReview, event: EventBack, wantErr: true},
		{name: "review rejects payment", state: StateReview, event: EventSubmitPayment, wantErr: true},
		{name: "payment rejects contact", state: StatePayment, event: EventSubmitContact, wantErr: true},
		{name: "processing rejects back", state: StateProcessing, event: EventBack, wantErr: true},
		{name: "processing rejects complete", state: StateProcessing, event: EventComplete, wantErr: true},
		{name: "success rejects settle", state: StateSuccess, event: EventPaymentSettled, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Next(tt.state, tt.event)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTransition)
				// A rejected event leaves the state untouched
				assert.Equal(t, tt.state, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCardNormalize(t *testing.T) {
	tests := []struct {
		name       string
		card       Card
		wantNumber string
		wantCVC    string
	}{
		{
			name:       "digits kept as-is",
			card:       Card{Number: "4242424242424242", CVC: "123"},
			wantNumber: "4242424242424242",
			wantCVC:    "123",
		},
		{
			name:       "separators stripped",
			card:       Card{Number: "4242 4242-4242 4242", CVC: "123"},
			wantNumber: "4242424242424242",
			wantCVC:    "123",
		},
		{
			name:       "number truncated to sixteen digits",
			card:       Card{Number: "42424242424242429999", CVC: "123"},
			wantNumber: "4242424242424242",
			wantCVC:    "123",
		},
		{
			name:       "cvc truncated to three",
			card:       Card{Number: "4242", CVC: "12345"},
			wantNumber: "4242",
			wantCVC:    "123",
		},
		{
			name:       "letters dropped from number",
			card:       Card{Number: "42ab42", CVC: "9"},
			wantNumber: "4242",
			wantCVC:    "9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.card.Normalize()
			assert.Equal(t, tt.wantNumber, got.Number)
			assert.Equal(t, tt.wantCVC, got.CVC)
			assert.Equal(t, tt.card.Name, got.Name)
			assert.Equal(t, tt.card.Expiry, got.Expiry)
		})
	}
}
