package domain

// ViewState is the session's surface visibility as one immutable value.
// Every transition is a pure function returning the next value, so each
// visibility change is testable in isolation.
type ViewState struct {
	CartOpen       bool   `json:"cartOpen"`
	LoginOpen      bool   `json:"loginOpen"`
	CheckoutOpen   bool   `json:"checkoutOpen"`
	SelectedBookID string `json:"selectedBookId,omitempty"`
	SamplingBookID string `json:"samplingBookId,omitempty"`
}

// WithCart returns the view with the cart drawer open or closed
func (v ViewState) WithCart(open bool) ViewState {
	v.CartOpen = open
	return v
}

// WithLogin returns the view with the login modal open or closed
func (v ViewState) WithLogin(open bool) ViewState {
	v.LoginOpen = open
	return v
}

// WithCheckout returns the view with the checkout surface open or closed
func (v ViewState) WithCheckout(open bool) ViewState {
	v.CheckoutOpen = open
	return v
}

// WithSelectedBook returns the view with the details modal showing the
// given book; the empty id closes it.
func (v ViewState) WithSelectedBook(id string) ViewState {
	v.SelectedBookID = id
	return v
}

// WithSamplingBook returns the view with the sample reader showing the
// given book; the empty id closes it.
func (v ViewState) WithSamplingBook(id string) ViewState {
	v.SamplingBookID = id
	return v
}
