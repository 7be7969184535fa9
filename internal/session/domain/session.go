package domain

import (
	"errors"
	"sync"
	"time"

	cartdomain "github.com/bookhaven/storefront/internal/cart/domain"
	catalogdomain "github.com/bookhaven/storefront/internal/catalog/domain"
	checkoutdomain "github.com/bookhaven/storefront/internal/checkout/domain"
)

// User is the signed-in visitor. No credential is verified or stored;
// the record exists from login to logout and only in memory.
type User struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// ErrSessionNotFound is returned for unknown session ids
var ErrSessionNotFound = errors.New("session not found")

// Session is one client's storefront state: the active user, the cart,
// the checkout machine, the AI recommendation list, the active catalog
// filter, and the view state. Nothing here survives a process restart.
type Session struct {
	ID        string
	CreatedAt time.Time
	Cart      *cartdomain.Cart
	Checkout  *checkoutdomain.Machine

	mu              sync.RWMutex
	user            *User
	token           string
	view            ViewState
	activeQuery     string
	recommendations []catalogdomain.Book
	recommending    bool
}

// NewSession creates a session with an empty cart and a checkout machine
// whose completion clears the cart and dismisses the checkout surface.
func NewSession(id string, sched checkoutdomain.Scheduler) *Session {
	s := &Session{
		ID:        id,
		CreatedAt: time.Now(),
		Cart:      cartdomain.NewCart(),
	}
	s.Checkout = checkoutdomain.NewMachine(sched, func() {
		s.Cart.Clear()
		s.UpdateView(func(v ViewState) ViewState { return v.WithCheckout(false) })
	})
	return s
}

// User returns a copy of the active user, or nil when signed out
func (s *Session) User() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// SetUser signs the user in and records the session token
func (s *Session) SetUser(u User, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &u
	s.token = token
}

// ClearUser signs out unconditionally
func (s *Session) ClearUser() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.token = ""
}

// View returns the current view state
func (s *Session) View() ViewState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}

// UpdateView applies a pure view transition
func (s *Session) UpdateView(f func(ViewState) ViewState) ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = f(s.view)
	return s.view
}

// ActiveQuery returns the current catalog filter
func (s *Session) ActiveQuery() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeQuery
}

// SetActiveQuery records the catalog filter; the home action resets it
func (s *Session) SetActiveQuery(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeQuery = q
}

// Recommendations returns a copy of the session's AI recommendation list
func (s *Session) Recommendations() []catalogdomain.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]catalogdomain.Book, len(s.recommendations))
	copy(out, s.recommendations)
	return out
}

// RecommendationByID looks up an AI-sourced book. Recommended books live
// on the session, never in the canonical catalog, but they can still be
// added to the cart.
func (s *Session) RecommendationByID(id string) (*catalogdomain.Book, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.recommendations {
		if b.ID == id {
			book := b
			return &book, true
		}
	}
	return nil, false
}

// SetRecommendations replaces the recommendation list
func (s *Session) SetRecommendations(books []catalogdomain.Book) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recommendations = books
}

// ClearRecommendations empties the recommendation list
func (s *Session) ClearRecommendations() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recommendations = nil
}

// BeginRecommendation marks a recommendation request in flight. It
// reports false when one is already pending: re-submission is disabled
// until the prior request resolves.
func (s *Session) BeginRecommendation() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.recommending {
		return false
	}
	s.recommending = true
	return true
}

// EndRecommendation clears the in-flight mark
func (s *Session) EndRecommendation() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recommending = false
}

// SessionRepository defines the contract for session access
type SessionRepository interface {
	Create(session *Session) error
	FindByID(id string) (*Session, error)
	Delete(id string) error
	Count() (int, error)
}
