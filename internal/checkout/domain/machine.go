package domain

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Simulated payment timings: processing settles after ProcessingDelay,
// the success screen dwells for SuccessDwell before the surface resets.
const (
	ProcessingDelay = 2 * time.Second
	SuccessDwell    = 3 * time.Second
)

// Checkout gate errors. These are UI gates, not recoverable error states.
var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrEmailRequired = errors.New("contact email is required")
	ErrNotOpen       = errors.New("checkout is not open")
	ErrProcessing    = errors.New("payment is processing")
)

// Scheduler abstracts timer scheduling so the machine's auto-transitions
// can be tested apart from real time.
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}

// NewScheduler returns a Scheduler backed by time.AfterFunc
func NewScheduler() Scheduler {
	return realScheduler{}
}

// Snapshot is a point-in-time read of the machine
type Snapshot struct {
	Open          bool   `json:"open"`
	State         State  `json:"state"`
	Email         string `json:"email,omitempty"`
	TransactionID string `json:"transactionId,omitempty"`
}

// Machine runs one session's checkout flow. The transition table is the
// pure Next function; the machine adds the gates, the simulated payment
// timers, and the completion side effect (clearing the cart and
// dismissing the surface, supplied as onComplete).
type Machine struct {
	mu         sync.Mutex
	open       bool
	state      State
	email      string
	card       Card
	txnID      string
	run        uint64
	sched      Scheduler
	onComplete func()
}

// NewMachine creates a checkout machine in the review state
func NewMachine(sched Scheduler, onComplete func()) *Machine {
	return &Machine{
		state:      StateReview,
		sched:      sched,
		onComplete: onComplete,
	}
}

// Open opens the checkout surface. A checkout cannot start on an empty
// cart: success must imply the cart was non-empty at review time.
func (m *Machine) Open(cartEmpty bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cartEmpty {
		return ErrEmptyCart
	}
	m.open = true
	return nil
}

// SubmitContact moves review to payment, gated on a non-empty email.
// A violation keeps the state and surfaces a blocking notice upstream.
func (m *Machine) SubmitContact(email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.open {
		return ErrNotOpen
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmailRequired
	}
	next, err := Next(m.state, EventSubmitContact)
	if err != nil {
		return err
	}
	m.state = next
	m.email = email
	return nil
}

// Back returns from payment to review
func (m *Machine) Back() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.open {
		return ErrNotOpen
	}
	next, err := Next(m.state, EventBack)
	if err != nil {
		return err
	}
	m.state = next
	return nil
}

// SubmitPayment moves payment to processing and starts the simulated
// settlement timer. There is no declined path.
func (m *Machine) SubmitPayment(card Card) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.open {
		return ErrNotOpen
	}
	next, err := Next(m.state, EventSubmitPayment)
	if err != nil {
		return err
	}
	m.state = next
	m.card = card.Normalize()

	run := m.run
	m.sched.AfterFunc(ProcessingDelay, func() { m.settle(run) })
	return nil
}

// settle fires after ProcessingDelay: processing -> success, then the
// dwell timer. A stale run means the machine was reset in the meantime.
func (m *Machine) settle(run uint64) {
	m.mu.Lock()
	if run != m.run {
		m.mu.Unlock()
		return
	}
	next, err := Next(m.state, EventPaymentSettled)
	if err != nil {
		m.mu.Unlock()
		return
	}
	m.state = next
	m.txnID = uuid.NewString()
	m.sched.AfterFunc(SuccessDwell, func() { m.complete(run) })
	m.mu.Unlock()
}

// complete fires after SuccessDwell: success -> review, surface closed,
// then the onComplete side effect (the single cart Clear call site).
func (m *Machine) complete(run uint64) {
	m.mu.Lock()
	if run != m.run {
		m.mu.Unlock()
		return
	}
	next, err := Next(m.state, EventComplete)
	if err != nil {
		m.mu.Unlock()
		return
	}
	m.state = next
	m.reset()
	done := m.onComplete
	m.mu.Unlock()

	if done != nil {
		done()
	}
}

// Dismiss closes the checkout surface. Dismissal is refused while a
// payment is processing; dismissal on the success screen completes the
// order immediately instead of abandoning it.
func (m *Machine) Dismiss() error {
	m.mu.Lock()

	if m.state == StateProcessing {
		m.mu.Unlock()
		return ErrProcessing
	}
	if m.state == StateSuccess {
		m.state = StateReview
		m.reset()
		done := m.onComplete
		m.mu.Unlock()
		if done != nil {
			done()
		}
		return nil
	}
	m.state = StateReview
	m.reset()
	m.mu.Unlock()
	return nil
}

// reset clears per-run data; callers hold the lock
func (m *Machine) reset() {
	m.open = false
	m.card = Card{}
	m.txnID = ""
	m.run++
}

// Snapshot returns the current machine state
func (m *Machine) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	return Snapshot{
		Open:          m.open,
		State:         m.state,
		Email:         m.email,
		TransactionID: m.txnID,
	}
}
