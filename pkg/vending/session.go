package vending

import (
	"fmt"

	"github.com/google/uuid"
)

// PaymentSession accumulates the coins a customer has inserted toward one
// item. The amount owed is frozen at creation, so an out-of-band price
// change cannot move the goalposts mid-purchase.
type PaymentSession struct {
	id          string
	item        *Item
	accumulated Coins
	totalNeeded AmountCents
}

func newPaymentSession(item *Item) *PaymentSession {
	return &PaymentSession{
		id:          uuid.NewString(),
		item:        item,
		accumulated: Coins{},
		totalNeeded: item.PriceCents(),
	}
}

// ID returns the opaque session identifier.
func (session *PaymentSession) ID() string {
	return session.id
}

// Item returns the item being purchased.
func (session *PaymentSession) Item() *Item {
	return session.item
}

// AccumulatedPayment returns a copy of the coins inserted so far.
func (session *PaymentSession) AccumulatedPayment() Coins {
	return session.accumulated.Clone()
}

// TotalNeeded returns the amount owed, frozen at session creation.
func (session *PaymentSession) TotalNeeded() AmountCents {
	return session.totalNeeded
}

// TotalPaid returns the summed value of the inserted coins.
func (session *PaymentSession) TotalPaid() AmountCents {
	return session.accumulated.Total()
}

// Remaining returns how much is still owed, never negative.
func (session *PaymentSession) Remaining() AmountCents {
	remaining := session.totalNeeded - session.TotalPaid()
	if remaining < 0 {
		return 0
	}
	return remaining
}

// SufficientFunds reports whether the inserted coins cover the price.
func (session *PaymentSession) SufficientFunds() bool {
	return session.TotalPaid() >= session.totalNeeded
}

// ChangeAmount returns the overpayment owed back, never negative.
func (session *PaymentSession) ChangeAmount() AmountCents {
	change := session.TotalPaid() - session.totalNeeded
	if change < 0 {
		return 0
	}
	return change
}

func (session *PaymentSession) addPayment(payment Coins) AmountCents {
	session.accumulated = session.accumulated.Merge(payment)
	return session.Remaining()
}

// SessionManager owns at most one active PaymentSession and exposes the
// purchase state machine: no session, active, then back to no session on
// completion or cancellation.
type SessionManager struct {
	current *PaymentSession
}

// NewSessionManager builds a manager with no active session.
func NewSessionManager() *SessionManager {
	return &SessionManager{}
}

// CurrentSession returns the active session, or nil.
func (manager *SessionManager) CurrentSession() *PaymentSession {
	return manager.current
}

// StartSession opens a session for the item. It fails if a session is
// already active (the existing session is never silently discarded) or if
// the item cannot be sold.
func (manager *SessionManager) StartSession(item *Item) (*PaymentSession, error) {
	if manager.current != nil {
		return nil, fmt.Errorf("%w: cancel or complete it first", ErrSessionAlreadyActive)
	}
	if !item.Available() {
		return nil, fmt.Errorf("%w: %s", ErrItemUnavailable, item.Name())
	}
	manager.current = newPaymentSession(item)
	return manager.current, nil
}

// AddPayment merges already-validated coins into the active session and
// reports whether the session now holds sufficient funds, plus the exact
// remaining amount when it does not.
func (manager *SessionManager) AddPayment(sessionID string, payment Coins) (bool, AmountCents, error) {
	session, err := manager.activeSession(sessionID)
	if err != nil {
		return false, 0, err
	}
	remaining := session.addPayment(payment)
	return session.SufficientFunds(), remaining, nil
}

// CompleteSession closes a sufficiently funded session and releases it to
// the caller for processing.
func (manager *SessionManager) CompleteSession(sessionID string) (*PaymentSession, error) {
	session, err := manager.activeSession(sessionID)
	if err != nil {
		return nil, err
	}
	if !session.SufficientFunds() {
		return nil, fmt.Errorf("%w: %d cents remaining", ErrInsufficientFunds, session.Remaining())
	}
	manager.current = nil
	return session, nil
}

// CancelSession closes the active session and returns the full accumulated
// payment for refunding, verbatim.
func (manager *SessionManager) CancelSession(sessionID string) (Coins, error) {
	session, err := manager.activeSession(sessionID)
	if err != nil {
		return nil, err
	}
	manager.current = nil
	return session.AccumulatedPayment(), nil
}

func (manager *SessionManager) activeSession(sessionID string) (*PaymentSession, error) {
	if manager.current == nil || manager.current.id != sessionID {
		return nil, ErrNoActiveSession
	}
	return manager.current, nil
}
