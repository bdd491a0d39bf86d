package checkout

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrNotFound is returned for an unknown or already-closed session.
	ErrNotFound = errors.New("checkout: session not found")
	// ErrCouponApplied is returned when a session that already holds a
	// successfully applied coupon receives another one. Discounts do not
	// stack within a checkout.
	ErrCouponApplied = errors.New("checkout: coupon already applied")
)

// Session is the view state of one open checkout screen: the product being
// bought, the chosen size, a price snapshot, and at most one applied
// coupon. It lives only as long as the checkout is open and is never
// persisted.
type Session struct {
	ID        string          `json:"session_id"`
	ProductID int64           `json:"product_id"`
	Size      int             `json:"size"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Coupon    string          `json:"coupon,omitempty"`
	Discount  int             `json:"discount"`
	Total     decimal.Decimal `json:"total"`
}

// Store keeps live checkout sessions in memory. Sessions are independent;
// the lock only guards the map itself.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewStore returns an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]Session)}
}

// Create opens a session for one product/size pick. The total starts at
// the undiscounted unit price.
func (s *Store) Create(productID int64, size int, unitPrice decimal.Decimal) Session {
	session := Session{
		ID:        uuid.NewString(),
		ProductID: productID,
		Size:      size,
		UnitPrice: unitPrice,
		Total:     unitPrice,
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()
	return session
}

// Get returns a live session.
func (s *Store) Get(id string) (Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return Session{}, ErrNotFound
	}
	return session, nil
}

// ApplyCoupon records a successful coupon application. A session accepts
// exactly one: a second successful code cannot replace or stack on the
// first.
func (s *Store) ApplyCoupon(id, code string, discount int, total decimal.Decimal) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	if session.Coupon != "" {
		return Session{}, ErrCouponApplied
	}

	session.Coupon = code
	session.Discount = discount
	session.Total = total
	s.sessions[id] = session
	return session, nil
}

// Close discards a session, normally after its order was accepted
// upstream. Closing an unknown id is a no-op.
func (s *Store) Close(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}
