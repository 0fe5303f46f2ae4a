package store

import (
	"errors"
	"sync"
)

var (
	// ErrInvalidItem rejects malformed local input (missing id, negative price).
	ErrInvalidItem = errors.New("cart: invalid line item")
	// ErrRestaurantMismatch means the cart already holds items from another
	// restaurant; the caller has to run the switch protocol first.
	ErrRestaurantMismatch = errors.New("cart: cart belongs to another restaurant")
	// ErrNoPendingSwitch means ConfirmSwitch was called with nothing pending.
	ErrNoPendingSwitch = errors.New("cart: no restaurant switch pending")
)

// Line is one cart entry, unique by item id. A line always has
// Quantity >= 1; a zeroed line is removed, never kept.
type Line struct {
	ItemID    int64   `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image,omitempty"`
}

// Cart is the in-progress order for one restaurant. Switching restaurants
// destroys the cart, so the switch runs as an explicit two-step protocol:
// RequestSwitch records the target, ConfirmSwitch clears and rebinds,
// CancelSwitch leaves the cart untouched.
type Cart struct {
	RestaurantID  int64  `json:"restaurantId"`
	Lines         []Line `json:"items"`
	PendingSwitch *int64 `json:"pendingSwitch,omitempty"`
}

// Total is the derived order value, recomputed on every read.
func (ct *Cart) Total() float64 {
	var sum float64
	for _, ln := range ct.Lines {
		sum += ln.UnitPrice * float64(ln.Quantity)
	}
	return sum
}

// CartStore owns one active cart per customer.
type CartStore struct {
	mu    sync.Mutex
	carts map[uint]*Cart
}

func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[uint]*Cart)}
}

func (s *CartStore) cart(customerID uint) *Cart {
	ct, ok := s.carts[customerID]
	if !ok {
		ct = &Cart{}
		s.carts[customerID] = ct
	}
	return ct
}

// Get returns a snapshot of the customer's cart.
func (s *CartStore) Get(customerID uint) Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	ct := s.cart(customerID)
	out := Cart{RestaurantID: ct.RestaurantID, Lines: make([]Line, len(ct.Lines))}
	copy(out.Lines, ct.Lines)
	if ct.PendingSwitch != nil {
		target := *ct.PendingSwitch
		out.PendingSwitch = &target
	}
	return out
}

// AddItem merges an item into the cart: a line with the same id gets its
// quantity bumped by one (every other field of the passed item is ignored),
// anything else is appended with quantity 1.
func (s *CartStore) AddItem(customerID uint, restaurantID int64, item Line) error {
	if item.ItemID <= 0 || restaurantID <= 0 || item.UnitPrice < 0 {
		return ErrInvalidItem
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ct := s.cart(customerID)
	if len(ct.Lines) > 0 && ct.RestaurantID != restaurantID {
		return ErrRestaurantMismatch
	}
	ct.RestaurantID = restaurantID

	for i := range ct.Lines {
		if ct.Lines[i].ItemID == item.ItemID {
			ct.Lines[i].Quantity++
			return nil
		}
	}
	item.Quantity = 1
	ct.Lines = append(ct.Lines, item)
	return nil
}

// UpdateQuantity sets a line's quantity; zero or negative removes the line.
// Unknown item ids are a no-op.
func (s *CartStore) UpdateQuantity(customerID uint, itemID int64, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ct := s.cart(customerID)
	if qty <= 0 {
		ct.remove(itemID)
		return
	}
	for i := range ct.Lines {
		if ct.Lines[i].ItemID == itemID {
			ct.Lines[i].Quantity = qty
			return
		}
	}
}

// RemoveItem drops a line if present; no-op otherwise.
func (s *CartStore) RemoveItem(customerID uint, itemID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(customerID).remove(itemID)
}

func (ct *Cart) remove(itemID int64) {
	for i := range ct.Lines {
		if ct.Lines[i].ItemID == itemID {
			ct.Lines = append(ct.Lines[:i], ct.Lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart unconditionally, dropping the restaurant binding
// and any pending switch with it.
func (s *CartStore) Clear(customerID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ct := s.cart(customerID)
	ct.RestaurantID = 0
	ct.Lines = nil
	ct.PendingSwitch = nil
}

// Total recomputes the cart value on read.
func (s *CartStore) Total(customerID uint) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(customerID).Total()
}

// RequestSwitch starts the destructive restaurant switch. It reports
// whether a confirmation is required; an empty cart, or one already bound
// to the target, rebinds immediately.
func (s *CartStore) RequestSwitch(customerID uint, restaurantID int64) (bool, error) {
	if restaurantID <= 0 {
		return false, ErrInvalidItem
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ct := s.cart(customerID)
	if len(ct.Lines) == 0 || ct.RestaurantID == restaurantID {
		ct.RestaurantID = restaurantID
		ct.PendingSwitch = nil
		return false, nil
	}
	ct.PendingSwitch = &restaurantID
	return true, nil
}

// ConfirmSwitch executes a pending switch: clears the cart and rebinds it
// to the requested restaurant.
func (s *CartStore) ConfirmSwitch(customerID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ct := s.cart(customerID)
	if ct.PendingSwitch == nil {
		return ErrNoPendingSwitch
	}
	ct.RestaurantID = *ct.PendingSwitch
	ct.Lines = nil
	ct.PendingSwitch = nil
	return nil
}

// CancelSwitch discards a pending switch, leaving the cart as it was.
func (s *CartStore) CancelSwitch(customerID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(customerID).PendingSwitch = nil
}
