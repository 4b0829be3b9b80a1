// internal/domain/admin/store.go
package admin

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/your-org/zmart-backend/internal/domain/catalog"
	"github.com/your-org/zmart-backend/internal/domain/order"
	"github.com/your-org/zmart-backend/internal/domain/user"
)

// Store is the process-wide canonical data store: the catalog the storefront
// reads, the order book, and the customer accounts, all volatile and reset on
// restart. Mutations go through Dispatch, which applies the pure Reduce
// transition under a lock. Consumers receive the store by injection; there is
// no package-level singleton.
type Store struct {
	mu       sync.RWMutex
	state    State
	orderSeq int
	now      func() time.Time
}

// NewStore creates a store over the given initial state. The order id
// sequence resumes after the highest numeric suffix already present, so
// generated ids stay unique even after deletions.
func NewStore(initial State) *Store {
	return &Store{
		state:    initial,
		orderSeq: highestOrderSeq(initial.Orders),
		now:      time.Now,
	}
}

// NewSeededStore creates a store preloaded with the Z-Mart seed data.
func NewSeededStore() *Store {
	return NewStore(NewState(catalog.SeedProducts(), order.SeedOrders(), user.SeedAccounts()))
}

func highestOrderSeq(orders []order.Order) int {
	max := 0
	for _, o := range orders {
		if n, ok := parseOrderSeq(o.ID); ok && n > max {
			max = n
		}
	}
	return max
}

func parseOrderSeq(id string) (int, bool) {
	const prefix = "ORD-"
	if !strings.HasPrefix(id, prefix) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(id, prefix))
	if err != nil {
		return 0, false
	}
	return n, true
}

// Dispatch applies an action and returns the resulting state snapshot.
// AddProduct actions receive a creation date stamp and AddOrder actions an
// allocated id and date before the reducer runs.
func (s *Store) Dispatch(action Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch a := action.(type) {
	case AddProduct:
		a.Product.CreatedAt = dateOnly(s.now())
		action = a
	case AddOrder:
		s.orderSeq++
		a.Order.ID = order.FormatID(s.orderSeq)
		a.Order.Date = dateOnly(s.now())
		action = a
	}

	s.state = Reduce(s.state, action)
	return s.state
}

func dateOnly(t time.Time) time.Time {
	return t.UTC().Truncate(24 * time.Hour)
}

// State returns a snapshot of the current state. The slices are copies; the
// caller may not observe later mutations through them.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return State{
		Products: cloneProducts(s.state.Products),
		Orders:   cloneOrders(s.state.Orders),
		Users:    append([]user.Account(nil), s.state.Users...),
		Stats:    s.state.Stats,
	}
}

// Stats returns the current derived rollup.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Stats
}

// Products returns a snapshot of the catalog in its stored order.
func (s *Store) Products() []catalog.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneProducts(s.state.Products)
}

// ProductByID looks up a product.
func (s *Store) ProductByID(id int) (catalog.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.state.Products {
		if p.ID == id {
			return p.Clone(), nil
		}
	}
	return catalog.Product{}, ErrProductNotFound
}

// Orders returns a snapshot of the order book.
func (s *Store) Orders() []order.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneOrders(s.state.Orders)
}

// OrderByID looks up an order.
func (s *Store) OrderByID(id string) (order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.state.Orders {
		if o.ID == id {
			return o.Clone(), nil
		}
	}
	return order.Order{}, ErrOrderNotFound
}

// OrdersByEmail returns the orders placed under the given email address,
// stored order preserved.
func (s *Store) OrdersByEmail(email string) []order.Order {
	normalized := user.NormalizeEmail(email)
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]order.Order, 0)
	for _, o := range s.state.Orders {
		if user.NormalizeEmail(o.Email) == normalized {
			out = append(out, o.Clone())
		}
	}
	return out
}

// Accounts returns a snapshot of the customer accounts.
func (s *Store) Accounts() []user.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]user.Account(nil), s.state.Users...)
}

// SaveProduct replaces the stored product with the same id. Unlike the raw
// UpdateProduct action it reports a missing id to the caller, which the
// product API needs for its 404.
func (s *Store) SaveProduct(p catalog.Product) error {
	if _, err := s.ProductByID(p.ID); err != nil {
		return err
	}
	s.Dispatch(UpdateProduct{Product: p})
	return nil
}

// RemoveProduct deletes the product with the given id, reporting a missing
// id to the caller.
func (s *Store) RemoveProduct(id int) error {
	if _, err := s.ProductByID(id); err != nil {
		return err
	}
	s.Dispatch(DeleteProduct{ID: id})
	return nil
}

// PlaceOrder records a new order and returns it with its allocated id and
// date stamp.
func (s *Store) PlaceOrder(o order.Order) order.Order {
	state := s.Dispatch(AddOrder{Order: o})
	return state.Orders[len(state.Orders)-1].Clone()
}

// Sentinel errors for id lookups.
var (
	ErrProductNotFound = fmt.Errorf("product not found")
	ErrOrderNotFound   = fmt.Errorf("order not found")
)
