// internal/domain/cart/service.go
package cart

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/your-org/zmart-backend/internal/domain/catalog"
	"github.com/your-org/zmart-backend/internal/domain/pricing"
)

var (
	// ErrCartEmpty indicates that the cart has no items.
	ErrCartEmpty = errors.New("cart is empty")

	// ErrItemNotFound indicates that a cart item was not found.
	ErrItemNotFound = errors.New("item not found in cart")
)

// Catalog is the product lookup the cart needs when adding new lines.
type Catalog interface {
	ProductByID(id int) (catalog.Product, error)
}

// Service handles cart business logic. Carts are held in process memory,
// keyed by owner key, and guest carts expire after the configured TTL.
type Service struct {
	catalog Catalog
	ttl     time.Duration

	mu    sync.RWMutex
	carts map[string]*Cart
	now   func() time.Time
}

// NewService creates a new cart service. ttl bounds the lifetime of guest
// carts; carts of authenticated users do not expire.
func NewService(cat Catalog, ttl time.Duration) *Service {
	return &Service{
		catalog: cat,
		ttl:     ttl,
		carts:   make(map[string]*Cart),
		now:     time.Now,
	}
}

// UserKey returns the cart key for an authenticated user.
func UserKey(userID int64) string {
	return fmt.Sprintf("user:%d", userID)
}

// SessionKey returns the cart key for a guest session.
func SessionKey(sessionID string) string {
	return "session:" + sessionID
}

func isGuestKey(key string) bool {
	return strings.HasPrefix(key, "session:")
}

// Get returns the cart for the given key with computed totals. A missing or
// expired cart yields an empty response, not an error.
func (s *Service) Get(key string) (*Response, error) {
	s.mu.RLock()
	c, ok := s.carts[key]
	s.mu.RUnlock()
	if !ok || s.expired(c) {
		now := s.now()
		return s.respond(&Cart{Key: key, Items: []Line{}, CreatedAt: now, UpdatedAt: now}), nil
	}
	return s.respond(c), nil
}

// AddItem adds a product to the cart. Adding a product already in the cart
// increments its quantity; the line keeps the snapshot taken on first add.
func (s *Service) AddItem(key string, req *AddItemRequest) (*Response, error) {
	product, err := s.catalog.ProductByID(req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(key)
	if line := findLine(c, req.ProductID); line != nil {
		line.Quantity += req.Quantity
	} else {
		image := ""
		if len(product.Images) > 0 {
			image = product.Images[0]
		}
		c.Items = append(c.Items, Line{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Image:     image,
			Quantity:  req.Quantity,
			AddedAt:   s.now(),
		})
	}
	s.touch(c)
	return s.respond(c), nil
}

// UpdateQuantity sets the quantity of a cart line. A quantity of zero or
// less removes the line.
func (s *Service) UpdateQuantity(key string, productID int, req *UpdateItemRequest) (*Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(key)
	line := findLine(c, productID)
	if line == nil {
		return nil, ErrItemNotFound
	}
	if req.Quantity <= 0 {
		removeLine(c, productID)
	} else {
		line.Quantity = req.Quantity
	}
	s.touch(c)
	return s.respond(c), nil
}

// RemoveItem removes a product from the cart.
func (s *Service) RemoveItem(key string, productID int) (*Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(key)
	if findLine(c, productID) == nil {
		return nil, ErrItemNotFound
	}
	removeLine(c, productID)
	s.touch(c)
	return s.respond(c), nil
}

// Clear removes all items from the cart.
func (s *Service) Clear(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, key)
	return nil
}

// Items returns a copy of the cart's lines, for checkout.
func (s *Service) Items(key string) ([]Line, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.carts[key]
	if !ok || s.expired(c) || len(c.Items) == 0 {
		return nil, ErrCartEmpty
	}
	items := make([]Line, len(c.Items))
	copy(items, c.Items)
	return items, nil
}

// MergeGuestCart folds a guest session cart into a user cart after login.
// Quantities of overlapping lines are summed; the user cart's snapshots win.
func (s *Service) MergeGuestCart(sessionID string, userID int64) error {
	guestKey := SessionKey(sessionID)
	userKey := UserKey(userID)

	s.mu.Lock()
	defer s.mu.Unlock()

	guest, ok := s.carts[guestKey]
	if !ok || s.expired(guest) || len(guest.Items) == 0 {
		return nil
	}
	c := s.cart(userKey)
	for _, item := range guest.Items {
		if line := findLine(c, item.ProductID); line != nil {
			line.Quantity += item.Quantity
		} else {
			c.Items = append(c.Items, item)
		}
	}
	s.touch(c)
	delete(s.carts, guestKey)
	return nil
}

// cart returns the live cart for key, creating it if absent or expired.
// Caller must hold the write lock.
func (s *Service) cart(key string) *Cart {
	if c, ok := s.carts[key]; ok && !s.expired(c) {
		return c
	}
	now := s.now()
	c := &Cart{Key: key, Items: []Line{}, CreatedAt: now, UpdatedAt: now}
	s.carts[key] = c
	return c
}

// touch bumps UpdatedAt and slides the guest expiry window.
func (s *Service) touch(c *Cart) {
	c.UpdatedAt = s.now()
	if isGuestKey(c.Key) {
		c.ExpiresAt = c.UpdatedAt.Add(s.ttl)
	}
}

func (s *Service) expired(c *Cart) bool {
	return !c.ExpiresAt.IsZero() && s.now().After(c.ExpiresAt)
}

func (s *Service) respond(c *Cart) *Response {
	items := make([]Line, len(c.Items))
	copy(items, c.Items)

	totals := pricing.ComputeTotals(PricingLines(items), pricing.MethodCartEstimate)
	quantity := 0
	for _, item := range items {
		quantity += item.Quantity
	}
	return &Response{
		Items: items,
		Totals: Totals{
			ItemCount:     len(items),
			TotalQuantity: quantity,
			Totals:        totals,
		},
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func findLine(c *Cart, productID int) *Line {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

func removeLine(c *Cart, productID int) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}
