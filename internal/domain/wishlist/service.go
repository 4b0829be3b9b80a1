// internal/domain/wishlist/service.go
package wishlist

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/your-org/zmart-backend/internal/domain/cart"
	"github.com/your-org/zmart-backend/internal/domain/catalog"
)

var (
	// ErrItemNotFound indicates the product is not on the wishlist.
	ErrItemNotFound = errors.New("item not found in wishlist")

	// ErrAlreadySaved indicates the product is already on the wishlist.
	ErrAlreadySaved = errors.New("item already in wishlist")
)

// Catalog is the product lookup the wishlist needs when saving items.
type Catalog interface {
	ProductByID(id int) (catalog.Product, error)
}

// Service handles wishlist business logic. Wishlists are held in process
// memory keyed by owner key; each product appears at most once.
type Service struct {
	catalog Catalog
	cart    *cart.Service

	mu    sync.RWMutex
	lists map[string]*Wishlist
	now   func() time.Time
}

// NewService creates a new wishlist service.
func NewService(cat Catalog, cartService *cart.Service) *Service {
	return &Service{
		catalog: cat,
		cart:    cartService,
		lists:   make(map[string]*Wishlist),
		now:     time.Now,
	}
}

// Get returns the wishlist for the given key. A missing wishlist yields an
// empty response, not an error.
func (s *Service) Get(key string) (*Response, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, ok := s.lists[key]
	if !ok {
		return &Response{Items: []Item{}}, nil
	}
	return respond(w), nil
}

// AddItem saves a product to the wishlist. Saving a product that is already
// on the list fails with ErrAlreadySaved.
func (s *Service) AddItem(key string, req *AddItemRequest) (*Response, error) {
	product, err := s.catalog.ProductByID(req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.lists[key]
	if !ok {
		w = &Wishlist{Key: key, Items: []Item{}}
		s.lists[key] = w
	}
	if findItem(w, req.ProductID) != nil {
		return nil, ErrAlreadySaved
	}
	image := ""
	if len(product.Images) > 0 {
		image = product.Images[0]
	}
	w.Items = append(w.Items, Item{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Image:     image,
		InStock:   product.InStock,
		AddedAt:   s.now(),
	})
	w.UpdatedAt = s.now()
	return respond(w), nil
}

// RemoveItem removes a product from the wishlist.
func (s *Service) RemoveItem(key string, productID int) (*Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.lists[key]
	if !ok || findItem(w, productID) == nil {
		return nil, ErrItemNotFound
	}
	removeItem(w, productID)
	w.UpdatedAt = s.now()
	return respond(w), nil
}

// Contains reports whether the product is on the wishlist.
func (s *Service) Contains(key string, productID int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, ok := s.lists[key]
	return ok && findItem(w, productID) != nil
}

// MoveToCart moves a wishlist item into the cart with quantity one and
// removes it from the wishlist. The cart takes a fresh catalog snapshot.
func (s *Service) MoveToCart(key string, productID int) (*Response, error) {
	s.mu.Lock()
	w, ok := s.lists[key]
	if !ok || findItem(w, productID) == nil {
		s.mu.Unlock()
		return nil, ErrItemNotFound
	}
	s.mu.Unlock()

	if _, err := s.cart.AddItem(key, &cart.AddItemRequest{ProductID: productID, Quantity: 1}); err != nil {
		return nil, fmt.Errorf("failed to add item to cart: %w", err)
	}
	return s.RemoveItem(key, productID)
}

// Clear removes all items from the wishlist.
func (s *Service) Clear(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.lists, key)
	return nil
}

func respond(w *Wishlist) *Response {
	items := make([]Item, len(w.Items))
	copy(items, w.Items)
	return &Response{Items: items, ItemCount: len(items), UpdatedAt: w.UpdatedAt}
}

func findItem(w *Wishlist, productID int) *Item {
	for i := range w.Items {
		if w.Items[i].ProductID == productID {
			return &w.Items[i]
		}
	}
	return nil
}

func removeItem(w *Wishlist, productID int) {
	for i := range w.Items {
		if w.Items[i].ProductID == productID {
			w.Items = append(w.Items[:i], w.Items[i+1:]...)
			return
		}
	}
}
