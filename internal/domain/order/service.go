// internal/domain/order/service.go
package order

import (
	"errors"
	"fmt"
	"strings"

	"github.com/your-org/zmart-backend/internal/domain/cart"
	"github.com/your-org/zmart-backend/internal/domain/pricing"
	"github.com/your-org/zmart-backend/internal/domain/user"
)

var (
	// ErrEmptyCart indicates checkout was attempted with no cart items.
	ErrEmptyCart = errors.New("cannot checkout with empty cart")

	// ErrInvalidShippingMethod indicates an unknown shipping method.
	ErrInvalidShippingMethod = errors.New("invalid shipping method")
)

// Store is the order side of the admin state store.
type Store interface {
	PlaceOrder(o Order) Order
	Orders() []Order
	OrderByID(id string) (Order, error)
	OrdersByEmail(email string) []Order
}

// Service handles checkout and order queries.
type Service struct {
	store Store
	cart  *cart.Service
}

// NewService creates a new order service.
func NewService(store Store, cartService *cart.Service) *Service {
	return &Service{store: store, cart: cartService}
}

// CheckoutRequest represents an order placement request. Card details are
// accepted for form parity but never charged or stored.
type CheckoutRequest struct {
	FirstName      string `json:"first_name" binding:"required"`
	LastName       string `json:"last_name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Address        string `json:"address" binding:"required"`
	City           string `json:"city" binding:"required"`
	PostalCode     string `json:"postal_code" binding:"required"`
	ShippingMethod string `json:"shipping_method"`
}

// CheckoutResponse is the placed order plus its price breakdown.
type CheckoutResponse struct {
	Order  Order          `json:"order"`
	Totals pricing.Totals `json:"totals"`
}

// Checkout places an order from the cart identified by cartKey. The order
// total uses the checkout shipping policy for the requested method, the cart
// is cleared on success, and the order starts in StatusPending.
func (s *Service) Checkout(cartKey string, req *CheckoutRequest) (*CheckoutResponse, error) {
	method, err := pricing.ParseShippingMethod(req.ShippingMethod)
	if err != nil {
		return nil, ErrInvalidShippingMethod
	}
	if method == pricing.MethodCartEstimate {
		method = pricing.MethodStandard
	}

	items, err := s.cart.Items(cartKey)
	if err != nil {
		return nil, ErrEmptyCart
	}

	totals := pricing.ComputeTotals(cart.PricingLines(items), method)

	orderItems := make([]Item, len(items))
	for i, item := range items {
		orderItems[i] = Item{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
	}

	placed := s.store.PlaceOrder(Order{
		Customer:        strings.TrimSpace(req.FirstName + " " + req.LastName),
		Email:           user.NormalizeEmail(req.Email),
		Total:           totals.Total,
		Status:          StatusPending,
		Items:           orderItems,
		ShippingAddress: fmt.Sprintf("%s, %s %s", req.Address, req.City, req.PostalCode),
	})

	if err := s.cart.Clear(cartKey); err != nil {
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}
	return &CheckoutResponse{Order: placed, Totals: totals}, nil
}

// ListRequest filters an account's order history.
type ListRequest struct {
	Status string `form:"status"`
	Search string `form:"search"`
}

// ListResponse is a filtered order history.
type ListResponse struct {
	Orders []Order `json:"orders"`
	Count  int     `json:"count"`
}

// ListByEmail returns the orders belonging to email, newest first, filtered
// by status and by a case-insensitive search over order id and item names.
func (s *Service) ListByEmail(email string, req *ListRequest) (*ListResponse, error) {
	if req.Status != "" && !Status(req.Status).IsValid() {
		return nil, fmt.Errorf("invalid order status: %s", req.Status)
	}

	orders := s.store.OrdersByEmail(user.NormalizeEmail(email))
	filtered := make([]Order, 0, len(orders))
	search := strings.ToLower(req.Search)
	for _, o := range orders {
		if req.Status != "" && o.Status != Status(req.Status) {
			continue
		}
		if search != "" && !orderMatches(o, search) {
			continue
		}
		filtered = append(filtered, o)
	}
	return &ListResponse{Orders: filtered, Count: len(filtered)}, nil
}

// Get returns the order with the given id if it belongs to email.
func (s *Service) Get(id, email string) (*Order, error) {
	o, err := s.store.OrderByID(id)
	if err != nil {
		return nil, err
	}
	if o.Email != user.NormalizeEmail(email) {
		return nil, errors.New("order not found")
	}
	return &o, nil
}

func orderMatches(o Order, search string) bool {
	if strings.Contains(strings.ToLower(o.ID), search) {
		return true
	}
	for _, item := range o.Items {
		if strings.Contains(strings.ToLower(item.Name), search) {
			return true
		}
	}
	return false
}
