// internal/domain/order/service_test.go
package order

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/zmart-backend/internal/domain/cart"
	"github.com/your-org/zmart-backend/internal/domain/catalog"
)

type fakeStore struct {
	orders []Order
	seq    int
}

func (f *fakeStore) PlaceOrder(o Order) Order {
	f.seq++
	o.ID = FormatID(f.seq)
	o.Date = time.Now().UTC().Truncate(24 * time.Hour)
	f.orders = append(f.orders, o)
	return o.Clone()
}

func (f *fakeStore) Orders() []Order {
	return append([]Order(nil), f.orders...)
}

func (f *fakeStore) OrderByID(id string) (Order, error) {
	for _, o := range f.orders {
		if o.ID == id {
			return o.Clone(), nil
		}
	}
	return Order{}, errors.New("order not found")
}

func (f *fakeStore) OrdersByEmail(email string) []Order {
	out := make([]Order, 0)
	for _, o := range f.orders {
		if o.Email == email {
			out = append(out, o.Clone())
		}
	}
	return out
}

type fakeCatalog struct{}

func (fakeCatalog) ProductByID(id int) (catalog.Product, error) {
	switch id {
	case 1:
		return catalog.Product{ID: 1, Name: "Headphones", Price: 55999, InStock: true}, nil
	case 2:
		return catalog.Product{ID: 2, Name: "Socks", Price: 1349, InStock: true}, nil
	}
	return catalog.Product{}, errors.New("product not found")
}

func newTestService(t *testing.T) (*Service, *fakeStore, *cart.Service, string) {
	t.Helper()
	store := &fakeStore{}
	cartService := cart.NewService(fakeCatalog{}, 24*time.Hour)
	key := cart.UserKey(42)
	return NewService(store, cartService), store, cartService, key
}

func validCheckout() *CheckoutRequest {
	return &CheckoutRequest{
		FirstName:      "John",
		LastName:       "Doe",
		Email:          "John@Zmart.com",
		Address:        "123 Main St",
		City:           "Karachi",
		PostalCode:     "74000",
		ShippingMethod: "standard",
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	svc, _, _, key := newTestService(t)

	_, err := svc.Checkout(key, validCheckout())
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckoutInvalidShippingMethod(t *testing.T) {
	svc, _, _, key := newTestService(t)

	req := validCheckout()
	req.ShippingMethod = "overnight"
	_, err := svc.Checkout(key, req)
	assert.ErrorIs(t, err, ErrInvalidShippingMethod)
}

func TestCheckoutPlacesOrderAndClearsCart(t *testing.T) {
	svc, store, cartService, key := newTestService(t)

	_, err := cartService.AddItem(key, &cart.AddItemRequest{ProductID: 1, Quantity: 1})
	require.NoError(t, err)
	_, err = cartService.AddItem(key, &cart.AddItemRequest{ProductID: 2, Quantity: 2})
	require.NoError(t, err)

	resp, err := svc.Checkout(key, validCheckout())
	require.NoError(t, err)

	// 55999 + 2*1349 = 58697 subtotal, 1500 standard shipping, 17% GST on
	// the subtotal only.
	subtotal := decimal.NewFromInt(58697)
	tax := subtotal.Mul(decimal.RequireFromString("0.17"))
	wantTotal := subtotal.Add(decimal.NewFromInt(1500)).Add(tax)

	assert.Equal(t, "ORD-001", resp.Order.ID)
	assert.Equal(t, "John Doe", resp.Order.Customer)
	assert.Equal(t, "john@zmart.com", resp.Order.Email, "email is normalized")
	assert.Equal(t, StatusPending, resp.Order.Status)
	assert.True(t, resp.Order.Total.Equal(wantTotal))
	require.Len(t, resp.Order.Items, 2)
	assert.Equal(t, "Headphones", resp.Order.Items[0].Name)

	require.Len(t, store.orders, 1)

	cartResp, err := cartService.Get(key)
	require.NoError(t, err)
	assert.Empty(t, cartResp.Items, "cart is cleared after checkout")
}

func TestCheckoutExpressFee(t *testing.T) {
	svc, _, cartService, key := newTestService(t)

	_, err := cartService.AddItem(key, &cart.AddItemRequest{ProductID: 2, Quantity: 1})
	require.NoError(t, err)

	req := validCheckout()
	req.ShippingMethod = "express"
	resp, err := svc.Checkout(key, req)
	require.NoError(t, err)

	assert.True(t, resp.Totals.Shipping.Equal(decimal.NewFromInt(4500)))
}

func TestCheckoutDefaultsToStandard(t *testing.T) {
	svc, _, cartService, key := newTestService(t)

	_, err := cartService.AddItem(key, &cart.AddItemRequest{ProductID: 2, Quantity: 1})
	require.NoError(t, err)

	req := validCheckout()
	req.ShippingMethod = ""
	resp, err := svc.Checkout(key, req)
	require.NoError(t, err)

	assert.True(t, resp.Totals.Shipping.Equal(decimal.NewFromInt(1500)))
}

func TestListByEmailFilters(t *testing.T) {
	svc, store, _, _ := newTestService(t)

	store.orders = []Order{
		{ID: "ORD-001", Email: "john@zmart.com", Status: StatusDelivered, Items: []Item{{Name: "Wireless Headphones"}}},
		{ID: "ORD-002", Email: "john@zmart.com", Status: StatusPending, Items: []Item{{Name: "Smart Watch"}}},
		{ID: "ORD-003", Email: "jane@zmart.com", Status: StatusPending},
	}

	resp, err := svc.ListByEmail("john@zmart.com", &ListRequest{})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Count, "only the caller's orders")

	resp, err = svc.ListByEmail("john@zmart.com", &ListRequest{Status: "pending"})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "ORD-002", resp.Orders[0].ID)

	resp, err = svc.ListByEmail("john@zmart.com", &ListRequest{Search: "headph"})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "ORD-001", resp.Orders[0].ID)

	resp, err = svc.ListByEmail("john@zmart.com", &ListRequest{Search: "ord-002"})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Count, "search also matches the order id")
}

func TestListByEmailInvalidStatus(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.ListByEmail("john@zmart.com", &ListRequest{Status: "returned"})
	assert.Error(t, err)
}

func TestGetEnforcesOwnership(t *testing.T) {
	svc, store, _, _ := newTestService(t)

	store.orders = []Order{{ID: "ORD-001", Email: "john@zmart.com"}}

	o, err := svc.Get("ORD-001", "john@zmart.com")
	require.NoError(t, err)
	assert.Equal(t, "ORD-001", o.ID)

	_, err = svc.Get("ORD-001", "jane@zmart.com")
	assert.Error(t, err, "orders of other accounts read as not found")
}

func TestFormatID(t *testing.T) {
	assert.Equal(t, "ORD-001", FormatID(1))
	assert.Equal(t, "ORD-042", FormatID(42))
	assert.Equal(t, "ORD-1000", fmt.Sprintf("ORD-%03d", 1000), "padding grows past three digits")
}
