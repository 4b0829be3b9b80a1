// internal/domain/cart/service_test.go
package cart

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/zmart-backend/internal/domain/catalog"
)

type fakeCatalog struct {
	products map[int]catalog.Product
}

func (f *fakeCatalog) ProductByID(id int) (catalog.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return catalog.Product{}, errors.New("product not found")
	}
	return p, nil
}

func newTestService() (*Service, *fakeCatalog) {
	cat := &fakeCatalog{products: map[int]catalog.Product{
		1: {ID: 1, Name: "Headphones", Price: 55999, Images: []string{"/headphones.jpg"}, InStock: true},
		2: {ID: 2, Name: "Socks", Price: 1349, InStock: true},
	}}
	return NewService(cat, 24*time.Hour), cat
}

func TestAddItemSnapshotsProduct(t *testing.T) {
	svc, cat := newTestService()
	key := SessionKey("s-1")

	resp, err := svc.AddItem(key, &AddItemRequest{ProductID: 1, Quantity: 1})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)

	line := resp.Items[0]
	assert.Equal(t, "Headphones", line.Name)
	assert.Equal(t, int64(55999), line.Price)
	assert.Equal(t, "/headphones.jpg", line.Image)

	// A later catalog price change must not leak into the existing line.
	p := cat.products[1]
	p.Price = 1
	cat.products[1] = p

	resp, err = svc.AddItem(key, &AddItemRequest{ProductID: 1, Quantity: 2})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 3, resp.Items[0].Quantity, "re-adding increments quantity")
	assert.Equal(t, int64(55999), resp.Items[0].Price, "snapshot taken at first add wins")
}

func TestAddItemUnknownProduct(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.AddItem(SessionKey("s-1"), &AddItemRequest{ProductID: 99, Quantity: 1})
	assert.Error(t, err)
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	svc, _ := newTestService()
	key := SessionKey("s-1")

	_, err := svc.AddItem(key, &AddItemRequest{ProductID: 1, Quantity: 2})
	require.NoError(t, err)

	resp, err := svc.UpdateQuantity(key, 1, &UpdateItemRequest{Quantity: 0})
	require.NoError(t, err)
	assert.Empty(t, resp.Items)

	_, err = svc.AddItem(key, &AddItemRequest{ProductID: 1, Quantity: 1})
	require.NoError(t, err)
	resp, err = svc.UpdateQuantity(key, 1, &UpdateItemRequest{Quantity: -5})
	require.NoError(t, err)
	assert.Empty(t, resp.Items, "negative quantities also remove the line")
}

func TestUpdateQuantityUnknownItem(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.UpdateQuantity(SessionKey("s-1"), 1, &UpdateItemRequest{Quantity: 2})
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestQuantityHasNoUpperBound(t *testing.T) {
	svc, _ := newTestService()
	key := SessionKey("s-1")

	_, err := svc.AddItem(key, &AddItemRequest{ProductID: 2, Quantity: 1})
	require.NoError(t, err)

	resp, err := svc.UpdateQuantity(key, 2, &UpdateItemRequest{Quantity: 5000})
	require.NoError(t, err)
	assert.Equal(t, 5000, resp.Items[0].Quantity)
}

func TestRemoveItem(t *testing.T) {
	svc, _ := newTestService()
	key := SessionKey("s-1")

	_, err := svc.AddItem(key, &AddItemRequest{ProductID: 1, Quantity: 1})
	require.NoError(t, err)
	_, err = svc.AddItem(key, &AddItemRequest{ProductID: 2, Quantity: 1})
	require.NoError(t, err)

	resp, err := svc.RemoveItem(key, 1)
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 2, resp.Items[0].ProductID)

	_, err = svc.RemoveItem(key, 1)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestCartTotalsUseEstimatePolicy(t *testing.T) {
	svc, _ := newTestService()
	key := SessionKey("s-1")

	// 10 pairs of socks: 13490 subtotal, below the free threshold.
	resp, err := svc.AddItem(key, &AddItemRequest{ProductID: 2, Quantity: 10})
	require.NoError(t, err)

	assert.True(t, resp.Totals.Subtotal.Equal(decimal.NewFromInt(13490)))
	assert.True(t, resp.Totals.Shipping.Equal(decimal.NewFromInt(2500)))

	// One more line pushes past the threshold and shipping goes free.
	resp, err = svc.AddItem(key, &AddItemRequest{ProductID: 1, Quantity: 1})
	require.NoError(t, err)
	assert.True(t, resp.Totals.Shipping.IsZero())
	assert.Equal(t, 2, resp.Totals.ItemCount)
	assert.Equal(t, 11, resp.Totals.TotalQuantity)
}

func TestGuestCartExpires(t *testing.T) {
	svc, _ := newTestService()
	key := SessionKey("s-1")

	base := time.Now()
	svc.now = func() time.Time { return base }

	_, err := svc.AddItem(key, &AddItemRequest{ProductID: 1, Quantity: 1})
	require.NoError(t, err)

	svc.now = func() time.Time { return base.Add(25 * time.Hour) }

	resp, err := svc.Get(key)
	require.NoError(t, err)
	assert.Empty(t, resp.Items, "expired guest cart reads as empty")

	_, err = svc.Items(key)
	assert.ErrorIs(t, err, ErrCartEmpty)
}

func TestUserCartDoesNotExpire(t *testing.T) {
	svc, _ := newTestService()
	key := UserKey(42)

	base := time.Now()
	svc.now = func() time.Time { return base }

	_, err := svc.AddItem(key, &AddItemRequest{ProductID: 1, Quantity: 1})
	require.NoError(t, err)

	svc.now = func() time.Time { return base.Add(1000 * time.Hour) }

	resp, err := svc.Get(key)
	require.NoError(t, err)
	assert.Len(t, resp.Items, 1)
}

func TestMergeGuestCart(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.AddItem(SessionKey("s-1"), &AddItemRequest{ProductID: 1, Quantity: 2})
	require.NoError(t, err)
	_, err = svc.AddItem(UserKey(42), &AddItemRequest{ProductID: 1, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, svc.MergeGuestCart("s-1", 42))

	resp, err := svc.Get(UserKey(42))
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 3, resp.Items[0].Quantity)

	guest, err := svc.Get(SessionKey("s-1"))
	require.NoError(t, err)
	assert.Empty(t, guest.Items, "guest cart is consumed by the merge")
}

func TestClearCart(t *testing.T) {
	svc, _ := newTestService()
	key := SessionKey("s-1")

	_, err := svc.AddItem(key, &AddItemRequest{ProductID: 1, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, svc.Clear(key))

	resp, err := svc.Get(key)
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
}
