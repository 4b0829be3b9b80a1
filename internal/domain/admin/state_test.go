// internal/domain/admin/state_test.go
package admin

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/zmart-backend/internal/domain/catalog"
	"github.com/your-org/zmart-backend/internal/domain/order"
	"github.com/your-org/zmart-backend/internal/domain/user"
)

func fixtureState() State {
	return NewState(
		[]catalog.Product{
			{ID: 1, Name: "Headphones", Price: 55999},
			{ID: 2, Name: "Smart Watch", Price: 83999},
			{ID: 5, Name: "Gaming Mouse", Price: 9799},
		},
		[]order.Order{
			{ID: "ORD-001", Customer: "John Doe", Total: decimal.NewFromInt(83998), Status: order.StatusDelivered},
			{ID: "ORD-002", Customer: "Jane Smith", Total: decimal.NewFromInt(83999), Status: order.StatusShipped},
		},
		[]user.Account{
			{ID: 1, Name: "John Doe"},
		},
	)
}

func TestReduceAddProductAssignsMaxPlusOne(t *testing.T) {
	state := fixtureState()

	next := Reduce(state, AddProduct{Product: catalog.Product{Name: "Keyboard", Price: 12599}})

	require.Len(t, next.Products, 4)
	added := next.Products[3]
	assert.Equal(t, 6, added.ID, "id is highest existing plus one, not length plus one")
	assert.Equal(t, 4, next.Stats.TotalProducts)
}

func TestReduceAddProductOnEmptyState(t *testing.T) {
	next := Reduce(NewState(nil, nil, nil), AddProduct{Product: catalog.Product{Name: "First"}})

	require.Len(t, next.Products, 1)
	assert.Equal(t, 1, next.Products[0].ID)
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	state := fixtureState()

	Reduce(state, DeleteProduct{ID: 1})
	Reduce(state, UpdateOrderStatus{ID: "ORD-001", Status: order.StatusCancelled})

	assert.Len(t, state.Products, 3)
	assert.Equal(t, order.StatusDelivered, state.Orders[0].Status)
}

func TestReduceUpdateProductUnknownIDIsNoOp(t *testing.T) {
	state := fixtureState()

	next := Reduce(state, UpdateProduct{Product: catalog.Product{ID: 99, Name: "Ghost"}})

	assert.Equal(t, state.Products, next.Products)
	assert.Equal(t, state.Stats, next.Stats)
}

func TestReduceDeleteThenAddRestoresStats(t *testing.T) {
	state := fixtureState()

	deleted := Reduce(state, DeleteProduct{ID: 5})
	assert.Equal(t, 2, deleted.Stats.TotalProducts)

	restored := Reduce(deleted, AddProduct{Product: catalog.Product{Name: "Gaming Mouse", Price: 9799}})
	assert.Equal(t, state.Stats.TotalProducts, restored.Stats.TotalProducts)
	assert.True(t, state.Stats.TotalRevenue.Equal(restored.Stats.TotalRevenue))
}

func TestReduceUpdateOrderStatus(t *testing.T) {
	state := fixtureState()

	next := Reduce(state, UpdateOrderStatus{ID: "ORD-002", Status: order.StatusDelivered})

	assert.Equal(t, order.StatusDelivered, next.Orders[1].Status)
	assert.Equal(t, order.StatusDelivered, next.Orders[0].Status, "other orders untouched")

	// Setting the same status again changes nothing.
	again := Reduce(next, UpdateOrderStatus{ID: "ORD-002", Status: order.StatusDelivered})
	assert.Equal(t, next.Orders, again.Orders)
}

func TestReduceDeleteOrderUpdatesRevenue(t *testing.T) {
	state := fixtureState()

	next := Reduce(state, DeleteOrder{ID: "ORD-002"})

	require.Len(t, next.Orders, 1)
	assert.Equal(t, 1, next.Stats.TotalOrders)
	assert.True(t, next.Stats.TotalRevenue.Equal(decimal.NewFromInt(83998)))
}

func TestStatsRecomputedEveryTransition(t *testing.T) {
	state := fixtureState()

	next := Reduce(state, AddOrder{Order: order.Order{ID: "ORD-003", Total: decimal.NewFromInt(1000)}})

	want := decimal.NewFromInt(83998 + 83999 + 1000)
	assert.True(t, next.Stats.TotalRevenue.Equal(want))
	assert.Equal(t, 3, next.Stats.TotalOrders)
}

func TestNextProductID(t *testing.T) {
	assert.Equal(t, 1, NextProductID(nil))
	assert.Equal(t, 6, NextProductID(fixtureState().Products))
}
