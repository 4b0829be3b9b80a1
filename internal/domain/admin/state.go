// internal/domain/admin/state.go
package admin

import (
	"github.com/shopspring/decimal"

	"github.com/your-org/zmart-backend/internal/domain/catalog"
	"github.com/your-org/zmart-backend/internal/domain/order"
	"github.com/your-org/zmart-backend/internal/domain/user"
)

// State holds the admin panel's collections plus the derived stats rollup.
// Values of this type are treated as immutable: Reduce returns a new State
// and never writes through the slices it was given.
type State struct {
	Products []catalog.Product `json:"products"`
	Orders   []order.Order     `json:"orders"`
	Users    []user.Account    `json:"users"`
	Stats    Stats             `json:"stats"`
}

// Stats is the derived rollup over the three collections. It is recomputed in
// full on every transition; at catalog scale the O(n) pass is cheaper than
// maintaining increments correctly.
type Stats struct {
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalOrders   int             `json:"totalOrders"`
	TotalProducts int             `json:"totalProducts"`
	TotalUsers    int             `json:"totalUsers"`
}

func computeStats(products []catalog.Product, orders []order.Order, users []user.Account) Stats {
	revenue := decimal.Zero
	for _, o := range orders {
		revenue = revenue.Add(o.Total)
	}
	return Stats{
		TotalRevenue:  revenue,
		TotalOrders:   len(orders),
		TotalProducts: len(products),
		TotalUsers:    len(users),
	}
}

// NewState builds a state from collections and computes the initial stats.
func NewState(products []catalog.Product, orders []order.Order, users []user.Account) State {
	return State{
		Products: products,
		Orders:   orders,
		Users:    users,
		Stats:    computeStats(products, orders, users),
	}
}

// Action is a command applied to the state by Reduce.
type Action interface {
	isAction()
}

// AddProduct appends a product. The reducer assigns the id (highest existing
// id plus one); CreatedAt is expected to be stamped by the dispatcher.
type AddProduct struct {
	Product catalog.Product
}

// UpdateProduct replaces the product with a matching id in place. Unknown ids
// leave the state unchanged.
type UpdateProduct struct {
	Product catalog.Product
}

// DeleteProduct removes the product with the given id. Unknown ids leave the
// state unchanged.
type DeleteProduct struct {
	ID int
}

// UpdateOrderStatus replaces the status of the matching order. No transition
// validation is applied; unknown ids leave the state unchanged.
type UpdateOrderStatus struct {
	ID     string
	Status order.Status
}

// AddOrder appends an order. The dispatcher allocates the id from a monotonic
// sequence and stamps the date before dispatching, so the reducer stays pure
// and ids remain unique even after deletions.
type AddOrder struct {
	Order order.Order
}

// DeleteOrder removes the order with the given id.
type DeleteOrder struct {
	ID string
}

func (AddProduct) isAction()        {}
func (UpdateProduct) isAction()     {}
func (DeleteProduct) isAction()     {}
func (UpdateOrderStatus) isAction() {}
func (AddOrder) isAction()          {}
func (DeleteOrder) isAction()       {}

// NextProductID returns the id the next added product will receive: the
// highest existing id plus one, starting from 1 on an empty collection.
func NextProductID(products []catalog.Product) int {
	max := 0
	for _, p := range products {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}

// Reduce applies an action and returns the resulting state. The input state
// is never mutated. Actions referencing unknown ids are silent no-ops apart
// from the stats recompute.
func Reduce(state State, action Action) State {
	switch a := action.(type) {
	case AddProduct:
		p := a.Product
		p.ID = NextProductID(state.Products)
		products := append(cloneProducts(state.Products), p)
		return State{
			Products: products,
			Orders:   state.Orders,
			Users:    state.Users,
			Stats:    computeStats(products, state.Orders, state.Users),
		}

	case UpdateProduct:
		products := cloneProducts(state.Products)
		for i := range products {
			if products[i].ID == a.Product.ID {
				products[i] = a.Product
				break
			}
		}
		return State{
			Products: products,
			Orders:   state.Orders,
			Users:    state.Users,
			Stats:    computeStats(products, state.Orders, state.Users),
		}

	case DeleteProduct:
		products := make([]catalog.Product, 0, len(state.Products))
		for _, p := range state.Products {
			if p.ID != a.ID {
				products = append(products, p)
			}
		}
		return State{
			Products: products,
			Orders:   state.Orders,
			Users:    state.Users,
			Stats:    computeStats(products, state.Orders, state.Users),
		}

	case UpdateOrderStatus:
		orders := cloneOrders(state.Orders)
		for i := range orders {
			if orders[i].ID == a.ID {
				orders[i].Status = a.Status
				break
			}
		}
		return State{
			Products: state.Products,
			Orders:   orders,
			Users:    state.Users,
			Stats:    computeStats(state.Products, orders, state.Users),
		}

	case AddOrder:
		orders := append(cloneOrders(state.Orders), a.Order)
		return State{
			Products: state.Products,
			Orders:   orders,
			Users:    state.Users,
			Stats:    computeStats(state.Products, orders, state.Users),
		}

	case DeleteOrder:
		orders := make([]order.Order, 0, len(state.Orders))
		for _, o := range state.Orders {
			if o.ID != a.ID {
				orders = append(orders, o)
			}
		}
		return State{
			Products: state.Products,
			Orders:   orders,
			Users:    state.Users,
			Stats:    computeStats(state.Products, orders, state.Users),
		}

	default:
		return state
	}
}

func cloneProducts(products []catalog.Product) []catalog.Product {
	out := make([]catalog.Product, len(products))
	copy(out, products)
	return out
}

func cloneOrders(orders []order.Order) []order.Order {
	out := make([]order.Order, len(orders))
	copy(out, orders)
	return out
}
