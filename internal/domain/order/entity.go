// internal/domain/order/entity.go
package order

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Status represents the order status. The lifecycle is linear in spirit but
// no transition graph is enforced: any status may replace any other.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// IsValid reports whether s is a known order status.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Item is a line snapshot captured when the order was placed. Later catalog
// changes do not touch it.
type Item struct {
	ProductID int    `json:"productId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Price     int64  `json:"price"`
}

// Order represents a placed order.
type Order struct {
	ID              string          `json:"id"`
	Customer        string          `json:"customer"`
	Email           string          `json:"email"`
	Total           decimal.Decimal `json:"total"`
	Status          Status          `json:"status"`
	Date            time.Time       `json:"date"`
	Items           []Item          `json:"items"`
	ShippingAddress string          `json:"shippingAddress"`
}

// Clone returns a copy with its own items slice.
func (o Order) Clone() Order {
	cp := o
	cp.Items = append([]Item(nil), o.Items...)
	return cp
}

// FormatID renders an order id from a sequence number: "ORD-" plus the
// number zero-padded to three digits.
func FormatID(seq int) string {
	return fmt.Sprintf("ORD-%03d", seq)
}

func seedDate(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

// SeedOrders returns the initial order book.
func SeedOrders() []Order {
	return []Order{
		{
			ID:       "ORD-001",
			Customer: "John Doe",
			Email:    "john@zmart.com",
			Total:    decimal.NewFromInt(83998),
			Status:   StatusDelivered,
			Date:     seedDate("2024-01-15"),
			Items: []Item{
				{ProductID: 1, Name: "Wireless Headphones", Quantity: 1, Price: 55999},
				{ProductID: 3, Name: "Laptop Stand", Quantity: 1, Price: 22399},
			},
			ShippingAddress: "123 Main St, Karachi, Pakistan",
		},
		{
			ID:       "ORD-002",
			Customer: "Jane Smith",
			Email:    "jane@zmart.com",
			Total:    decimal.NewFromInt(83999),
			Status:   StatusShipped,
			Date:     seedDate("2024-01-14"),
			Items: []Item{
				{ProductID: 2, Name: "Smart Watch", Quantity: 1, Price: 83999},
			},
			ShippingAddress: "456 Oak Ave, Lahore, Pakistan",
		},
		{
			ID:       "ORD-003",
			Customer: "Bob Johnson",
			Email:    "bob@zmart.com",
			Total:    decimal.NewFromInt(22399),
			Status:   StatusProcessing,
			Date:     seedDate("2024-01-13"),
			Items: []Item{
				{ProductID: 3, Name: "Laptop Stand", Quantity: 1, Price: 22399},
			},
			ShippingAddress: "789 Pine St, Islamabad, Pakistan",
		},
	}
}
