// internal/domain/cart/entity.go
package cart

import (
	"time"

	"github.com/your-org/zmart-backend/internal/domain/pricing"
)

// Line is a cart line. Name, Price and Image are snapshots captured when the
// item was first added; later catalog changes do not propagate into existing
// lines. ProductID is not re-validated against the catalog after add time.
type Line struct {
	ProductID int       `json:"productId"`
	Name      string    `json:"name"`
	Price     int64     `json:"price"`
	Image     string    `json:"image"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

// Cart is a session-scoped cart. Guest carts expire at ExpiresAt; carts of
// authenticated users live for the process lifetime.
type Cart struct {
	Key       string    `json:"-"`
	Items     []Line    `json:"items"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Totals is the cart summary: line counts plus the price breakdown under the
// cart page's estimate policy.
type Totals struct {
	ItemCount     int `json:"item_count"`     // number of distinct lines
	TotalQuantity int `json:"total_quantity"` // sum of all quantities
	pricing.Totals
}

// Response is a cart with its computed totals.
type Response struct {
	Items     []Line    `json:"items"`
	Totals    Totals    `json:"totals"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AddItemRequest represents an add-to-cart request.
type AddItemRequest struct {
	ProductID int `json:"product_id" binding:"required"`
	Quantity  int `json:"quantity" binding:"required,min=1"`
}

// UpdateItemRequest represents a quantity update. Zero and negative values
// remove the line.
type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

// PricingLines converts cart lines into pricing calculator lines.
func PricingLines(items []Line) []pricing.Line {
	lines := make([]pricing.Line, len(items))
	for i, item := range items {
		lines[i] = pricing.Line{Price: item.Price, Quantity: item.Quantity}
	}
	return lines
}
