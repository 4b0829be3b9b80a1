// internal/domain/wishlist/entity.go
package wishlist

import "time"

// Item is a wishlist entry. Name, Price and Image are snapshots captured
// when the product was saved.
type Item struct {
	ProductID int       `json:"productId"`
	Name      string    `json:"name"`
	Price     int64     `json:"price"`
	Image     string    `json:"image"`
	InStock   bool      `json:"inStock"`
	AddedAt   time.Time `json:"added_at"`
}

// Wishlist is a session-scoped set of saved products.
type Wishlist struct {
	Key       string    `json:"-"`
	Items     []Item    `json:"items"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Response is a wishlist with its item count.
type Response struct {
	Items     []Item    `json:"items"`
	ItemCount int       `json:"item_count"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AddItemRequest represents a save-to-wishlist request.
type AddItemRequest struct {
	ProductID int `json:"product_id" binding:"required"`
}
