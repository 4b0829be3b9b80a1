// internal/domain/catalog/entity.go
package catalog

import (
	"time"
)

// Product represents the canonical product record. Prices are whole Pakistani
// rupees; OriginalPrice is the pre-discount price and is never below Price.
type Product struct {
	ID             int               `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Price          int64             `json:"price"`
	OriginalPrice  int64             `json:"originalPrice"`
	Category       string            `json:"category"`
	Brand          string            `json:"brand"`
	Rating         float64           `json:"rating"`
	Reviews        int               `json:"reviews"`
	Images         []string          `json:"images"`
	InStock        bool              `json:"inStock"`
	StockQuantity  int               `json:"stockQuantity"`
	Features       []string          `json:"features"`
	Specifications map[string]string `json:"specifications"`
	CreatedAt      time.Time         `json:"createdAt"`
}

// IsDiscounted reports whether the product is currently sold below its
// original price.
func (p *Product) IsDiscounted() bool {
	return p.OriginalPrice > p.Price
}

// DiscountPercentage returns the discount as a whole percentage of the
// original price, or 0 when the product is not discounted.
func (p *Product) DiscountPercentage() int {
	if !p.IsDiscounted() || p.OriginalPrice == 0 {
		return 0
	}
	return int(((p.OriginalPrice - p.Price) * 100) / p.OriginalPrice)
}

// Clone returns a deep copy so callers can hand out products without sharing
// the backing slices and map.
func (p Product) Clone() Product {
	cp := p
	cp.Images = append([]string(nil), p.Images...)
	cp.Features = append([]string(nil), p.Features...)
	if p.Specifications != nil {
		cp.Specifications = make(map[string]string, len(p.Specifications))
		for k, v := range p.Specifications {
			cp.Specifications[k] = v
		}
	}
	return cp
}

// CategoryAll is the sentinel category meaning "no category filter".
const CategoryAll = "All"

// Categories lists the fixed category labels, sentinel first, in the order
// the storefront presents them.
var Categories = []string{CategoryAll, "Electronics", "Fashion", "Home & Garden", "Sports"}

// IsValidCategory reports whether label is one of the fixed category labels
// (the sentinel included).
func IsValidCategory(label string) bool {
	for _, c := range Categories {
		if c == label {
			return true
		}
	}
	return false
}

// PriceRange is an inclusive price band. Max <= 0 means unbounded above.
type PriceRange struct {
	Label string `json:"label"`
	Min   int64  `json:"min"`
	Max   int64  `json:"max"`
}

// Contains reports whether price falls inside the range, both ends inclusive.
func (r PriceRange) Contains(price int64) bool {
	if price < r.Min {
		return false
	}
	return r.Max <= 0 || price <= r.Max
}

// PriceRanges lists the storefront's named price tiers. The top tier is
// unbounded above.
var PriceRanges = []PriceRange{
	{Label: "Under PKR 15,000", Min: 0, Max: 15000},
	{Label: "PKR 15,000 - PKR 30,000", Min: 15000, Max: 30000},
	{Label: "PKR 30,000 - PKR 60,000", Min: 30000, Max: 60000},
	{Label: "PKR 60,000+", Min: 60000, Max: 0},
}

// PriceRangeByLabel looks up a named price tier.
func PriceRangeByLabel(label string) (PriceRange, bool) {
	for _, r := range PriceRanges {
		if r.Label == label {
			return r, true
		}
	}
	return PriceRange{}, false
}
