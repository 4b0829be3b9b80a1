// internal/domain/catalog/query.go
package catalog

import (
	"sort"
	"strings"
)

// SortKey selects the ordering applied after filtering.
type SortKey string

const (
	SortFeatured  SortKey = "featured"  // preserve catalog order
	SortNewest    SortKey = "newest"    // descending id
	SortPriceLow  SortKey = "price-low" // ascending price
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating" // descending rating
)

// IsValidSortKey reports whether key is one of the supported sort orders.
// The empty key is valid and means "featured".
func IsValidSortKey(key SortKey) bool {
	switch key {
	case "", SortFeatured, SortNewest, SortPriceLow, SortPriceHigh, SortRating:
		return true
	}
	return false
}

// Filters describes a catalog query. The zero value selects the whole catalog
// in its original order.
type Filters struct {
	Category    string      // "" or CategoryAll means no category filter
	PriceRange  *PriceRange // nil means no price filter
	Search      string      // case-insensitive substring of the product name
	InStockOnly bool
	SortBy      SortKey
}

// Query filters and sorts products. The input is never mutated; the result is
// always a freshly allocated, non-nil slice, so an empty result is
// distinguishable from "no query run" by the caller holding the original
// slice. All filters are independent predicates; the sort is stable and runs
// last.
func Query(products []Product, f Filters) []Product {
	result := make([]Product, 0, len(products))

	for _, p := range products {
		if f.Category != "" && f.Category != CategoryAll && p.Category != f.Category {
			continue
		}
		if f.PriceRange != nil && !f.PriceRange.Contains(p.Price) {
			continue
		}
		if f.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Search)) {
			continue
		}
		if f.InStockOnly && !p.InStock {
			continue
		}
		result = append(result, p)
	}

	switch f.SortBy {
	case SortPriceLow:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price < result[j].Price })
	case SortPriceHigh:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price > result[j].Price })
	case SortRating:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Rating > result[j].Rating })
	case SortNewest:
		sort.SliceStable(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	default:
		// featured: keep catalog order
	}

	return result
}
