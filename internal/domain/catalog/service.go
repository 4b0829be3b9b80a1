// internal/domain/catalog/service.go
package catalog

import (
	"fmt"
)

// Store is the product collection the service reads and mutates. The admin
// store satisfies it; tests may substitute their own.
type Store interface {
	Products() []Product
	ProductByID(id int) (Product, error)
	SaveProduct(p Product) error
	RemoveProduct(id int) error
}

// Service handles storefront catalog reads and the product management
// endpoints that merge and delete records by id.
type Service struct {
	store Store
}

// NewService creates a new catalog service.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// ListRequest represents catalog list query parameters.
type ListRequest struct {
	Category    string `form:"category"`
	PriceTier   string `form:"price_tier"`
	MinPrice    *int64 `form:"min_price"`
	MaxPrice    *int64 `form:"max_price"`
	Search      string `form:"search"`
	InStockOnly bool   `form:"in_stock_only"`
	SortBy      string `form:"sort_by"`
}

// ListResponse represents the filtered catalog with counts for the
// "Showing X of Y products" line.
type ListResponse struct {
	Products []Product `json:"products"`
	Count    int       `json:"count"`
	Total    int       `json:"total"`
}

// List applies the query engine to the current catalog.
func (s *Service) List(req *ListRequest) (*ListResponse, error) {
	filters, err := s.buildFilters(req)
	if err != nil {
		return nil, err
	}

	products := s.store.Products()
	filtered := Query(products, filters)

	return &ListResponse{
		Products: filtered,
		Count:    len(filtered),
		Total:    len(products),
	}, nil
}

func (s *Service) buildFilters(req *ListRequest) (Filters, error) {
	var filters Filters

	if req.Category != "" {
		if !IsValidCategory(req.Category) {
			return Filters{}, fmt.Errorf("unknown category %q", req.Category)
		}
		filters.Category = req.Category
	}

	switch {
	case req.PriceTier != "":
		tier, ok := PriceRangeByLabel(req.PriceTier)
		if !ok {
			return Filters{}, fmt.Errorf("unknown price tier %q", req.PriceTier)
		}
		filters.PriceRange = &tier
	case req.MinPrice != nil || req.MaxPrice != nil:
		r := PriceRange{}
		if req.MinPrice != nil {
			r.Min = *req.MinPrice
		}
		if req.MaxPrice != nil {
			r.Max = *req.MaxPrice
		}
		filters.PriceRange = &r
	}

	filters.Search = req.Search
	filters.InStockOnly = req.InStockOnly

	if !IsValidSortKey(SortKey(req.SortBy)) {
		return Filters{}, fmt.Errorf("unknown sort order %q", req.SortBy)
	}
	filters.SortBy = SortKey(req.SortBy)

	return filters, nil
}

// Get retrieves a single product by id.
func (s *Service) Get(id int) (Product, error) {
	return s.store.ProductByID(id)
}

// ProductPatch is a partial product update. Only fields present in the
// request body overwrite the stored record; the id is pinned by the caller.
type ProductPatch struct {
	Name           *string            `json:"name"`
	Description    *string            `json:"description"`
	Price          *int64             `json:"price"`
	OriginalPrice  *int64             `json:"originalPrice"`
	Category       *string            `json:"category"`
	Brand          *string            `json:"brand"`
	Rating         *float64           `json:"rating"`
	Reviews        *int               `json:"reviews"`
	Images         *[]string          `json:"images"`
	InStock        *bool              `json:"inStock"`
	StockQuantity  *int               `json:"stockQuantity"`
	Features       *[]string          `json:"features"`
	Specifications *map[string]string `json:"specifications"`
}

// Merge applies a shallow patch to the product with the given id and returns
// the merged record.
func (s *Service) Merge(id int, patch *ProductPatch) (Product, error) {
	product, err := s.store.ProductByID(id)
	if err != nil {
		return Product{}, err
	}

	if patch.Name != nil {
		product.Name = *patch.Name
	}
	if patch.Description != nil {
		product.Description = *patch.Description
	}
	if patch.Price != nil {
		product.Price = *patch.Price
	}
	if patch.OriginalPrice != nil {
		product.OriginalPrice = *patch.OriginalPrice
	}
	if patch.Category != nil {
		product.Category = *patch.Category
	}
	if patch.Brand != nil {
		product.Brand = *patch.Brand
	}
	if patch.Rating != nil {
		product.Rating = *patch.Rating
	}
	if patch.Reviews != nil {
		product.Reviews = *patch.Reviews
	}
	if patch.Images != nil {
		product.Images = *patch.Images
	}
	if patch.InStock != nil {
		product.InStock = *patch.InStock
	}
	if patch.StockQuantity != nil {
		product.StockQuantity = *patch.StockQuantity
	}
	if patch.Features != nil {
		product.Features = *patch.Features
	}
	if patch.Specifications != nil {
		product.Specifications = *patch.Specifications
	}

	if err := s.store.SaveProduct(product); err != nil {
		return Product{}, err
	}
	return product, nil
}

// Delete removes the product with the given id.
func (s *Service) Delete(id int) error {
	return s.store.RemoveProduct(id)
}
