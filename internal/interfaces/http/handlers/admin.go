// internal/interfaces/http/handlers/admin.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/your-org/zmart-backend/internal/config"
	"github.com/your-org/zmart-backend/internal/domain/admin"
	"github.com/your-org/zmart-backend/internal/domain/catalog"
	"github.com/your-org/zmart-backend/internal/domain/order"
)

// AdminHandler handles the admin panel endpoints
type AdminHandler struct {
	store          *admin.Store
	catalogService *catalog.Service
	config         *config.Config
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(store *admin.Store, catalogService *catalog.Service, cfg *config.Config) *AdminHandler {
	return &AdminHandler{
		store:          store,
		catalogService: catalogService,
		config:         cfg,
	}
}

// Dashboard handles GET /admin/dashboard
func (h *AdminHandler) Dashboard(c *gin.Context) {
	state := h.store.State()

	recent := state.Orders
	if len(recent) > 5 {
		recent = recent[len(recent)-5:]
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Dashboard retrieved successfully",
		"data": gin.H{
			"stats":         state.Stats,
			"recent_orders": recent,
		},
	})
}

// GetProducts handles GET /admin/products
func (h *AdminHandler) GetProducts(c *gin.Context) {
	products := h.store.Products()
	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data": gin.H{
			"products": products,
			"count":    len(products),
		},
	})
}

// CreateProductRequest represents an admin product creation request.
type CreateProductRequest struct {
	Name           string            `json:"name" binding:"required"`
	Description    string            `json:"description"`
	Price          int64             `json:"price" binding:"required,gt=0"`
	OriginalPrice  int64             `json:"originalPrice" binding:"omitempty,gt=0"`
	Category       string            `json:"category" binding:"required"`
	Brand          string            `json:"brand"`
	Images         []string          `json:"images"`
	InStock        bool              `json:"inStock"`
	StockQuantity  int               `json:"stockQuantity" binding:"omitempty,min=0"`
	Features       []string          `json:"features"`
	Specifications map[string]string `json:"specifications"`
}

// CreateProduct handles POST /admin/products. The store assigns the id and
// creation date.
func (h *AdminHandler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}
	if !catalog.IsValidCategory(req.Category) || req.Category == catalog.CategoryAll {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid category",
		})
		return
	}

	state := h.store.Dispatch(admin.AddProduct{Product: catalog.Product{
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		OriginalPrice:  req.OriginalPrice,
		Category:       req.Category,
		Brand:          req.Brand,
		Images:         req.Images,
		InStock:        req.InStock,
		StockQuantity:  req.StockQuantity,
		Features:       req.Features,
		Specifications: req.Specifications,
	}})

	created := state.Products[len(state.Products)-1]
	c.JSON(http.StatusCreated, gin.H{
		"message": "Product created successfully",
		"data":    created,
	})
}

// UpdateProduct handles PUT /admin/products/:id
func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	var patch catalog.ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	product, err := h.catalogService.Merge(id, &patch)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product updated successfully",
		"data":    product,
	})
}

// DeleteProduct handles DELETE /admin/products/:id
func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	if err := h.store.RemoveProduct(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product deleted successfully",
	})
}

// GetOrders handles GET /admin/orders
func (h *AdminHandler) GetOrders(c *gin.Context) {
	orders := h.store.Orders()
	c.JSON(http.StatusOK, gin.H{
		"message": "Orders retrieved successfully",
		"data": gin.H{
			"orders": orders,
			"count":  len(orders),
		},
	})
}

// CreateOrderRequest represents a manually recorded order.
type CreateOrderRequest struct {
	Customer        string       `json:"customer" binding:"required"`
	Email           string       `json:"email" binding:"required,email"`
	Total           float64      `json:"total" binding:"required,gt=0"`
	Items           []order.Item `json:"items"`
	ShippingAddress string       `json:"shipping_address"`
}

// CreateOrder handles POST /admin/orders. The store allocates the order id
// and date; new orders start pending.
func (h *AdminHandler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	placed := h.store.PlaceOrder(order.Order{
		Customer:        req.Customer,
		Email:           req.Email,
		Total:           decimal.NewFromFloat(req.Total),
		Status:          order.StatusPending,
		Items:           req.Items,
		ShippingAddress: req.ShippingAddress,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order created successfully",
		"data":    placed,
	})
}

// UpdateOrderStatusRequest carries the new status for an order.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,orderstatus"`
}

// UpdateOrderStatus handles PUT /admin/orders/:id/status
func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	id := c.Param("id")

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if _, err := h.store.OrderByID(id); err != nil {
		if errors.Is(err, admin.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update order status",
		})
		return
	}

	h.store.Dispatch(admin.UpdateOrderStatus{ID: id, Status: order.Status(req.Status)})
	updated, _ := h.store.OrderByID(id)

	c.JSON(http.StatusOK, gin.H{
		"message": "Order status updated successfully",
		"data":    updated,
	})
}

// DeleteOrder handles DELETE /admin/orders/:id
func (h *AdminHandler) DeleteOrder(c *gin.Context) {
	id := c.Param("id")

	if _, err := h.store.OrderByID(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Order not found",
		})
		return
	}

	h.store.Dispatch(admin.DeleteOrder{ID: id})
	c.JSON(http.StatusOK, gin.H{
		"message": "Order deleted successfully",
	})
}

// GetUsers handles GET /admin/users
func (h *AdminHandler) GetUsers(c *gin.Context) {
	users := h.store.Accounts()
	c.JSON(http.StatusOK, gin.H{
		"message": "Users retrieved successfully",
		"data": gin.H{
			"users": users,
			"count": len(users),
		},
	})
}
