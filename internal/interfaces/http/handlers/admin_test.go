// internal/interfaces/http/handlers/admin_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/zmart-backend/internal/config"
	"github.com/your-org/zmart-backend/internal/domain/admin"
	"github.com/your-org/zmart-backend/internal/domain/catalog"
	"github.com/your-org/zmart-backend/internal/domain/order"
)

func init() {
	// Mirrors the validator the server installs at startup.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("orderstatus", func(fl validator.FieldLevel) bool {
			return order.Status(fl.Field().String()).IsValid()
		})
	}
}

func newAdminTestRouter() (*gin.Engine, *admin.Store) {
	gin.SetMode(gin.TestMode)

	store := admin.NewSeededStore()
	handler := NewAdminHandler(store, catalog.NewService(store), &config.Config{})

	router := gin.New()
	router.GET("/admin/dashboard", handler.Dashboard)
	router.POST("/admin/products", handler.CreateProduct)
	router.POST("/admin/orders", handler.CreateOrder)
	router.PUT("/admin/orders/:id/status", handler.UpdateOrderStatus)
	router.DELETE("/admin/orders/:id", handler.DeleteOrder)
	router.GET("/admin/users", handler.GetUsers)
	return router, store
}

func TestDashboardStats(t *testing.T) {
	router, _ := newAdminTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			Stats admin.Stats `json:"stats"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 39, body.Data.Stats.TotalProducts)
	assert.Equal(t, 3, body.Data.Stats.TotalOrders)
	assert.Equal(t, 3, body.Data.Stats.TotalUsers)
}

func TestCreateProductAssignsID(t *testing.T) {
	router, store := newAdminTestRouter()

	payload := bytes.NewBufferString(`{"name": "USB Hub", "price": 4999, "category": "Electronics", "inStock": true, "stockQuantity": 10}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/products", payload)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		Data catalog.Product `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 40, body.Data.ID, "next id after the 39 seeded products")
	assert.False(t, body.Data.CreatedAt.IsZero())

	assert.Equal(t, 40, store.Stats().TotalProducts)
}

func TestCreateProductRejectsBadCategory(t *testing.T) {
	router, _ := newAdminTestRouter()

	for _, payload := range []string{
		`{"name": "X", "price": 1, "category": "Toys"}`,
		`{"name": "X", "price": 1, "category": "All"}`,
		`{"name": "X", "category": "Electronics"}`,
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/admin/products", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, payload)
	}
}

func TestUpdateOrderStatus(t *testing.T) {
	router, store := newAdminTestRouter()

	payload := bytes.NewBufferString(`{"status": "delivered"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/admin/orders/ORD-002/status", payload)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	o, err := store.OrderByID("ORD-002")
	require.NoError(t, err)
	assert.Equal(t, order.StatusDelivered, o.Status)
}

func TestUpdateOrderStatusRejectsUnknownStatus(t *testing.T) {
	router, _ := newAdminTestRouter()

	payload := bytes.NewBufferString(`{"status": "returned"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/admin/orders/ORD-002/status", payload)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateOrderStatusUnknownOrder(t *testing.T) {
	router, _ := newAdminTestRouter()

	payload := bytes.NewBufferString(`{"status": "shipped"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/admin/orders/ORD-999/status", payload)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteOrderAffectsRevenue(t *testing.T) {
	router, store := newAdminTestRouter()
	before := store.Stats()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/admin/orders/ORD-001", nil))

	require.Equal(t, http.StatusOK, w.Code)
	after := store.Stats()
	assert.Equal(t, before.TotalOrders-1, after.TotalOrders)
	assert.True(t, after.TotalRevenue.LessThan(before.TotalRevenue))
}

func TestGetUsers(t *testing.T) {
	router, _ := newAdminTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/users", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			Count int `json:"count"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Data.Count)
}
