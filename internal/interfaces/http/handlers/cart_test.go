// internal/interfaces/http/handlers/cart_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/zmart-backend/internal/config"
	"github.com/your-org/zmart-backend/internal/domain/admin"
	"github.com/your-org/zmart-backend/internal/domain/cart"
	"github.com/your-org/zmart-backend/internal/interfaces/http/middleware"
)

func newCartTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	store := admin.NewSeededStore()
	handler := NewCartHandler(cart.NewService(store, 24*time.Hour), &config.Config{})

	router := gin.New()
	group := router.Group("/cart")
	group.Use(middleware.SessionID())
	{
		group.GET("", handler.GetCart)
		group.POST("/items", handler.AddItem)
		group.PUT("/items/:id", handler.UpdateItem)
		group.DELETE("/items/:id", handler.RemoveItem)
		group.DELETE("", handler.ClearCart)
	}
	return router
}

type cartBody struct {
	Data struct {
		Items  []cart.Line `json:"items"`
		Totals cart.Totals `json:"totals"`
	} `json:"data"`
}

func doCart(t *testing.T, router *gin.Engine, method, path, session, payload string) (*httptest.ResponseRecorder, cartBody) {
	t.Helper()

	var reader *bytes.Buffer
	if payload != "" {
		reader = bytes.NewBufferString(payload)
	} else {
		reader = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if session != "" {
		req.Header.Set("X-Session-ID", session)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var body cartBody
	if w.Code < 300 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	}
	return w, body
}

func TestCartFlow(t *testing.T) {
	router := newCartTestRouter()
	session := "test-session"

	w, body := doCart(t, router, http.MethodPost, "/cart/items", session, `{"product_id": 1, "quantity": 2}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, body.Data.Items, 1)
	assert.Equal(t, 2, body.Data.Items[0].Quantity)
	assert.Equal(t, "Wireless Headphones", body.Data.Items[0].Name)

	// Re-adding the same product increments the existing line.
	w, body = doCart(t, router, http.MethodPost, "/cart/items", session, `{"product_id": 1, "quantity": 1}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, body.Data.Items, 1)
	assert.Equal(t, 3, body.Data.Items[0].Quantity)

	// Setting quantity to zero removes the line.
	w, body = doCart(t, router, http.MethodPut, "/cart/items/1", session, `{"quantity": 0}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, body.Data.Items)
}

func TestCartIsolatedPerSession(t *testing.T) {
	router := newCartTestRouter()

	w, _ := doCart(t, router, http.MethodPost, "/cart/items", "session-a", `{"product_id": 1, "quantity": 1}`)
	require.Equal(t, http.StatusOK, w.Code)

	w, body := doCart(t, router, http.MethodGet, "/cart", "session-b", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, body.Data.Items)
}

func TestCartMintsSessionID(t *testing.T) {
	router := newCartTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Session-ID"), "server mints a session id for new guests")
}

func TestCartAddUnknownProduct(t *testing.T) {
	router := newCartTestRouter()

	w, _ := doCart(t, router, http.MethodPost, "/cart/items", "s", `{"product_id": 9999, "quantity": 1}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartAddRejectsBadPayload(t *testing.T) {
	router := newCartTestRouter()

	// Quantity below one fails binding validation.
	w, _ := doCart(t, router, http.MethodPost, "/cart/items", "s", `{"product_id": 1, "quantity": 0}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Non-numeric quantity never reaches the store.
	w, _ = doCart(t, router, http.MethodPost, "/cart/items", "s", `{"product_id": 1, "quantity": "two"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
