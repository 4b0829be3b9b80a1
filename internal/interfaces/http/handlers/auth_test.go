// internal/interfaces/http/handlers/auth_test.go
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
	"github.com/your-org/zmart-backend/internal/domain/user"
	"github.com/your-org/zmart-backend/internal/interfaces/http/middleware"
)

func authTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "Z-Mart Backend Test"},
		JWT: config.JWTConfig{
			Secret:             "test-secret-key-at-least-32-characters",
			AccessTokenExpiry:  time.Hour,
			RefreshTokenExpiry: 24 * time.Hour,
		},
		Auth: config.AuthConfig{
			Mode:        config.AuthModeMock,
			AdminEmail:  "admin@zmart.com",
			MockLatency: time.Millisecond,
			BcryptCost:  4,
		},
	}
}

func newAuthTestRouter() (*gin.Engine, *cart.Service) {
	gin.SetMode(gin.TestMode)

	cfg := authTestConfig()
	store := admin.NewSeededStore()
	cartService := cart.NewService(store, 24*time.Hour)
	handler := NewAuthHandler(user.NewService(cfg), cartService, cfg)

	router := gin.New()
	router.POST("/auth/login", handler.Login)
	router.POST("/auth/register", handler.Register)

	protected := router.Group("")
	protected.Use(middleware.AuthMiddleware(cfg))
	{
		protected.GET("/auth/profile", handler.GetProfile)
	}
	return router, cartService
}

type authBody struct {
	Data user.AuthResponse `json:"data"`
}

func TestLoginIssuesWorkingToken(t *testing.T) {
	router, _ := newAuthTestRouter()

	payload := bytes.NewBufferString(`{"email": "shopper@example.com", "password": "anything"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", payload)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body authBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Data.AccessToken)
	assert.Equal(t, user.RoleUser, body.Data.User.Role)

	// The issued token authenticates the profile endpoint.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer "+body.Data.AccessToken)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginAdminEmailGetsAdminRole(t *testing.T) {
	router, _ := newAuthTestRouter()

	payload := bytes.NewBufferString(`{"email": "admin@zmart.com", "password": "anything"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", payload)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body authBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, user.RoleAdmin, body.Data.User.Role)
}

func TestLoginMergesGuestCart(t *testing.T) {
	router, cartService := newAuthTestRouter()

	_, err := cartService.AddItem(cart.SessionKey("guest-1"), &cart.AddItemRequest{ProductID: 1, Quantity: 2})
	require.NoError(t, err)

	payload := bytes.NewBufferString(`{"email": "shopper@example.com", "password": "x"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", payload)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-ID", "guest-1")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body authBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	merged, err := cartService.Get(cart.UserKey(body.Data.User.ID))
	require.NoError(t, err)
	require.Len(t, merged.Items, 1)
	assert.Equal(t, 2, merged.Items[0].Quantity)
}

func TestProtectedEndpointRejectsMissingToken(t *testing.T) {
	router, _ := newAuthTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/profile", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterValidation(t *testing.T) {
	router, _ := newAuthTestRouter()

	for _, payload := range []string{
		`{"email": "a@b.com", "password": "secret1"}`,
		`{"name": "A", "email": "not-an-email", "password": "secret1"}`,
		`{"name": "A", "email": "a@b.com", "password": "abc"}`,
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, payload)
	}
}
