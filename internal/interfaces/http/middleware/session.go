// internal/interfaces/http/middleware/session.go
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/your-org/zmart-backend/internal/domain/cart"
)

// RequestID assigns each request a unique id and echoes it in the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// SessionID resolves the guest session id from the X-Session-ID header,
// minting one when absent. The id is echoed back so clients can persist it.
func SessionID() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader("X-Session-ID")
		if sessionID == "" {
			sessionID = uuid.New().String()
		}
		c.Set("session_id", sessionID)
		c.Header("X-Session-ID", sessionID)
		c.Next()
	}
}

// GetSessionIDFromContext extracts the guest session id from gin context.
func GetSessionIDFromContext(c *gin.Context) (string, bool) {
	sessionID, exists := c.Get("session_id")
	if !exists {
		return "", false
	}
	return sessionID.(string), true
}

// CartKeyFromContext resolves the cart owner key for the request: the user
// key when authenticated, otherwise the guest session key.
func CartKeyFromContext(c *gin.Context) string {
	if userID, ok := GetUserIDFromContext(c); ok {
		return cart.UserKey(userID)
	}
	sessionID, _ := GetSessionIDFromContext(c)
	return cart.SessionKey(sessionID)
}
