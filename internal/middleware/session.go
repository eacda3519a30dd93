package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront-backend/pkg/session"
)

const sessionIDKey = "session_id"

type SessionMiddleware struct {
	tokens *session.TokenManager
}

func NewSessionMiddleware(tokens *session.TokenManager) *SessionMiddleware {
	return &SessionMiddleware{tokens: tokens}
}

// SessionRequired validates the session token and stores the session ID
// in the context.
func (m *SessionMiddleware) SessionRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session token required"})
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		claims, err := m.tokens.Validate(tokenParts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid session token"})
			return
		}

		c.Set(sessionIDKey, claims.SessionID)
		c.Next()
	}
}

// GetSessionID helper function to extract session ID from context
func GetSessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}
