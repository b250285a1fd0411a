package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/samikassu/crewboard/internal/usecase"
)

// AuthMiddleWare extracts the Bearer session token, verifies it and stores
// the session and user IDs on the request context. Role checks happen in the
// use case against the live snapshot, never against the token claims.
func AuthMiddleWare(tokens usecase.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}
		claims, err := tokens.ParseSessionToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session token"})
			return
		}
		c.Set("sessionID", claims.SessionID)
		c.Set("userID", claims.UserID)
		c.Next()
	}
}
