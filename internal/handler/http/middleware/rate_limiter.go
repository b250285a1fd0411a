package middleware

import (
	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-gonic/gin"
)

// RateLimiter adapts a tollbooth limiter to gin middleware.
func RateLimiter(lmt *limiter.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		httpErr := tollbooth.LimitByRequest(lmt, c.Writer, c.Request)
		if httpErr != nil {
			c.AbortWithStatusJSON(httpErr.StatusCode, gin.H{"error": lmt.GetMessage()})
			return
		}
		c.Next()
	}
}
