package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// BearerToken is a Gin middleware that captures the token from Authorization: Bearer <token>.
// The token is opaque here: the reservation API validates it on every forwarded call.
// A request without the header continues anonymously; a malformed header is rejected.
func BearerToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || strings.TrimSpace(parts[1]) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid Authorization header format",
			})
			return
		}

		c.Set("accessToken", strings.TrimSpace(parts[1]))
		c.Next()
	}
}
