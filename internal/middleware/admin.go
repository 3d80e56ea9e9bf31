package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminTokenHeader carries the shared admin secret on every mutating request.
const AdminTokenHeader = "x-admin-token"

// AdminAuth gates a route group behind the static admin token. This is a
// plain byte-equality check against the configured secret: no sessions,
// no expiry, no rotation. An empty configured secret rejects everything.
func AdminAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(AdminTokenHeader)
		if token == "" || secret == "" || token != secret {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}
		c.Next()
	}
}
