package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lucasraugi/presentes-api/internal/auth"
	"github.com/lucasraugi/presentes-api/internal/response"
)

// RequireAdmin guards admin routes: it validates the Bearer session token
// on every request and aborts with 401 when it is missing or invalid.
func RequireAdmin(manager *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			response.UnauthorizedError(c, "Missing session token")
			c.Abort()
			return
		}

		if err := manager.Verify(token); err != nil {
			response.UnauthorizedError(c, "Invalid or expired session")
			c.Abort()
			return
		}

		c.Next()
	}
}
