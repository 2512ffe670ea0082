package middleware

import (
	"net/http"

	"floreria-be/internal/auth"
	"floreria-be/internal/role"

	"github.com/gin-gonic/gin"
)

// RequireAuth rejects anonymous callers.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := auth.IdentityFrom(c.Request.Context()); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				gin.H{"detail": "Authentication credentials were not provided."})
			return
		}
		c.Next()
	}
}

// RequireRole rejects anonymous callers with 401 and authenticated callers
// outside the allowed groups with 403. Superusers always pass.
func RequireRole(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := auth.IdentityFrom(c.Request.Context())
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				gin.H{"detail": "Authentication credentials were not provided."})
			return
		}

		if !role.InRole(identity, allowed...) {
			c.AbortWithStatusJSON(http.StatusForbidden,
				gin.H{"detail": "You do not have permission to perform this action."})
			return
		}

		c.Next()
	}
}
