package middleware

import (
	"floreria-be/internal/auth"
	"floreria-be/internal/user"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the caller identity from its access token, when
// present. Anonymous and bad-token requests pass through unauthenticated;
// the per-route role guard decides what they may do.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := auth.ExtractAccessToken(c.Request)
		if tokenStr == "" {
			c.Next()
			return
		}

		claims, err := user.ParseJWT(tokenStr)
		if err != nil {
			c.Next()
			return
		}

		identity := auth.Identity{
			UserID:      claims.UserID,
			Username:    claims.Username,
			Email:       claims.Email,
			Groups:      claims.Groups,
			IsSuperuser: claims.IsSuperuser,
		}

		ctx := auth.WithIdentity(c.Request.Context(), identity)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
