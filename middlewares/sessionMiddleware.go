package middlewares

import (
	"context"
	"net/http"
	"strings"

	"github.com/cibdesk/interlinkages_backend/config"
	"github.com/cibdesk/interlinkages_backend/utils"
	"github.com/gin-gonic/gin"
)

// SessionMiddleware reads the bearer token, validates it and puts the
// session identity in the request context. Requests without a token
// pass through anonymously; route groups that need auth check the
// context downstream.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Request.Header.Get("token")
		if token == "" {
			auth := c.Request.Header.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}
		if token == "" {
			c.Next()
			return
		}

		parsed, err := utils.JwtValidate(token)
		if err != nil || !parsed.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}
		claims, ok := parsed.Claims.(*utils.JwtCustomClaim)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		ctx := context.WithValue(c.Request.Context(), utils.ContextKeyToken, token)
		ctx = context.WithValue(ctx, utils.ContextKeyUserId, claims.ID)
		ctx = context.WithValue(ctx, utils.ContextKeyIsAdmin, claims.Role == "admin")
		if username, exists, err := config.GetRedisValue("Token:" + token); err == nil && exists {
			ctx = context.WithValue(ctx, utils.ContextKeyUsername, username)
		}
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
