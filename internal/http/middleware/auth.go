package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"holidays/internal/auth"
)

// RequireStaff rejects requests without a valid access token. Claims are
// stored on the context for handlers that need the caller's identity.
func RequireStaff(m auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Authentication credentials were not provided."})
			return
		}

		claims, err := m.Verify(strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Token is invalid or expired"})
			return
		}
		if t, _ := claims["token_type"].(string); t != "access" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Token is invalid or expired"})
			return
		}

		c.Set("claims", claims)
		c.Next()
	}
}

// RequireSuperuser layers on RequireStaff for destructive admin routes.
func RequireSuperuser() gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := c.Get("claims")
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Authentication credentials were not provided."})
			return
		}
		claims, _ := v.(jwt.MapClaims)
		if is, _ := claims["is_superuser"].(bool); !is {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": "You do not have permission to perform this action."})
			return
		}
		c.Next()
	}
}
