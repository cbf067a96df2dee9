package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"portfolio/internal/auth"
)

const adminEmailKey = "adminEmail"

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
}

// AuthMiddleware verifies the bearer token and attaches the admin
// principal to the context before any mutating handler runs.
func AuthMiddleware(authService *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c)
			return
		}

		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c)
			return
		}

		rawToken := parts[1]
		if strings.TrimSpace(rawToken) == "" {
			abortUnauthorized(c)
			return
		}

		claims, err := authService.ValidateToken(rawToken)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		c.Set(adminEmailKey, claims.Email)
		c.Next()
	}
}

// AdminEmailFromContext returns the authenticated admin identity, if any.
func AdminEmailFromContext(c *gin.Context) (string, bool) {
	value, ok := c.Get(adminEmailKey)
	if !ok {
		return "", false
	}
	email, ok := value.(string)
	return email, ok
}
