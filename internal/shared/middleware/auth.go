package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"countries-backend/internal/shared/response"
	"countries-backend/pkg/jwt"
)

// SubjectKey is the gin context key holding the authenticated subject.
const SubjectKey = "subject"

// Auth validates the bearer token on every request and stores the token
// subject in the context for downstream middleware.
func Auth(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := manager.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		c.Set(SubjectKey, claims.Subject)
		c.Next()
	}
}
