package middleware

import (
	"github.com/gin-gonic/gin"

	"Implicate/internal/pkg/response"
)

// RequireAdmin gates the moderation surface. Runs after AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("is_admin") {
			response.Fail(c, response.Forbidden, "admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}
