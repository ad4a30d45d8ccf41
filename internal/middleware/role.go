package middleware

import (
	"net/http"

	"github.com/Gdgddgdgz/GenesisHackathon/internal/auth"

	"github.com/gin-gonic/gin"
)

// RequireRetailer gates a route to the single role this service issues.
// Runs after AuthMiddleware has attached the validated claims.
func RequireRetailer() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := c.Get("userRole")
		if !ok || role != auth.RoleRetailer {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "retailer access required"})
			return
		}
		c.Next()
	}
}
