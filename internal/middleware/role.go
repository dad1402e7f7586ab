package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireManagerRole gates a route group to callers whose role passes the
// Admin/Manager check. Must run after AuthMiddleware.
func RequireManagerRole() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, found := GetUserRoleFromContext(c)
		if !found {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		if !role.IsManagerial() {
			GetLoggerFromCtx(c.Request.Context()).Warn("Managerial role required", "role", string(role))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "You do not have permission to perform this action"})
			return
		}
		c.Next()
	}
}
