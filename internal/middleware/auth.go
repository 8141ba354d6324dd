package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAuth rejects requests whose session is not authenticated
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		runtime := GetRuntime(c)
		if runtime == nil || !runtime.Auth.IsAuthenticated() {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Authentication required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin rejects requests from sessions that are not admin accounts
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		runtime := GetRuntime(c)
		if runtime == nil || !runtime.Auth.IsAuthenticated() {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Authentication required",
			})
			c.Abort()
			return
		}

		user := runtime.Auth.CurrentUser()
		if user == nil || !user.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   "Admin access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
