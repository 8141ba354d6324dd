package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"zenvy-storefront/internal/session"
	"zenvy-storefront/internal/store"
)

const runtimeKey = "runtime"

// Sessions resolves the signed session cookie, minting a fresh session
// when the cookie is missing or invalid, and attaches the session's
// runtime to the request context.
func Sessions(manager *session.Manager, registry *store.Registry, secureCookies bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sid string

		if cookie, err := c.Cookie(session.CookieName); err == nil {
			if resolved, err := manager.Resolve(cookie); err == nil {
				sid = resolved
			}
		}

		if sid == "" {
			newSID, signed, err := manager.Issue()
			if err != nil {
				log.Printf("Failed to issue session: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"error":   "Failed to establish session",
				})
				c.Abort()
				return
			}
			sid = newSID
			c.SetCookie(session.CookieName, signed, manager.MaxAge(), "/", "", secureCookies, true)
		}

		runtime, err := registry.Acquire(c.Request.Context(), sid)
		if err != nil {
			log.Printf("Failed to acquire session runtime: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Failed to establish session",
			})
			c.Abort()
			return
		}

		runtime.Touch()
		c.Set(runtimeKey, runtime)
		c.Set("session_id", sid)
		c.Next()
	}
}

// GetRuntime returns the session runtime attached by Sessions
func GetRuntime(c *gin.Context) *store.Runtime {
	value, exists := c.Get(runtimeKey)
	if !exists {
		return nil
	}
	runtime, ok := value.(*store.Runtime)
	if !ok {
		return nil
	}
	return runtime
}
