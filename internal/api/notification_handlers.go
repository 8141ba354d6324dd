package api

import (
	"github.com/gin-gonic/gin"
)

// GetNotifications returns the session's notifications and unread count,
// refreshing from the commerce API first.
func GetNotifications(c *gin.Context) {
	rt := runtime(c)
	if rt == nil {
		return
	}

	if err := rt.Notifications.Refresh(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{
		"notifications": rt.Notifications.Items(),
		"unread":        rt.Notifications.Unread(),
	})
}

// MarkNotificationRead marks one notification read. The local flip is
// optimistic; a failed backend write is logged, not rolled back.
func MarkNotificationRead(c *gin.Context) {
	rt := runtime(c)
	if rt == nil {
		return
	}

	rt.Notifications.MarkAsRead(c.Request.Context(), c.Param("id"))
	respondOK(c, gin.H{"unread": rt.Notifications.Unread()})
}

// MarkAllNotificationsRead marks every notification read
func MarkAllNotificationsRead(c *gin.Context) {
	rt := runtime(c)
	if rt == nil {
		return
	}

	rt.Notifications.MarkAllAsRead(c.Request.Context())
	respondOK(c, gin.H{"unread": rt.Notifications.Unread()})
}
