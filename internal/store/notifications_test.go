package store

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zenvy-storefront/internal/models"
)

func serveNotifications(items []*models.Notification) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"notifications": items})
	}
}

func TestNotificationsRefreshSkippedWhenLoggedOut(t *testing.T) {
	f := newFakeAPI()
	defer f.Close()
	auth, _, client := newTestAuth(f)
	notifications := NewNotifications(client, auth)

	require.NoError(t, notifications.Refresh(context.Background()))
	assert.Equal(t, 0, f.TotalHits())
	assert.Empty(t, notifications.Items())
}

func TestNotificationsUnreadCount(t *testing.T) {
	f := newFakeAPI()
	defer f.Close()
	f.Handle("/notifications", serveNotifications([]*models.Notification{
		{ID: "n1", Title: "Order shipped", IsRead: false},
		{ID: "n2", Title: "Sale", IsRead: true},
		{ID: "n3", Title: "Order delivered", IsRead: false},
	}))
	auth, _, client := newTestAuth(f)
	notifications := NewNotifications(client, auth)
	auth.Establish("tok", testUser())

	require.NoError(t, notifications.Refresh(context.Background()))
	assert.Len(t, notifications.Items(), 3)
	assert.Equal(t, 2, notifications.Unread())
}

func TestMarkAsReadIsOptimistic(t *testing.T) {
	f := newFakeAPI()
	defer f.Close()
	f.Handle("/notifications", serveNotifications([]*models.Notification{
		{ID: "n1", IsRead: false},
	}))
	f.Handle("/notifications/n1/read", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"message": "write failed"})
	})
	auth, _, client := newTestAuth(f)
	notifications := NewNotifications(client, auth)
	auth.Establish("tok", testUser())
	require.NoError(t, notifications.Refresh(context.Background()))

	notifications.MarkAsRead(context.Background(), "n1")

	// The local flip stands even though the backend write failed
	assert.Equal(t, 0, notifications.Unread())
	assert.Equal(t, 1, f.Hits("PATCH /notifications/n1/read"))
}

func TestMarkAllAsRead(t *testing.T) {
	f := newFakeAPI()
	defer f.Close()
	f.Handle("/notifications", serveNotifications([]*models.Notification{
		{ID: "n1", IsRead: false},
		{ID: "n2", IsRead: false},
		{ID: "n3", IsRead: true},
	}))
	f.Handle("/notifications/read-all", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	auth, _, client := newTestAuth(f)
	notifications := NewNotifications(client, auth)
	auth.Establish("tok", testUser())
	require.NoError(t, notifications.Refresh(context.Background()))
	require.Equal(t, 2, notifications.Unread())

	notifications.MarkAllAsRead(context.Background())
	assert.Equal(t, 0, notifications.Unread())
	for _, n := range notifications.Items() {
		assert.True(t, n.IsRead)
	}
}

func TestMarkAllAsReadWithNothingUnread(t *testing.T) {
	f := newFakeAPI()
	defer f.Close()
	f.Handle("/notifications", serveNotifications([]*models.Notification{
		{ID: "n1", IsRead: true},
	}))
	auth, _, client := newTestAuth(f)
	notifications := NewNotifications(client, auth)
	auth.Establish("tok", testUser())
	require.NoError(t, notifications.Refresh(context.Background()))

	notifications.MarkAllAsRead(context.Background())
	assert.Equal(t, 0, notifications.Unread())
}
