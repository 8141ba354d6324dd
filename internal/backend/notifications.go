package backend

import (
	"context"
	"net/http"

	"zenvy-storefront/internal/models"
)

// NotificationListResponse wraps the notification feed
type NotificationListResponse struct {
	Notifications []*models.Notification `json:"notifications"`
}

// Notifications fetches the user's alerts, newest first
func (c *Client) Notifications(ctx context.Context) ([]*models.Notification, error) {
	var resp NotificationListResponse
	if err := c.request(ctx, http.MethodGet, "/notifications", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Notifications, nil
}

// MarkNotificationRead flips one notification to read
func (c *Client) MarkNotificationRead(ctx context.Context, id string) error {
	return c.request(ctx, http.MethodPatch, "/notifications/"+id+"/read", nil, nil)
}

// MarkAllNotificationsRead flips every notification to read
func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	return c.request(ctx, http.MethodPatch, "/notifications/read-all", nil, nil)
}
