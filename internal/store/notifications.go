package store

import (
	"context"
	"log"
	"sync"
	"time"

	"zenvy-storefront/internal/backend"
	"zenvy-storefront/internal/models"
)

// DefaultNotificationPollInterval is how often the feed is refetched
// while the poller runs.
const DefaultNotificationPollInterval = 60 * time.Second

// Notifications polls the backend for unread alerts on a fixed interval.
// Mark-read operations patch local state optimistically and never roll
// back on a failed backend call; the next poll reconciles.
type Notifications struct {
	client *backend.Client
	auth   *Auth

	mu      sync.RWMutex
	items   []*models.Notification
	unread  int
	loading bool

	ticker *time.Ticker
	stop   chan struct{}
}

// NewNotifications creates the notification container
func NewNotifications(client *backend.Client, auth *Auth) *Notifications {
	return &Notifications{client: client, auth: auth}
}

// Start fetches immediately and then polls on the given interval until
// Stop is called.
func (n *Notifications) Start(interval time.Duration) {
	n.mu.Lock()
	if n.stop != nil {
		n.mu.Unlock()
		return
	}
	n.ticker = time.NewTicker(interval)
	n.stop = make(chan struct{})
	ticker, stop := n.ticker, n.stop
	n.mu.Unlock()

	if err := n.Refresh(context.Background()); err != nil {
		log.Printf("Failed to fetch notifications: %v", err)
	}

	go func() {
		for {
			select {
			case <-ticker.C:
				if err := n.Refresh(context.Background()); err != nil {
					log.Printf("Failed to fetch notifications: %v", err)
				}
			case <-stop:
				return
			}
		}
	}()
}

// Stop tears the poller down
func (n *Notifications) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.stop == nil {
		return
	}
	n.ticker.Stop()
	close(n.stop)
	n.ticker = nil
	n.stop = nil
}

// Refresh refetches the feed. A no-op while unauthenticated.
func (n *Notifications) Refresh(ctx context.Context) error {
	if !n.auth.IsAuthenticated() {
		return nil
	}

	n.mu.Lock()
	n.loading = true
	n.mu.Unlock()

	items, err := n.client.Notifications(ctx)

	n.mu.Lock()
	defer n.mu.Unlock()
	n.loading = false
	if err != nil {
		return err
	}

	n.items = items
	n.unread = 0
	for _, item := range items {
		if !item.IsRead {
			n.unread++
		}
	}
	return nil
}

// Items returns a snapshot of the held feed
func (n *Notifications) Items() []*models.Notification {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]*models.Notification, len(n.items))
	copy(out, n.items)
	return out
}

// Unread returns the unread counter
func (n *Notifications) Unread() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.unread
}

// MarkAsRead flips one notification to read locally, then fires the
// backend call. A failure is logged and the optimistic patch stands.
func (n *Notifications) MarkAsRead(ctx context.Context, id string) {
	n.mu.Lock()
	for _, item := range n.items {
		if item.ID == id && !item.IsRead {
			item.IsRead = true
			if n.unread > 0 {
				n.unread--
			}
			break
		}
	}
	n.mu.Unlock()

	if err := n.client.MarkNotificationRead(ctx, id); err != nil {
		log.Printf("Failed to mark notification as read: %v", err)
	}
}

// MarkAllAsRead flips every notification to read locally and zeroes the
// counter, then fires the backend call, again without rollback.
func (n *Notifications) MarkAllAsRead(ctx context.Context) {
	n.mu.Lock()
	for _, item := range n.items {
		item.IsRead = true
	}
	n.unread = 0
	n.mu.Unlock()

	if err := n.client.MarkAllNotificationsRead(ctx); err != nil {
		log.Printf("Failed to mark all notifications as read: %v", err)
	}
}
