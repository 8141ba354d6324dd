package store

import (
	"context"
	"sync"
	"time"

	"zenvy-storefront/internal/backend"
	"zenvy-storefront/internal/chat"
	"zenvy-storefront/internal/checkout"
	"zenvy-storefront/internal/inventory"
	"zenvy-storefront/internal/orders"
	"zenvy-storefront/internal/session"
)

// RuntimeOptions tunes a runtime's collaborators; zero values pick the
// production defaults.
type RuntimeOptions struct {
	Scripts              checkout.ScriptLoader
	Uploader             inventory.Uploader
	NotificationInterval time.Duration
	OrderPollInterval    time.Duration
}

// Runtime is the full set of state containers for one browser session.
// Page handlers compose these; none of them talk to the commerce API
// directly.
type Runtime struct {
	Session       *session.Session
	Client        *backend.Client
	Auth          *Auth
	Cart          *Cart
	Wishlist      *Wishlist
	Notifications *Notifications
	Checkout      *checkout.Flow
	Orders        *orders.Tracker
	Workflow      *orders.Workflow
	Inventory     *inventory.Manager
	Chat          *chat.Conversation

	notifInterval time.Duration
	orderInterval time.Duration

	mu       sync.Mutex
	lastSeen time.Time
}

// NewRuntime wires the containers for a session and bootstraps auth from
// the persisted snapshot. Pollers start and stop with the authentication
// flag.
func NewRuntime(ctx context.Context, apiBaseURL string, sess *session.Session, opts RuntimeOptions) *Runtime {
	if opts.NotificationInterval <= 0 {
		opts.NotificationInterval = DefaultNotificationPollInterval
	}
	if opts.OrderPollInterval <= 0 {
		opts.OrderPollInterval = orders.DefaultActivePollInterval
	}

	client := backend.NewClient(apiBaseURL, sess)
	auth := NewAuth(client, sess)

	rt := &Runtime{
		Session:       sess,
		Client:        client,
		Auth:          auth,
		Cart:          NewCart(client, auth),
		Wishlist:      NewWishlist(client, auth),
		Notifications: NewNotifications(client, auth),
		Orders:        orders.NewTracker(client),
		Workflow:      orders.NewWorkflow(client),
		Inventory:     inventory.NewManager(client, opts.Uploader),
		Chat:          chat.NewConversation(client),
		notifInterval: opts.NotificationInterval,
		orderInterval: opts.OrderPollInterval,
		lastSeen:      time.Now(),
	}
	rt.Checkout = checkout.NewFlow(client, opts.Scripts, rt.Cart)

	auth.OnAuthChange(func(authenticated bool) {
		if authenticated {
			rt.Notifications.Start(rt.notifInterval)
			rt.Orders.Start(rt.orderInterval)
		} else {
			rt.Notifications.Stop()
			rt.Orders.Stop()
		}
	})

	auth.Bootstrap(ctx)
	return rt
}

// Touch records activity for idle eviction
func (rt *Runtime) Touch() {
	rt.mu.Lock()
	rt.lastSeen = time.Now()
	rt.mu.Unlock()
}

// LastSeen returns the most recent activity time
func (rt *Runtime) LastSeen() time.Time {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.lastSeen
}

// Close stops the runtime's background pollers
func (rt *Runtime) Close() {
	rt.Notifications.Stop()
	rt.Orders.Stop()
}
