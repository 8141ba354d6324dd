package orders

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"zenvy-storefront/internal/backend"
	"zenvy-storefront/internal/models"
)

// DefaultActivePollInterval is how often the active-orders view refetches
const DefaultActivePollInterval = 30 * time.Second

// Tracker is the customer's read side: it polls active orders on a fixed
// interval and supports cancellation while an order is still early enough
// in the lifecycle.
type Tracker struct {
	client *backend.Client

	mu     sync.RWMutex
	active []*models.Order

	ticker *time.Ticker
	stop   chan struct{}
}

// NewTracker creates an order tracker
func NewTracker(client *backend.Client) *Tracker {
	return &Tracker{client: client}
}

// Start fetches immediately and then polls until Stop
func (t *Tracker) Start(interval time.Duration) {
	t.mu.Lock()
	if t.stop != nil {
		t.mu.Unlock()
		return
	}
	t.ticker = time.NewTicker(interval)
	t.stop = make(chan struct{})
	ticker, stop := t.ticker, t.stop
	t.mu.Unlock()

	if err := t.Refresh(context.Background()); err != nil {
		log.Printf("Failed to fetch active orders: %v", err)
	}

	go func() {
		for {
			select {
			case <-ticker.C:
				if err := t.Refresh(context.Background()); err != nil {
					log.Printf("Failed to fetch active orders: %v", err)
				}
			case <-stop:
				return
			}
		}
	}()
}

// Stop tears the poller down
func (t *Tracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stop == nil {
		return
	}
	t.ticker.Stop()
	close(t.stop)
	t.ticker = nil
	t.stop = nil
}

// Refresh refetches the active order list
func (t *Tracker) Refresh(ctx context.Context) error {
	orders, err := t.client.ActiveOrders(ctx)
	if err != nil {
		return err
	}
	t.mu.Lock()
	t.active = orders
	t.mu.Unlock()
	return nil
}

// Active returns a snapshot of the held list
func (t *Tracker) Active() []*models.Order {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]*models.Order, len(t.active))
	copy(out, t.active)
	return out
}

// Cancel cancels one of the user's orders. Only PLACED and PROCESSING
// orders are cancellable; anything later is rejected without a network
// call.
func (t *Tracker) Cancel(ctx context.Context, orderID string) (*models.Order, error) {
	t.mu.RLock()
	var found *models.Order
	for _, order := range t.active {
		if order.ID == orderID {
			found = order
			break
		}
	}
	t.mu.RUnlock()

	if found != nil && !CanCancel(found.OrderStatus) {
		return nil, &ValidationError{Message: fmt.Sprintf("order in status %s can no longer be cancelled", found.OrderStatus)}
	}

	order, err := t.client.CancelOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if refreshErr := t.Refresh(ctx); refreshErr != nil {
		log.Printf("Failed to refresh active orders after cancel: %v", refreshErr)
	}
	return order, nil
}

// HistoryFilter selects a slice of the order history view
type HistoryFilter string

const (
	HistoryAll       HistoryFilter = "all"
	HistoryActive    HistoryFilter = "active"
	HistoryDelivered HistoryFilter = "delivered"
	HistoryCancelled HistoryFilter = "cancelled"
)

// FilterHistory is the pure client-side filter over a single fetched
// list; no server-side pagination is modeled.
func FilterHistory(orders []*models.Order, filter HistoryFilter) []*models.Order {
	if filter == "" || filter == HistoryAll {
		return orders
	}
	var out []*models.Order
	for _, order := range orders {
		switch filter {
		case HistoryActive:
			if !IsTerminal(order.OrderStatus) {
				out = append(out, order)
			}
		case HistoryDelivered:
			if order.OrderStatus == models.OrderDelivered {
				out = append(out, order)
			}
		case HistoryCancelled:
			if order.OrderStatus == models.OrderCancelled {
				out = append(out, order)
			}
		}
	}
	return out
}

// History fetches the full order history
func (t *Tracker) History(ctx context.Context) ([]*models.Order, error) {
	return t.client.OrderHistory(ctx)
}
