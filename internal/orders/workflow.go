package orders

import (
	"context"
	"fmt"

	"zenvy-storefront/internal/backend"
	"zenvy-storefront/internal/models"
)

// statusTransitions is the admin fulfillment state machine. DELIVERED and
// CANCELLED are terminal.
var statusTransitions = map[models.OrderStatus][]models.OrderStatus{
	models.OrderPlaced:         {models.OrderProcessing, models.OrderCancelled},
	models.OrderProcessing:     {models.OrderShipped, models.OrderCancelled},
	models.OrderShipped:        {models.OrderOutForDelivery, models.OrderCancelled},
	models.OrderOutForDelivery: {models.OrderDelivered, models.OrderCancelled},
	models.OrderDelivered:      {},
	models.OrderCancelled:      {},
}

// ValidationError is a client-side rejection raised before any commerce
// API call.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// IsTerminal reports whether an order can no longer change state
func IsTerminal(status models.OrderStatus) bool {
	return status == models.OrderDelivered || status == models.OrderCancelled
}

// CanTransition reports whether from may move directly to to
func CanTransition(from, to models.OrderStatus) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// AvailableTransitions returns the transitions the admin may take on an
// order. The set is empty unless the payment succeeded, regardless of
// fulfillment state.
func AvailableTransitions(order *models.Order) []models.OrderStatus {
	if order == nil || order.PaymentStatus != models.PaymentSuccess {
		return nil
	}
	next := statusTransitions[order.OrderStatus]
	if len(next) == 0 {
		return nil
	}
	out := make([]models.OrderStatus, len(next))
	copy(out, next)
	return out
}

// CanCancel reports whether the customer may still cancel
func CanCancel(status models.OrderStatus) bool {
	return status == models.OrderPlaced || status == models.OrderProcessing
}

// Workflow drives the admin order management screen
type Workflow struct {
	client *backend.Client
}

// NewWorkflow creates an admin order workflow
func NewWorkflow(client *backend.Client) *Workflow {
	return &Workflow{client: client}
}

// List fetches orders with optional status / payment filters
func (w *Workflow) List(ctx context.Context, query backend.AdminOrderQuery) ([]*models.Order, error) {
	return w.client.AdminOrders(ctx, query)
}

// Get fetches one order
func (w *Workflow) Get(ctx context.Context, orderID string) (*models.Order, error) {
	return w.client.AdminOrder(ctx, orderID)
}

// UpdateStatus moves an order to a new state after checking the
// transition is one the workflow offers for it.
func (w *Workflow) UpdateStatus(ctx context.Context, order *models.Order, next models.OrderStatus) (*models.Order, error) {
	if order == nil {
		return nil, &ValidationError{Message: "order is required"}
	}
	if order.PaymentStatus != models.PaymentSuccess {
		return nil, &ValidationError{Message: fmt.Sprintf("order %s payment is %s; status changes require a successful payment", order.ID, order.PaymentStatus)}
	}
	if !CanTransition(order.OrderStatus, next) {
		return nil, &ValidationError{Message: fmt.Sprintf("cannot move order %s from %s to %s", order.ID, order.OrderStatus, next)}
	}
	return w.client.UpdateOrderStatus(ctx, order.ID, next)
}

// HardDelete purges an order record entirely, regardless of state. The
// confirmed flag stands in for the blocking prompt; nothing happens
// without it.
func (w *Workflow) HardDelete(ctx context.Context, orderID string, confirmed bool) error {
	if !confirmed {
		return &ValidationError{Message: "order deletion requires confirmation"}
	}
	return w.client.DeleteAdminOrder(ctx, orderID)
}
