package checkout

import (
	"context"
	"errors"
	"log"
	"sync"

	"zenvy-storefront/internal/backend"
	"zenvy-storefront/internal/models"
)

const (
	brandName        = "ZENVY"
	brandDescription = "Asset Requisition"
	brandThemeColor  = "#4F46E5"

	reasonScriptLoadFailed = "Razorpay SDK failed to load"
	reasonCancelled        = "Payment cancelled"
	reasonPaymentFailed    = "Payment failed"

	// messageCancelled is what the failure view shows after a dismissal,
	// distinct from the reason reported to the backend.
	messageCancelled        = "Payment was cancelled."
	messageScriptLoadFailed = "Failed to load Razorpay. Please try again."
)

// ErrIncompleteAddress rejects a checkout before any backend call when the
// shipping address is missing fields. The caller links the user to the
// profile editor.
var ErrIncompleteAddress = errors.New("Shipping address required. Update your profile to proceed.")

// CartRefresher refreshes the cart after the backend authoritatively
// empties it on a verified payment.
type CartRefresher interface {
	Refresh(ctx context.Context) error
}

// Flow orchestrates one checkout at a time for a session: order creation,
// gateway script loading, widget hand-off, and the three resolution paths.
// Every exit from the gateway interaction is reported to the backend, even
// best-effort, so payment records never have a silent gap.
type Flow struct {
	client  *backend.Client
	scripts ScriptLoader
	cart    CartRefresher

	mu    sync.Mutex
	state State
}

// NewFlow creates a checkout flow
func NewFlow(client *backend.Client, scripts ScriptLoader, cart CartRefresher) *Flow {
	if scripts == nil {
		scripts = NewScriptLoader()
	}
	return &Flow{client: client, scripts: scripts, cart: cart}
}

// State returns a copy of the current machine state
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Flow) apply(event Event) error {
	next, err := Next(f.state, event)
	if err != nil {
		return err
	}
	f.state = next
	return nil
}

// Begin runs address check, order creation, and script loading, and
// returns the widget options for the gateway interaction. An incomplete
// address returns ErrIncompleteAddress without touching the backend and
// leaves the machine at rest.
func (f *Flow) Begin(ctx context.Context, user *models.User) (*WidgetOptions, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.state.Phase.resting() {
		return nil, errors.New("checkout already in progress")
	}

	if user == nil || !user.Address.IsComplete() {
		return nil, ErrIncompleteAddress
	}

	if err := f.apply(EventBegin{}); err != nil {
		return nil, err
	}

	order, err := f.client.CreateGatewayOrder(ctx)
	if err != nil {
		f.fail(err.Error())
		return nil, err
	}
	if err := f.apply(EventOrderCreated{Order: order}); err != nil {
		return nil, err
	}

	if err := f.scripts.Ensure(ctx); err != nil {
		log.Printf("Checkout script load failed: %v", err)
		f.report(ctx, order.OrderID, reasonScriptLoadFailed)
		f.fail(messageScriptLoadFailed)
		return nil, errors.New(messageScriptLoadFailed)
	}
	if err := f.apply(EventGatewayReady{}); err != nil {
		return nil, err
	}

	return &WidgetOptions{
		Key:         order.KeyID,
		Amount:      order.Amount,
		Currency:    order.Currency,
		OrderID:     order.OrderID,
		Name:        brandName,
		Description: brandDescription,
		Prefill:     WidgetPrefill{Name: user.Name, Email: user.Email},
		Theme:       WidgetTheme{Color: brandThemeColor},
	}, nil
}

// HandleSuccess forwards the gateway's signed response for verification.
// On success the cart is refreshed (the backend emptied it) and the
// confirmed order id is returned for the success view.
func (f *Flow) HandleSuccess(ctx context.Context, req backend.VerifyPaymentRequest) (string, error) {
	f.mu.Lock()
	if err := f.apply(EventVerifying{}); err != nil {
		f.mu.Unlock()
		return "", err
	}
	f.mu.Unlock()

	order, err := f.client.VerifyPayment(ctx, req)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.fail(err.Error())
		return "", err
	}
	if err := f.apply(EventVerified{OrderID: order.ID}); err != nil {
		return "", err
	}

	if f.cart != nil {
		if err := f.cart.Refresh(ctx); err != nil {
			log.Printf("Failed to refresh cart after payment: %v", err)
		}
	}
	return order.ID, nil
}

// HandleDismiss resolves a user-closed widget: the cancellation is
// reported best-effort and the flow fails with the cancellation message.
// The cart is untouched so the user can retry.
func (f *Flow) HandleDismiss(ctx context.Context) string {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.report(ctx, f.gatewayOrderID(), reasonCancelled)
	f.fail(messageCancelled)
	return messageCancelled
}

// HandleFailure resolves a gateway payment-failed event with its
// human-readable description.
func (f *Flow) HandleFailure(ctx context.Context, description string) string {
	f.mu.Lock()
	defer f.mu.Unlock()

	reason := description
	if reason == "" {
		reason = reasonPaymentFailed
	}
	f.report(ctx, f.gatewayOrderID(), reason)
	f.fail(reason)
	return reason
}

func (f *Flow) gatewayOrderID() string {
	if f.state.Order != nil {
		return f.state.Order.OrderID
	}
	return ""
}

// report tells the backend why the gateway interaction did not complete.
// Secondary failures are swallowed; bookkeeping must not mask the primary
// outcome.
func (f *Flow) report(ctx context.Context, gatewayOrderID, reason string) {
	if gatewayOrderID == "" {
		return
	}
	if err := f.client.MarkPaymentFailed(ctx, gatewayOrderID, reason); err != nil {
		log.Printf("Failed to report payment failure: %v", err)
	}
}

// fail forces the machine into the failed phase with reason. Used on
// paths where the triggering event is already known valid; an invalid
// transition here means the flow was resolved concurrently, which we keep.
func (f *Flow) fail(reason string) {
	if err := f.apply(EventFailed{Reason: reason}); err != nil {
		log.Printf("Checkout state: %v", err)
	}
}
