package checkout

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// RazorpayScriptURL is the hosted checkout script injected into the page
const RazorpayScriptURL = "https://checkout.razorpay.com/v1/checkout.js"

// ScriptLoader ensures the third-party checkout script can be served to
// the browser before the widget is opened.
type ScriptLoader interface {
	Ensure(ctx context.Context) error
}

// ScriptLoaderFunc adapts a function to ScriptLoader
type ScriptLoaderFunc func(ctx context.Context) error

func (f ScriptLoaderFunc) Ensure(ctx context.Context) error { return f(ctx) }

// HTTPScriptLoader probes the hosted script with a HEAD request
type HTTPScriptLoader struct {
	URL    string
	Client *http.Client
}

// NewScriptLoader probes the default Razorpay checkout script
func NewScriptLoader() *HTTPScriptLoader {
	return &HTTPScriptLoader{
		URL:    RazorpayScriptURL,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (l *HTTPScriptLoader) Ensure(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, l.URL, nil)
	if err != nil {
		return fmt.Errorf("failed to create script probe: %w", err)
	}

	resp, err := l.Client.Do(req)
	if err != nil {
		return fmt.Errorf("checkout script unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 400 {
		return fmt.Errorf("checkout script unreachable: status %d", resp.StatusCode)
	}
	return nil
}

// WidgetOptions configures the third-party checkout widget. The shape
// mirrors what the hosted script expects.
type WidgetOptions struct {
	Key         string        `json:"key"`
	Amount      float64       `json:"amount"`
	Currency    string        `json:"currency"`
	OrderID     string        `json:"order_id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Prefill     WidgetPrefill `json:"prefill"`
	Theme       WidgetTheme   `json:"theme"`
}

// WidgetPrefill pre-populates the widget with the buyer's identity
type WidgetPrefill struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// WidgetTheme brands the widget
type WidgetTheme struct {
	Color string `json:"color"`
}
