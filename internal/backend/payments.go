package backend

import (
	"context"
	"net/http"

	"zenvy-storefront/internal/models"
)

// CreateGatewayOrder asks the commerce API for a payment-gateway order
// handle covering the current cart.
func (c *Client) CreateGatewayOrder(ctx context.Context) (*models.GatewayOrder, error) {
	var resp models.GatewayOrder
	if err := c.request(ctx, http.MethodPost, "/payment/create-order", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// VerifyPaymentRequest is the gateway's signed success triple forwarded
// for server-side verification.
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

// VerifyPayment forwards the signed gateway response. On success the
// backend finalizes the order and empties the cart.
func (c *Client) VerifyPayment(ctx context.Context, req VerifyPaymentRequest) (*models.Order, error) {
	var resp OrderResponse
	if err := c.request(ctx, http.MethodPost, "/payment/verify", req, &resp); err != nil {
		return nil, err
	}
	return resp.Order, nil
}

// MarkPaymentFailed records why a gateway interaction did not complete so
// the server-side payment record never has a silent gap.
func (c *Client) MarkPaymentFailed(ctx context.Context, gatewayOrderID, reason string) error {
	payload := struct {
		RazorpayOrderID string `json:"razorpay_order_id"`
		Reason          string `json:"reason"`
	}{gatewayOrderID, reason}
	return c.request(ctx, http.MethodPost, "/payment/fail", payload, nil)
}
