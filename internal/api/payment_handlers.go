package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"zenvy-storefront/internal/backend"
	"zenvy-storefront/internal/checkout"
)

// BeginCheckout starts a payment for the session's cart. The shipping
// address is checked before any commerce API call; on success the widget
// options the storefront needs to open the gateway are returned.
func BeginCheckout(c *gin.Context) {
	rt := runtime(c)
	if rt == nil {
		return
	}

	options, err := rt.Checkout.Begin(c.Request.Context(), rt.Auth.CurrentUser())
	if err != nil {
		if errors.Is(err, checkout.ErrIncompleteAddress) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   err.Error(),
			})
			return
		}
		respondError(c, err)
		return
	}

	respondOK(c, gin.H{"checkout": options})
}

// VerifyCheckout forwards the gateway's signed success response for
// server-side verification. On success the cart has been emptied by the
// backend and the confirmed order id is returned.
func VerifyCheckout(c *gin.Context) {
	rt := runtime(c)
	if rt == nil {
		return
	}

	var req struct {
		RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
		RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
		RazorpaySignature string `json:"razorpay_signature" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Gateway response fields are required",
		})
		return
	}

	orderID, err := rt.Checkout.HandleSuccess(c.Request.Context(), backend.VerifyPaymentRequest{
		RazorpayOrderID:   req.RazorpayOrderID,
		RazorpayPaymentID: req.RazorpayPaymentID,
		RazorpaySignature: req.RazorpaySignature,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, gin.H{
		"orderId":  orderID,
		"redirect": "/order-success",
	})
}

// DismissCheckout records that the user closed the gateway widget. The
// cart is left untouched so checkout can be retried.
func DismissCheckout(c *gin.Context) {
	rt := runtime(c)
	if rt == nil {
		return
	}

	message := rt.Checkout.HandleDismiss(c.Request.Context())
	respondOK(c, gin.H{"message": message})
}

// FailCheckout records a payment-failed event raised by the gateway
func FailCheckout(c *gin.Context) {
	rt := runtime(c)
	if rt == nil {
		return
	}

	var req struct {
		Description string `json:"description"`
	}
	_ = c.ShouldBindJSON(&req)

	message := rt.Checkout.HandleFailure(c.Request.Context(), req.Description)
	respondOK(c, gin.H{"message": message})
}

// GetCheckoutState reports the checkout machine's current phase
func GetCheckoutState(c *gin.Context) {
	rt := runtime(c)
	if rt == nil {
		return
	}

	state := rt.Checkout.State()
	payload := gin.H{"phase": state.Phase.String()}
	if state.OrderID != "" {
		payload["orderId"] = state.OrderID
	}
	if state.Reason != "" {
		payload["reason"] = state.Reason
	}
	respondOK(c, payload)
}
