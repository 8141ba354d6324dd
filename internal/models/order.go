package models

import "time"

// OrderStatus represents the fulfillment-lifecycle state of an order,
// distinct from its payment status.
type OrderStatus string

const (
	OrderPlaced         OrderStatus = "PLACED"
	OrderProcessing     OrderStatus = "PROCESSING"
	OrderShipped        OrderStatus = "SHIPPED"
	OrderOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	OrderDelivered      OrderStatus = "DELIVERED"
	OrderCancelled      OrderStatus = "CANCELLED"
)

// PaymentStatus represents whether the monetary transaction succeeded
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentSuccess PaymentStatus = "SUCCESS"
	PaymentFailed  PaymentStatus = "FAILED"
)

// OrderItem is a point-in-time snapshot of a purchased product, decoupled
// from the live catalog so history survives price and catalog changes.
type OrderItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	ImageURL string  `json:"imageUrl,omitempty"`
}

// Order represents a placed order as served by the commerce API
type Order struct {
	ID              string        `json:"_id"`
	UserID          string        `json:"user,omitempty"`
	Items           []OrderItem   `json:"items"`
	TotalAmount     float64       `json:"totalAmount"`
	OrderStatus     OrderStatus   `json:"orderStatus"`
	PaymentStatus   PaymentStatus `json:"paymentStatus"`
	ShippingAddress *Address      `json:"shippingAddress,omitempty"`
	CreatedAt       time.Time     `json:"createdAt,omitempty"`
	UpdatedAt       time.Time     `json:"updatedAt,omitempty"`
}

// GatewayOrder is the opaque order handle issued by the commerce API to
// initialize the third-party checkout widget.
type GatewayOrder struct {
	OrderID  string  `json:"order_id"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	KeyID    string  `json:"key_id"`
}
