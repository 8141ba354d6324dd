package backend

import (
	"context"
	"net/http"
	"net/url"

	"zenvy-storefront/internal/models"
)

// OrderResponse wraps single-order endpoints
type OrderResponse struct {
	Order *models.Order `json:"order"`
}

// OrderListResponse wraps order listing endpoints
type OrderListResponse struct {
	Orders []*models.Order `json:"orders"`
}

// Order fetches one of the current user's orders
func (c *Client) Order(ctx context.Context, id string) (*models.Order, error) {
	var resp OrderResponse
	if err := c.request(ctx, http.MethodGet, "/orders/"+id, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Order, nil
}

// ActiveOrders lists the user's not-yet-terminal orders
func (c *Client) ActiveOrders(ctx context.Context) ([]*models.Order, error) {
	var resp OrderListResponse
	if err := c.request(ctx, http.MethodGet, "/orders/active", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

// OrderHistory lists every order the user ever placed
func (c *Client) OrderHistory(ctx context.Context) ([]*models.Order, error) {
	var resp OrderListResponse
	if err := c.request(ctx, http.MethodGet, "/orders/history", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

// CancelOrder cancels one of the user's own orders
func (c *Client) CancelOrder(ctx context.Context, id string) (*models.Order, error) {
	var resp OrderResponse
	if err := c.request(ctx, http.MethodPatch, "/orders/"+id+"/cancel", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Order, nil
}

// AdminOrderQuery filters the admin order listing
type AdminOrderQuery struct {
	Status        models.OrderStatus
	PaymentStatus models.PaymentStatus
}

func (q AdminOrderQuery) encode() string {
	params := url.Values{}
	if q.Status != "" {
		params.Set("status", string(q.Status))
	}
	if q.PaymentStatus != "" {
		params.Set("paymentStatus", string(q.PaymentStatus))
	}
	if encoded := params.Encode(); encoded != "" {
		return "?" + encoded
	}
	return ""
}

// AdminOrders lists all orders for the admin workflow screen
func (c *Client) AdminOrders(ctx context.Context, query AdminOrderQuery) ([]*models.Order, error) {
	var resp OrderListResponse
	if err := c.request(ctx, http.MethodGet, "/admin/orders"+query.encode(), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

// AdminOrder fetches any order by id (admin only)
func (c *Client) AdminOrder(ctx context.Context, id string) (*models.Order, error) {
	var resp OrderResponse
	if err := c.request(ctx, http.MethodGet, "/admin/orders/"+id, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Order, nil
}

// UpdateOrderStatus moves an order to a new fulfillment state (admin only)
func (c *Client) UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) (*models.Order, error) {
	payload := struct {
		OrderStatus models.OrderStatus `json:"orderStatus"`
	}{status}

	var resp OrderResponse
	if err := c.request(ctx, http.MethodPatch, "/admin/orders/"+id+"/status", payload, &resp); err != nil {
		return nil, err
	}
	return resp.Order, nil
}

// DeleteAdminOrder hard-deletes an order record (admin only, irreversible)
func (c *Client) DeleteAdminOrder(ctx context.Context, id string) error {
	return c.request(ctx, http.MethodDelete, "/admin/orders/"+id, nil, nil)
}
