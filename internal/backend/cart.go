package backend

import (
	"context"
	"net/http"

	"zenvy-storefront/internal/models"
)

// CartResponse wraps every cart endpoint; the embedded cart is the
// server's authoritative view after the operation.
type CartResponse struct {
	Cart *models.Cart `json:"cart"`
}

// Cart fetches the current user's cart
func (c *Client) Cart(ctx context.Context) (*models.Cart, error) {
	var resp CartResponse
	if err := c.request(ctx, http.MethodGet, "/cart", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Cart, nil
}

// AddCartItem puts quantity units of a product into the cart
func (c *Client) AddCartItem(ctx context.Context, productID string, quantity int) (*models.Cart, error) {
	payload := struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}{productID, quantity}

	var resp CartResponse
	if err := c.request(ctx, http.MethodPost, "/cart/items", payload, &resp); err != nil {
		return nil, err
	}
	return resp.Cart, nil
}

// UpdateCartItem sets the quantity of a cart line
func (c *Client) UpdateCartItem(ctx context.Context, productID string, quantity int) (*models.Cart, error) {
	payload := struct {
		Quantity int `json:"quantity"`
	}{quantity}

	var resp CartResponse
	if err := c.request(ctx, http.MethodPatch, "/cart/items/"+productID, payload, &resp); err != nil {
		return nil, err
	}
	return resp.Cart, nil
}

// RemoveCartItem drops a product from the cart
func (c *Client) RemoveCartItem(ctx context.Context, productID string) (*models.Cart, error) {
	var resp CartResponse
	if err := c.request(ctx, http.MethodDelete, "/cart/items/"+productID, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Cart, nil
}
