package backend

import (
	"context"
	"net/http"

	"zenvy-storefront/internal/models"
)

// WishlistResponse wraps wishlist endpoints; data is the full saved list
// after the operation.
type WishlistResponse struct {
	Data []models.WishlistItem `json:"data"`
}

// Wishlist fetches the current user's saved products
func (c *Client) Wishlist(ctx context.Context) ([]models.WishlistItem, error) {
	var resp WishlistResponse
	if err := c.request(ctx, http.MethodGet, "/wishlist", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// AddToWishlist saves a product and returns the updated list
func (c *Client) AddToWishlist(ctx context.Context, productID string) ([]models.WishlistItem, error) {
	var resp WishlistResponse
	if err := c.request(ctx, http.MethodPost, "/wishlist/"+productID, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// RemoveFromWishlist drops a product and returns the updated list
func (c *Client) RemoveFromWishlist(ctx context.Context, productID string) ([]models.WishlistItem, error) {
	var resp WishlistResponse
	if err := c.request(ctx, http.MethodDelete, "/wishlist/"+productID, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
