package backend

import (
	"context"
	"net/http"

	"zenvy-storefront/internal/models"
)

// ReviewListResponse wraps the review listing for a product
type ReviewListResponse struct {
	Reviews []*models.Review `json:"reviews"`
}

// Reviews lists the reviews for a product
func (c *Client) Reviews(ctx context.Context, productID string) ([]*models.Review, error) {
	var resp ReviewListResponse
	if err := c.request(ctx, http.MethodGet, "/reviews/"+productID, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Reviews, nil
}

// ReviewPayload carries a rating plus comment
type ReviewPayload struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// AddReview posts a review for a product
func (c *Client) AddReview(ctx context.Context, productID string, payload ReviewPayload) (*models.Review, error) {
	var resp struct {
		Review *models.Review `json:"review"`
	}
	if err := c.request(ctx, http.MethodPost, "/reviews/"+productID, payload, &resp); err != nil {
		return nil, err
	}
	return resp.Review, nil
}

// UpdateReview edits the caller's own review
func (c *Client) UpdateReview(ctx context.Context, reviewID string, payload ReviewPayload) (*models.Review, error) {
	var resp struct {
		Review *models.Review `json:"review"`
	}
	if err := c.request(ctx, http.MethodPut, "/reviews/"+reviewID, payload, &resp); err != nil {
		return nil, err
	}
	return resp.Review, nil
}

// DeleteReview removes the caller's own review
func (c *Client) DeleteReview(ctx context.Context, reviewID string) error {
	return c.request(ctx, http.MethodDelete, "/reviews/"+reviewID, nil, nil)
}
