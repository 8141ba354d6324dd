package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"zenvy-storefront/internal/models"
)

// ProductQuery narrows a catalog listing; zero values are omitted
type ProductQuery struct {
	Search   string
	Category string
	Page     int
	Limit    int
}

func (q ProductQuery) encode() string {
	params := url.Values{}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.Category != "" {
		params.Set("category", q.Category)
	}
	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	if encoded := params.Encode(); encoded != "" {
		return "?" + encoded
	}
	return ""
}

// ProductListResponse is the catalog listing envelope
type ProductListResponse struct {
	Products []*models.Product `json:"products"`
	Total    int               `json:"total,omitempty"`
	Page     int               `json:"page,omitempty"`
	Pages    int               `json:"pages,omitempty"`
}

// Products lists catalog products with optional search and paging
func (c *Client) Products(ctx context.Context, query ProductQuery) (*ProductListResponse, error) {
	var resp ProductListResponse
	if err := c.request(ctx, http.MethodGet, "/products"+query.encode(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Product fetches one product by id
func (c *Client) Product(ctx context.Context, id string) (*models.Product, error) {
	var resp struct {
		Product *models.Product `json:"product"`
	}
	if err := c.request(ctx, http.MethodGet, "/products/"+id, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Product, nil
}

// AdminInventory lists every product for the inventory screen
func (c *Client) AdminInventory(ctx context.Context) ([]*models.Product, error) {
	var resp ProductListResponse
	if err := c.request(ctx, http.MethodGet, "/products/admin/inventory", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

// ProductPayload is the create/update body for a product. Image is only
// attached when a fresh upload happened.
type ProductPayload struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Price       float64              `json:"price"`
	Category    string               `json:"category"`
	Stock       int                  `json:"stock"`
	Image       *models.ProductImage `json:"image,omitempty"`
}

// CreateProduct adds a product to the catalog (admin only)
func (c *Client) CreateProduct(ctx context.Context, payload ProductPayload) (*models.Product, error) {
	var resp struct {
		Product *models.Product `json:"product"`
	}
	if err := c.request(ctx, http.MethodPost, "/products", payload, &resp); err != nil {
		return nil, err
	}
	return resp.Product, nil
}

// UpdateProduct updates an existing product (admin only)
func (c *Client) UpdateProduct(ctx context.Context, id string, payload ProductPayload) (*models.Product, error) {
	var resp struct {
		Product *models.Product `json:"product"`
	}
	if err := c.request(ctx, http.MethodPut, "/products/"+id, payload, &resp); err != nil {
		return nil, err
	}
	return resp.Product, nil
}

// DeleteProduct removes a product from the catalog (admin only)
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.request(ctx, http.MethodDelete, "/products/"+id, nil, nil)
}
