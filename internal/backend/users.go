package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"zenvy-storefront/internal/models"
)

// UserResponse wraps endpoints that return a single user
type UserResponse struct {
	User *models.User `json:"user"`
}

// Profile fetches the canonical profile for the current session
func (c *Client) Profile(ctx context.Context) (*models.User, error) {
	var resp UserResponse
	if err := c.request(ctx, http.MethodGet, "/users/me", nil, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// UpdateProfileRequest carries profile fields the user may edit
type UpdateProfileRequest struct {
	Name    string          `json:"name,omitempty"`
	Phone   string          `json:"phone,omitempty"`
	Address *models.Address `json:"address,omitempty"`
}

// UpdateProfile updates the current user's profile
func (c *Client) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*models.User, error) {
	var resp UserResponse
	if err := c.request(ctx, http.MethodPut, "/users/me", req, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// UploadProfilePhoto sends a new profile photo as multipart form data.
// The Content-Type header is left to the multipart writer so the boundary
// survives.
func (c *Client) UploadProfilePhoto(ctx context.Context, filename string, photo io.Reader) (*models.User, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("photo", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := io.Copy(part, photo); err != nil {
		return nil, fmt.Errorf("failed to read photo: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+"/users/me/photo", &body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var resp UserResponse
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}
