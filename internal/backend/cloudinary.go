package backend

import (
	"context"
	"net/http"
	"net/url"
)

// UploadCredential is a short-lived signed credential issued by the
// commerce API that permits one direct browser-to-host image upload
// without exposing permanent secrets.
type UploadCredential struct {
	CloudName string `json:"cloudName"`
	APIKey    string `json:"apiKey"`
	Timestamp int64  `json:"timestamp"`
	Signature string `json:"signature"`
	Folder    string `json:"folder"`
}

// CloudinarySignature requests a fresh signed upload credential
func (c *Client) CloudinarySignature(ctx context.Context) (*UploadCredential, error) {
	var resp UploadCredential
	if err := c.request(ctx, http.MethodPost, "/cloudinary/signature", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteCloudinaryImage removes a hosted image by public id, used to clean
// up orphans when a product save fails after its image already uploaded.
func (c *Client) DeleteCloudinaryImage(ctx context.Context, publicID string) error {
	endpoint := "/cloudinary/image?publicId=" + url.QueryEscape(publicID)
	return c.request(ctx, http.MethodDelete, endpoint, nil, nil)
}
