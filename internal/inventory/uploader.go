package inventory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"zenvy-storefront/internal/backend"
	"zenvy-storefront/internal/models"
)

// Uploader pushes an image straight to the image host using a short-lived
// signed credential, so permanent secrets never reach this process.
type Uploader interface {
	Upload(ctx context.Context, cred *backend.UploadCredential, file *ImageFile) (*models.ProductImage, error)
}

// CloudinaryUploader uploads to the Cloudinary REST endpoint
type CloudinaryUploader struct {
	// BaseURL is overridable for tests; the cloud name from the
	// credential is appended.
	BaseURL string
	Client  *http.Client
}

// NewUploader creates a Cloudinary uploader with the default endpoint
func NewUploader() *CloudinaryUploader {
	return &CloudinaryUploader{
		BaseURL: "https://api.cloudinary.com/v1_1",
		Client:  &http.Client{Timeout: 60 * time.Second},
	}
}

type cloudinaryResult struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
	Format    string `json:"format"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Error     *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (u *CloudinaryUploader) Upload(ctx context.Context, cred *backend.UploadCredential, file *ImageFile) (*models.ProductImage, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", file.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := io.Copy(part, bytes.NewReader(file.Data)); err != nil {
		return nil, fmt.Errorf("failed to write upload form: %w", err)
	}

	fields := map[string]string{
		"api_key":   cred.APIKey,
		"timestamp": strconv.FormatInt(cred.Timestamp, 10),
		"signature": cred.Signature,
		"folder":    cred.Folder,
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("failed to write upload form: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish upload form: %w", err)
	}

	uploadURL := fmt.Sprintf("%s/%s/image/upload", u.BaseURL, cred.CloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, &body)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := u.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("image upload failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("image upload failed: %w", err)
	}

	var result cloudinaryResult
	if err := json.Unmarshal(data, &result); err != nil || resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if result.Error != nil && result.Error.Message != "" {
			return nil, fmt.Errorf("image upload failed: %s", result.Error.Message)
		}
		return nil, fmt.Errorf("image upload failed: status %d", resp.StatusCode)
	}

	return &models.ProductImage{
		URL:      result.SecureURL,
		PublicID: result.PublicID,
		Format:   result.Format,
		Width:    result.Width,
		Height:   result.Height,
	}, nil
}
