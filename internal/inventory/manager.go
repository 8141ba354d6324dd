package inventory

import (
	"context"
	"log"
	"math"
	"strings"

	"zenvy-storefront/internal/backend"
	"zenvy-storefront/internal/models"
)

// MaxImageBytes is the upload size ceiling enforced before any network call
const MaxImageBytes = 5 * 1024 * 1024

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// ValidationError is a client-side rejection raised before any network
// round trip.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ImageFile is a product image picked for upload
type ImageFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// ValidateImage checks MIME type and size before contacting storage
func ValidateImage(file *ImageFile) error {
	if file == nil {
		return &ValidationError{Message: "Please select an image"}
	}
	if !allowedImageTypes[file.ContentType] {
		return &ValidationError{Message: "Invalid image format. Please upload a JPG, PNG, or WEBP image."}
	}
	if len(file.Data) > MaxImageBytes {
		return &ValidationError{Message: "Image is too large. Max size is 5MB."}
	}
	return nil
}

// ProductInput is the raw admin form for creating or editing a product
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Stock       int
}

// Validate applies the field rules shared by create and edit
func (in *ProductInput) Validate() error {
	if len(strings.TrimSpace(in.Name)) < 2 {
		return &ValidationError{Message: "Product name is required"}
	}
	if len(strings.TrimSpace(in.Description)) < 10 {
		return &ValidationError{Message: "Description must be at least 10 characters"}
	}
	if len(strings.TrimSpace(in.Category)) < 2 {
		return &ValidationError{Message: "Category is required"}
	}
	if math.IsNaN(in.Price) || math.IsInf(in.Price, 0) || in.Price < 0 {
		return &ValidationError{Message: "Price must be a valid non-negative number"}
	}
	if in.Stock < 0 {
		return &ValidationError{Message: "Stock must be a valid non-negative integer"}
	}
	return nil
}

func (in *ProductInput) payload() backend.ProductPayload {
	return backend.ProductPayload{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		Category:    strings.TrimSpace(in.Category),
		Stock:       in.Stock,
	}
}

// Manager drives the admin inventory screen: validation, the two-phase
// image path, and the catalog CRUD calls.
type Manager struct {
	client   *backend.Client
	uploader Uploader
}

// NewManager creates an inventory manager
func NewManager(client *backend.Client, uploader Uploader) *Manager {
	if uploader == nil {
		uploader = NewUploader()
	}
	return &Manager{client: client, uploader: uploader}
}

// List fetches the full inventory
func (m *Manager) List(ctx context.Context) ([]*models.Product, error) {
	return m.client.AdminInventory(ctx)
}

// Create validates, uploads the image, and submits the product. A save
// failure after a successful upload triggers a best-effort delete of the
// orphaned image.
func (m *Manager) Create(ctx context.Context, input ProductInput, image *ImageFile) (*models.Product, error) {
	if image == nil {
		return nil, &ValidationError{Message: "Please select an image"}
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := ValidateImage(image); err != nil {
		return nil, err
	}

	uploaded, err := m.upload(ctx, image)
	if err != nil {
		return nil, err
	}

	payload := input.payload()
	payload.Image = uploaded

	product, err := m.client.CreateProduct(ctx, payload)
	if err != nil {
		m.cleanup(ctx, uploaded)
		return nil, err
	}
	return product, nil
}

// Update edits an existing product. The image step is skipped when the
// admin did not pick a new file.
func (m *Manager) Update(ctx context.Context, productID string, input ProductInput, image *ImageFile) (*models.Product, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var uploaded *models.ProductImage
	if image != nil {
		if err := ValidateImage(image); err != nil {
			return nil, err
		}
		var err error
		uploaded, err = m.upload(ctx, image)
		if err != nil {
			return nil, err
		}
	}

	payload := input.payload()
	payload.Image = uploaded

	product, err := m.client.UpdateProduct(ctx, productID, payload)
	if err != nil {
		m.cleanup(ctx, uploaded)
		return nil, err
	}
	return product, nil
}

// Delete removes a product from the catalog
func (m *Manager) Delete(ctx context.Context, productID string) error {
	return m.client.DeleteProduct(ctx, productID)
}

// upload runs the two-phase image path: signed credential from the
// backend, then a direct upload to the image host.
func (m *Manager) upload(ctx context.Context, image *ImageFile) (*models.ProductImage, error) {
	cred, err := m.client.CloudinarySignature(ctx)
	if err != nil {
		return nil, err
	}
	return m.uploader.Upload(ctx, cred, image)
}

// cleanup deletes an uploaded image the product save orphaned. Failures
// are logged and swallowed; the next save is not blocked by bookkeeping.
func (m *Manager) cleanup(ctx context.Context, uploaded *models.ProductImage) {
	if uploaded == nil || uploaded.PublicID == "" {
		return
	}
	if err := m.client.DeleteCloudinaryImage(ctx, uploaded.PublicID); err != nil {
		log.Printf("Failed to clean up orphaned image %s: %v", uploaded.PublicID, err)
	}
}
