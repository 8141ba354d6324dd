package inventory

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zenvy-storefront/internal/backend"
	"zenvy-storefront/internal/models"
)

func validInput() ProductInput {
	return ProductInput{
		Name:        "Desk Lamp",
		Description: "An adjustable LED desk lamp",
		Price:       899,
		Category:    "Lighting",
		Stock:       12,
	}
}

func validImage() *ImageFile {
	return &ImageFile{Name: "lamp.jpg", ContentType: "image/jpeg", Data: []byte("jpeg-bytes")}
}

// fakeUploader skips the real image host
type fakeUploader struct {
	uploaded int
	fail     bool
}

func (u *fakeUploader) Upload(ctx context.Context, cred *backend.UploadCredential, file *ImageFile) (*models.ProductImage, error) {
	if u.fail {
		return nil, &ValidationError{Message: "upload rejected"}
	}
	u.uploaded++
	return &models.ProductImage{URL: "https://img.example/lamp.jpg", PublicID: "zenvy/lamp"}, nil
}

func TestProductInputValidation(t *testing.T) {
	cases := []struct {
		mutate  func(*ProductInput)
		message string
	}{
		{func(in *ProductInput) { in.Name = "x" }, "Product name is required"},
		{func(in *ProductInput) { in.Name = "  " }, "Product name is required"},
		{func(in *ProductInput) { in.Description = "too short" }, "Description must be at least 10 characters"},
		{func(in *ProductInput) { in.Category = "" }, "Category is required"},
		{func(in *ProductInput) { in.Price = -1 }, "Price must be a valid non-negative number"},
		{func(in *ProductInput) { in.Stock = -5 }, "Stock must be a valid non-negative integer"},
	}

	for _, tc := range cases {
		in := validInput()
		tc.mutate(&in)
		err := in.Validate()
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, tc.message, vErr.Message)
	}

	in := validInput()
	assert.NoError(t, in.Validate())
}

func TestValidateImage(t *testing.T) {
	var vErr *ValidationError

	err := ValidateImage(nil)
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Please select an image", vErr.Message)

	err = ValidateImage(&ImageFile{Name: "doc.pdf", ContentType: "application/pdf", Data: []byte("x")})
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Invalid image format. Please upload a JPG, PNG, or WEBP image.", vErr.Message)

	err = ValidateImage(&ImageFile{Name: "big.png", ContentType: "image/png", Data: bytes.Repeat([]byte("a"), MaxImageBytes+1)})
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Image is too large. Max size is 5MB.", vErr.Message)

	for _, contentType := range []string{"image/jpeg", "image/jpg", "image/png", "image/webp"} {
		assert.NoError(t, ValidateImage(&ImageFile{Name: "ok", ContentType: contentType, Data: []byte("x")}))
	}
}

func TestCreateValidatesBeforeAnyNetwork(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer server.Close()

	uploader := &fakeUploader{}
	manager := NewManager(backend.NewClient(server.URL, backend.StaticToken("tok")), uploader)

	in := validInput()
	in.Name = "x"
	_, err := manager.Create(context.Background(), in, validImage())
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Product name is required", vErr.Message)

	_, err = manager.Create(context.Background(), validInput(), nil)
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Please select an image", vErr.Message)

	_, err = manager.Create(context.Background(), validInput(), &ImageFile{Name: "d.gif", ContentType: "image/gif", Data: []byte("x")})
	require.ErrorAs(t, err, &vErr)

	assert.Equal(t, 0, hits, "validation failures must not reach the backend")
	assert.Equal(t, 0, uploader.uploaded)
}

func TestCreateCleansUpOrphanedImage(t *testing.T) {
	var mu sync.Mutex
	deleted := []string{}

	mux := http.NewServeMux()
	mux.HandleFunc("/cloudinary/signature", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(backend.UploadCredential{CloudName: "zenvy", APIKey: "k", Signature: "s"})
	})
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"message": "save failed"})
	})
	mux.HandleFunc("/cloudinary/image", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		deleted = append(deleted, r.URL.Query().Get("publicId"))
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	uploader := &fakeUploader{}
	manager := NewManager(backend.NewClient(server.URL, backend.StaticToken("tok")), uploader)

	_, err := manager.Create(context.Background(), validInput(), validImage())
	require.Error(t, err)

	mu.Lock()
	require.Len(t, deleted, 1, "the uploaded image must be cleaned up when the save fails")
	assert.Equal(t, "zenvy/lamp", deleted[0])
	mu.Unlock()
}

func TestCreateSubmitsUploadedImage(t *testing.T) {
	var payload backend.ProductPayload

	mux := http.NewServeMux()
	mux.HandleFunc("/cloudinary/signature", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(backend.UploadCredential{CloudName: "zenvy"})
	})
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"product": &models.Product{ID: "p1", Name: payload.Name},
		})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	manager := NewManager(backend.NewClient(server.URL, backend.StaticToken("tok")), &fakeUploader{})

	product, err := manager.Create(context.Background(), validInput(), validImage())
	require.NoError(t, err)
	assert.Equal(t, "p1", product.ID)
	require.NotNil(t, payload.Image)
	assert.Equal(t, "zenvy/lamp", payload.Image.PublicID)
}

func TestUpdateSkipsImageWhenNotReplaced(t *testing.T) {
	var payload backend.ProductPayload
	signatureHits := 0

	mux := http.NewServeMux()
	mux.HandleFunc("/cloudinary/signature", func(w http.ResponseWriter, r *http.Request) {
		signatureHits++
		json.NewEncoder(w).Encode(backend.UploadCredential{})
	})
	mux.HandleFunc("/products/p1", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"product": &models.Product{ID: "p1"},
		})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	uploader := &fakeUploader{}
	manager := NewManager(backend.NewClient(server.URL, backend.StaticToken("tok")), uploader)

	_, err := manager.Update(context.Background(), "p1", validInput(), nil)
	require.NoError(t, err)
	assert.Nil(t, payload.Image, "no new image means no image field in the update")
	assert.Equal(t, 0, signatureHits)
	assert.Equal(t, 0, uploader.uploaded)
}
