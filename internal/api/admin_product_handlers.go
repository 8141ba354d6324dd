package api

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"zenvy-storefront/internal/inventory"
)

// AdminGetInventory lists the full catalog for the admin screen
func AdminGetInventory(c *gin.Context) {
	rt := runtime(c)
	if rt == nil {
		return
	}

	products, err := rt.Inventory.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"products": products})
}

// productInputFromForm reads the shared product fields of the multipart
// create / edit forms.
func productInputFromForm(c *gin.Context) inventory.ProductInput {
	price, _ := strconv.ParseFloat(c.PostForm("price"), 64)
	stock, _ := strconv.Atoi(c.PostForm("stock"))
	return inventory.ProductInput{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Price:       price,
		Category:    c.PostForm("category"),
		Stock:       stock,
	}
}

// imageFromForm reads the optional product image out of the multipart
// form. A missing file returns nil, nil.
func imageFromForm(c *gin.Context) (*inventory.ImageFile, error) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	return &inventory.ImageFile{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// AdminCreateProduct adds a product to the catalog. Field and image
// validation happens before the image leaves the gateway; a product save
// that fails after its image uploaded cleans the orphan up.
func AdminCreateProduct(c *gin.Context) {
	rt := runtime(c)
	if rt == nil {
		return
	}

	image, err := imageFromForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Failed to read image: " + err.Error(),
		})
		return
	}

	product, err := rt.Inventory.Create(c.Request.Context(), productInputFromForm(c), image)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"product": product})
}

// AdminUpdateProduct edits a product. The image is optional; when absent
// the existing one is kept.
func AdminUpdateProduct(c *gin.Context) {
	rt := runtime(c)
	if rt == nil {
		return
	}

	image, err := imageFromForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Failed to read image: " + err.Error(),
		})
		return
	}

	product, err := rt.Inventory.Update(c.Request.Context(), c.Param("id"), productInputFromForm(c), image)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"product": product})
}

// AdminDeleteProduct removes a product from the catalog
func AdminDeleteProduct(c *gin.Context) {
	rt := runtime(c)
	if rt == nil {
		return
	}

	if err := rt.Inventory.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"message": "Product deleted"})
}
