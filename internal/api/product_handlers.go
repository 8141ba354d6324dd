package api

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"zenvy-storefront/internal/backend"
)

// GetProducts lists catalog products with optional search, category and
// paging passed straight through to the commerce API.
func GetProducts(c *gin.Context) {
	rt := runtime(c)
	if rt == nil {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))

	resp, err := rt.Client.Products(c.Request.Context(), backend.ProductQuery{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, gin.H{
		"products": resp.Products,
		"total":    resp.Total,
		"page":     resp.Page,
		"pages":    resp.Pages,
	})
}

// GetProduct fetches one product with its reviews and whether it sits in
// the session's wishlist.
func GetProduct(c *gin.Context) {
	rt := runtime(c)
	if rt == nil {
		return
	}

	id := c.Param("id")
	product, err := rt.Client.Product(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	// Reviews are view data; a fetch failure degrades to an empty list.
	reviews, err := rt.Client.Reviews(c.Request.Context(), id)
	if err != nil {
		reviews = nil
	}

	respondOK(c, gin.H{
		"product":    product,
		"reviews":    reviews,
		"inWishlist": rt.Wishlist.IsInWishlist(id),
	})
}

// GetProductReviews lists the reviews for a product
func GetProductReviews(c *gin.Context) {
	rt := runtime(c)
	if rt == nil {
		return
	}

	reviews, err := rt.Client.Reviews(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"reviews": reviews})
}
