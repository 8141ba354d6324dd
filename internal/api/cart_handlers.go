package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetCart returns the session's cart, refreshing it from the commerce API
func GetCart(c *gin.Context) {
	rt := runtime(c)
	if rt == nil {
		return
	}

	if err := rt.Cart.Refresh(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"cart": rt.Cart.Current()})
}

// AddCartItem adds a product to the cart. The whole cart in the response
// is the server's, never locally adjusted.
func AddCartItem(c *gin.Context) {
	rt := runtime(c)
	if rt == nil {
		return
	}

	var req struct {
		ProductID string `json:"productId" binding:"required"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Product id is required",
		})
		return
	}
	if req.Quantity <= 0 {
		req.Quantity = 1
	}

	cart, err := rt.Cart.AddItem(c.Request.Context(), req.ProductID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"cart": cart})
}

// UpdateCartItem sets an item's quantity; zero removes it
func UpdateCartItem(c *gin.Context) {
	rt := runtime(c)
	if rt == nil {
		return
	}

	var req struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Quantity == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Quantity is required",
		})
		return
	}

	cart, err := rt.Cart.SetQuantity(c.Request.Context(), c.Param("productId"), *req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"cart": cart})
}

// RemoveCartItem removes a product from the cart
func RemoveCartItem(c *gin.Context) {
	rt := runtime(c)
	if rt == nil {
		return
	}

	cart, err := rt.Cart.RemoveItem(c.Request.Context(), c.Param("productId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"cart": cart})
}
