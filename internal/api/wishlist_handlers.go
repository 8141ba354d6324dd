package api

import (
	"github.com/gin-gonic/gin"
)

// GetWishlist returns the session's wishlist, refreshing it first
func GetWishlist(c *gin.Context) {
	rt := runtime(c)
	if rt == nil {
		return
	}

	if err := rt.Wishlist.Refresh(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"wishlist": rt.Wishlist.Items()})
}

// AddWishlistItem adds a product to the wishlist
func AddWishlistItem(c *gin.Context) {
	rt := runtime(c)
	if rt == nil {
		return
	}

	if err := rt.Wishlist.Add(c.Request.Context(), c.Param("productId")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"wishlist": rt.Wishlist.Items()})
}

// RemoveWishlistItem removes a product from the wishlist
func RemoveWishlistItem(c *gin.Context) {
	rt := runtime(c)
	if rt == nil {
		return
	}

	if err := rt.Wishlist.Remove(c.Request.Context(), c.Param("productId")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"wishlist": rt.Wishlist.Items()})
}
