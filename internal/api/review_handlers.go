package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"zenvy-storefront/internal/backend"
)

// AddReview posts a review on a product
func AddReview(c *gin.Context) {
	rt := runtime(c)
	if rt == nil {
		return
	}

	var req struct {
		Rating  int    `json:"rating" binding:"required"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Rating < 1 || req.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Rating must be between 1 and 5",
		})
		return
	}

	review, err := rt.Client.AddReview(c.Request.Context(), c.Param("id"), backend.ReviewPayload{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"review": review})
}

// UpdateReview edits the caller's existing review
func UpdateReview(c *gin.Context) {
	rt := runtime(c)
	if rt == nil {
		return
	}

	var req struct {
		Rating  int    `json:"rating" binding:"required"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Rating < 1 || req.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Rating must be between 1 and 5",
		})
		return
	}

	review, err := rt.Client.UpdateReview(c.Request.Context(), c.Param("reviewId"), backend.ReviewPayload{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"review": review})
}

// DeleteReview removes the caller's review
func DeleteReview(c *gin.Context) {
	rt := runtime(c)
	if rt == nil {
		return
	}

	if err := rt.Client.DeleteReview(c.Request.Context(), c.Param("reviewId")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"message": "Review deleted"})
}
