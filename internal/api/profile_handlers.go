package api

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"zenvy-storefront/internal/backend"
	"zenvy-storefront/internal/models"
)

// GetProfile returns the authenticated user's profile
func GetProfile(c *gin.Context) {
	rt := runtime(c)
	if rt == nil {
		return
	}

	user, err := rt.Client.Profile(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	rt.Auth.ApplyUser(user)
	respondOK(c, gin.H{
		"user":            user,
		"addressComplete": user.Address.IsComplete(),
	})
}

// UpdateProfile updates name, phone and shipping address
func UpdateProfile(c *gin.Context) {
	rt := runtime(c)
	if rt == nil {
		return
	}

	var req struct {
		Name    string          `json:"name"`
		Phone   string          `json:"phone"`
		Address *models.Address `json:"address"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid profile payload",
		})
		return
	}

	user, err := rt.Auth.UpdateUser(c.Request.Context(), backend.UpdateProfileRequest{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{
		"user":            user,
		"addressComplete": user.Address.IsComplete(),
	})
}

// UploadProfilePhoto replaces the user's profile photo
func UploadProfilePhoto(c *gin.Context) {
	rt := runtime(c)
	if rt == nil {
		return
	}

	file, header, err := c.Request.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Photo file is required",
		})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Failed to read photo",
		})
		return
	}

	user, err := rt.Client.UploadProfilePhoto(c.Request.Context(), header.Filename, bytes.NewReader(data))
	if err != nil {
		respondError(c, err)
		return
	}
	rt.Auth.ApplyUser(user)
	respondOK(c, gin.H{"user": user})
}
