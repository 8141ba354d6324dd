package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"zenvy-storefront/internal/backend"
	"zenvy-storefront/internal/models"
)

// Login authenticates the session against the commerce API
func Login(c *gin.Context) {
	rt := runtime(c)
	if rt == nil {
		return
	}

	var req struct {
		Email        string `json:"email" binding:"required"`
		Password     string `json:"password" binding:"required"`
		UserType     string `json:"userType"`
		AdminPasskey string `json:"adminPasskey"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Email and password are required",
		})
		return
	}

	if req.UserType == "" {
		req.UserType = string(models.RoleNormal)
	}

	user, err := rt.Auth.Login(c.Request.Context(), backend.LoginRequest{
		Email:        req.Email,
		Password:     req.Password,
		UserType:     req.UserType,
		AdminPasskey: req.AdminPasskey,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, gin.H{"user": user})
}

// Signup registers a new account
func Signup(c *gin.Context) {
	rt := runtime(c)
	if rt == nil {
		return
	}

	var req struct {
		Name            string `json:"name" binding:"required"`
		Email           string `json:"email" binding:"required"`
		Password        string `json:"password" binding:"required"`
		ConfirmPassword string `json:"confirmPassword" binding:"required"`
		AdminPasskey    string `json:"adminPasskey"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Name, email and password are required",
		})
		return
	}

	user, err := rt.Auth.Register(c.Request.Context(), backend.SignupRequest{
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		AdminPasskey: req.AdminPasskey,
	}, req.ConfirmPassword)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, gin.H{"user": user})
}

// VerifyOTP confirms the email OTP finishing a pending signup. The
// credentials in the response are adopted by the session.
func VerifyOTP(c *gin.Context) {
	rt := runtime(c)
	if rt == nil {
		return
	}

	var req struct {
		Email string `json:"email" binding:"required"`
		OTP   string `json:"otp" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Email and OTP are required",
		})
		return
	}

	resp, err := rt.Client.VerifyOTP(c.Request.Context(), req.Email, req.OTP)
	if err != nil {
		respondError(c, err)
		return
	}

	rt.Auth.Establish(resp.Token, resp.User)
	respondOK(c, gin.H{"user": resp.User, "message": resp.Message})
}

// ResendOTP requests a fresh email OTP
func ResendOTP(c *gin.Context) {
	rt := runtime(c)
	if rt == nil {
		return
	}

	var req struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Email is required",
		})
		return
	}

	if err := rt.Client.ResendOTP(c.Request.Context(), req.Email); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"message": "OTP sent"})
}

// ForgotPassword triggers a password reset email
func ForgotPassword(c *gin.Context) {
	rt := runtime(c)
	if rt == nil {
		return
	}

	var req struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Email is required",
		})
		return
	}

	if err := rt.Client.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"message": "Password reset email sent"})
}

// ResetPassword completes a password reset with the emailed token
func ResetPassword(c *gin.Context) {
	rt := runtime(c)
	if rt == nil {
		return
	}

	var req struct {
		Token           string `json:"token" binding:"required"`
		Password        string `json:"password" binding:"required"`
		ConfirmPassword string `json:"confirmPassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Token and password are required",
		})
		return
	}

	if req.Password != req.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Passwords do not match",
		})
		return
	}

	if err := rt.Client.ResetPassword(c.Request.Context(), req.Token, req.Password, req.ConfirmPassword); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"message": "Password reset successful"})
}

// Logout clears the session's credentials. No commerce API call is made;
// dropping the token is sufficient.
func Logout(c *gin.Context) {
	rt := runtime(c)
	if rt == nil {
		return
	}

	rt.Auth.Logout()
	rt.Chat.Clear()
	respondOK(c, gin.H{"message": "Logged out"})
}

// GetSession reports the session's authentication state plus the badge
// counts the storefront header shows.
func GetSession(c *gin.Context) {
	rt := runtime(c)
	if rt == nil {
		return
	}

	state := rt.Auth.State()
	payload := gin.H{
		"authenticated": state.IsAuthenticated,
		"user":          state.User,
	}
	if state.IsAuthenticated {
		payload["cartCount"] = 0
		if cart := rt.Cart.Current(); cart != nil {
			payload["cartCount"] = cart.TotalItems
		}
		payload["wishlistCount"] = len(rt.Wishlist.Items())
		payload["unreadNotifications"] = rt.Notifications.Unread()
	}
	respondOK(c, payload)
}
