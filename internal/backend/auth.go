package backend

import (
	"context"
	"net/http"

	"zenvy-storefront/internal/models"
)

// LoginRequest is the credential payload for /auth/login. AdminPasskey is
// only serialized when present; UserType discriminates the login flavor.
type LoginRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	UserType     string `json:"userType"`
	AdminPasskey string `json:"adminPasskey,omitempty"`
}

// SignupRequest is the payload for /auth/signup
type SignupRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	AdminPasskey string `json:"adminPasskey,omitempty"`
}

// AuthResponse carries the session token and user issued on login/signup
type AuthResponse struct {
	Token   string       `json:"token"`
	User    *models.User `json:"user"`
	Message string       `json:"message,omitempty"`
}

// Login authenticates against the commerce API
func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.request(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Signup registers a new account
func (c *Client) Signup(ctx context.Context, req SignupRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.request(ctx, http.MethodPost, "/auth/signup", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// VerifyOTP confirms the one-time code mailed on signup
func (c *Client) VerifyOTP(ctx context.Context, email, otp string) (*AuthResponse, error) {
	payload := struct {
		Email string `json:"email"`
		OTP   string `json:"otp"`
	}{email, otp}

	var resp AuthResponse
	if err := c.request(ctx, http.MethodPost, "/auth/verify-otp", payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ResendOTP requests a fresh one-time code
func (c *Client) ResendOTP(ctx context.Context, email string) error {
	payload := struct {
		Email string `json:"email"`
	}{email}
	return c.request(ctx, http.MethodPost, "/auth/resend-otp", payload, nil)
}

// ForgotPassword starts the password reset flow
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	payload := struct {
		Email string `json:"email"`
	}{email}
	return c.request(ctx, http.MethodPost, "/auth/forgot-password", payload, nil)
}

// ResetPassword completes a password reset using the mailed token
func (c *Client) ResetPassword(ctx context.Context, token, password, confirmPassword string) error {
	payload := struct {
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirmPassword"`
	}{password, confirmPassword}
	return c.request(ctx, http.MethodPost, "/auth/reset-password/"+token, payload, nil)
}
