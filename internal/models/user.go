package models

import (
	"strings"
	"time"
)

// UserRole represents a user's role
type UserRole string

const (
	RoleNormal UserRole = "normal"
	RoleAdmin  UserRole = "admin"
)

// Address represents a user's shipping address
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
	Country string `json:"country"`
}

// IsComplete reports whether the address is usable for shipping.
// Country is optional; the other four fields must be non-blank.
func (a *Address) IsComplete() bool {
	if a == nil {
		return false
	}
	return strings.TrimSpace(a.Street) != "" &&
		strings.TrimSpace(a.City) != "" &&
		strings.TrimSpace(a.State) != "" &&
		strings.TrimSpace(a.Pincode) != ""
}

// User represents a storefront user as served by the commerce API
type User struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	PhotoURL  string    `json:"photoUrl,omitempty"`
	Address   *Address  `json:"address,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u != nil && strings.EqualFold(u.Role, string(RoleAdmin))
}
