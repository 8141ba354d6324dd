package models

// CartItem represents a product plus quantity held in a cart.
// The embedded product is the live catalog entry; totals are never
// recomputed here, the server's figures are authoritative.
type CartItem struct {
	Product  *Product `json:"product"`
	Quantity int      `json:"quantity"`
}

// Cart represents the authenticated user's cart as returned by the
// commerce API, including its server-computed aggregates.
type Cart struct {
	ID         string     `json:"_id"`
	UserID     string     `json:"user,omitempty"`
	Items      []CartItem `json:"items"`
	TotalItems int        `json:"totalItems"`
	Subtotal   float64    `json:"subtotal"`
}

// IsEmpty reports whether the cart holds no items
func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.Items) == 0
}

// WishlistItem is a saved product reference on a user's wishlist
type WishlistItem struct {
	ID            string        `json:"_id"`
	Name          string        `json:"name"`
	Price         float64       `json:"price"`
	Category      string        `json:"category,omitempty"`
	Stock         int           `json:"stock"`
	Image         *ProductImage `json:"image,omitempty"`
	AverageRating float64       `json:"averageRating,omitempty"`
}
