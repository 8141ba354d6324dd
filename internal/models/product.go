package models

import "time"

// ProductImage represents the hosted image attached to a product
type ProductImage struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
	Format   string `json:"format,omitempty"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
}

// Product represents a catalog product as served by the commerce API
type Product struct {
	ID            string        `json:"_id"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Price         float64       `json:"price"`
	Category      string        `json:"category"`
	Stock         int           `json:"stock"`
	Image         *ProductImage `json:"image,omitempty"`
	AverageRating float64       `json:"averageRating"`
	TotalReviews  int           `json:"totalReviews"`
	CreatedAt     time.Time     `json:"createdAt,omitempty"`
	UpdatedAt     time.Time     `json:"updatedAt,omitempty"`
}

// InStock reports whether at least quantity units are available
func (p *Product) InStock(quantity int) bool {
	return p != nil && quantity > 0 && p.Stock >= quantity
}

// Review represents a product review
type Review struct {
	ID        string    `json:"_id"`
	ProductID string    `json:"product"`
	UserID    string    `json:"user"`
	UserName  string    `json:"userName,omitempty"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}
