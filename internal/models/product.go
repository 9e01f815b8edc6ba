package models

import "gorm.io/gorm"

// Product represents a catalog entry. The cart and wishlist engines only ever
// read price and availability; mutation belongs to the catalog routes.
type Product struct {
	ID          string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string  `json:"name" validate:"required,min=3,max=100"`
	Description string  `json:"description" validate:"omitempty,max=500"`
	Price       float64 `json:"price" validate:"gte=0"`
	Currency    string  `json:"currency" gorm:"type:varchar(3);default:usd" validate:"omitempty,len=3"`
	IsAvailable bool    `json:"isAvailable" gorm:"default:true"`
	IsFeatured  bool    `json:"isFeatured"`
	ImageRef    string  `json:"imageRef"` // opaque reference; image bytes live elsewhere
	gorm.Model          // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// ProductSnapshot is the read-time view of a product joined onto cart and
// wishlist tuples. Prices are the catalog's current values, not captured at
// add time.
type ProductSnapshot struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	IsAvailable bool    `json:"isAvailable"`
}

// Snapshot returns the read-time view of the product.
func (p *Product) Snapshot() ProductSnapshot {
	return ProductSnapshot{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Currency:    p.Currency,
		IsAvailable: p.IsAvailable,
	}
}
