package models

import "time"

// CartItem is a per-(user, product) quantity tuple. The composite unique
// index is the source of truth for conflict detection: two concurrent
// first-adds for the same pair resolve to a single row.
type CartItem struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"userId" gorm:"type:varchar(36);uniqueIndex:idx_cart_user_product;not null"`
	ProductID string    `json:"productId" gorm:"type:varchar(36);uniqueIndex:idx_cart_user_product;not null"`
	Quantity  int       `json:"quantity" gorm:"not null;default:1"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
