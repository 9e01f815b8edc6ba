package models

import "time"

// WishlistItem is a per-(user, product) membership tuple. Existence is
// binary; the composite unique index rejects duplicate memberships.
type WishlistItem struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"userId" gorm:"type:varchar(36);uniqueIndex:idx_wishlist_user_product;not null"`
	ProductID string    `json:"productId" gorm:"type:varchar(36);uniqueIndex:idx_wishlist_user_product;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
