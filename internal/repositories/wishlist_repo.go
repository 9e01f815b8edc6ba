package repositories

import "goru/internal/models"

// WishlistRepository defines the interface for wishlist tuple data access.
type WishlistRepository interface {
	// Create inserts a (user, product) membership tuple. Returns
	// ErrDuplicateKey if the membership already exists.
	Create(item *models.WishlistItem) error
	// GetByUser returns the user's tuples, most recently created first.
	GetByUser(userID string) ([]models.WishlistItem, error)
	// Delete removes the tuple, or returns ErrNotFound.
	Delete(userID, productID string) error
}
