package repositories

import "goru/internal/models"

// CartRepository defines the interface for cart tuple data access.
//
// Upsert is the atomic insert-or-increment primitive the cart engine relies
// on: a single conditional write, never a read followed by a separate write.
type CartRepository interface {
	// Upsert inserts a (user, product) tuple at quantity 1, or atomically
	// increments the quantity if the tuple already exists. It reports whether
	// the tuple was created by this call.
	Upsert(userID, productID string) (*models.CartItem, bool, error)
	// Get returns the tuple for (user, product), or ErrNotFound.
	Get(userID, productID string) (*models.CartItem, error)
	// GetByUser returns the user's tuples, most recently created first.
	GetByUser(userID string) ([]models.CartItem, error)
	// Decrement atomically lowers the tuple's quantity by 1.
	Decrement(userID, productID string) error
	// Delete removes the tuple outright, or returns ErrNotFound.
	Delete(userID, productID string) error
	// DeleteByUser removes every tuple owned by the user and returns the
	// number removed. Zero is a valid result, not an error.
	DeleteByUser(userID string) (int64, error)
}
