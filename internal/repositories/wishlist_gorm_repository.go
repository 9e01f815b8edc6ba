package repositories

import (
	"errors"
	"fmt"

	"goru/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMWishlistRepository is a GORM implementation of WishlistRepository.
type GORMWishlistRepository struct {
	db *gorm.DB
}

// NewGORMWishlistRepository creates a new instance of GORMWishlistRepository.
func NewGORMWishlistRepository(db *gorm.DB) *GORMWishlistRepository {
	return &GORMWishlistRepository{
		db: db,
	}
}

// Create inserts a membership tuple. The composite unique index rejects a
// concurrent duplicate, which is surfaced as ErrDuplicateKey.
func (r *GORMWishlistRepository) Create(item *models.WishlistItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if err := r.db.Create(item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("wishlist item for user %s product %s: %w", item.UserID, item.ProductID, ErrDuplicateKey)
		}
		return fmt.Errorf("failed to create wishlist item: %w", err)
	}
	return nil
}

// GetByUser returns the user's tuples, most recently created first.
func (r *GORMWishlistRepository) GetByUser(userID string) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get wishlist items for user %s: %w", userID, err)
	}
	return items, nil
}

// Delete removes the tuple.
func (r *GORMWishlistRepository) Delete(userID, productID string) error {
	res := r.db.Delete(&models.WishlistItem{}, "user_id = ? AND product_id = ?", userID, productID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete wishlist item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("wishlist item for user %s product %s: %w", userID, productID, ErrNotFound)
	}
	return nil
}
