package repositories

import (
	"errors"
	"fmt"

	"goru/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{
		db: db,
	}
}

// Upsert inserts the tuple at quantity 1 or increments it in a single
// INSERT ... ON CONFLICT DO UPDATE statement. The composite unique index on
// (user_id, product_id) resolves concurrent first-adds to one row.
func (r *GORMCartRepository) Upsert(userID, productID string) (*models.CartItem, bool, error) {
	item := models.CartItem{
		ID:        uuid.New().String(),
		UserID:    userID,
		ProductID: productID,
		Quantity:  1,
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("quantity + 1"),
		}),
	}).Create(&item).Error
	if err != nil {
		return nil, false, fmt.Errorf("failed to upsert cart item: %w", err)
	}

	// Re-read to observe the post-write row; the conflict path leaves the
	// in-memory struct stale.
	stored, err := r.Get(userID, productID)
	if err != nil {
		return nil, false, err
	}
	return stored, stored.Quantity == 1, nil
}

// Get returns the tuple for (user, product).
func (r *GORMCartRepository) Get(userID, productID string) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.First(&item, "user_id = ? AND product_id = ?", userID, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cart item for user %s product %s: %w", userID, productID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get cart item: %w", err)
	}
	return &item, nil
}

// GetByUser returns the user's tuples, most recently created first.
func (r *GORMCartRepository) GetByUser(userID string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get cart items for user %s: %w", userID, err)
	}
	return items, nil
}

// Decrement atomically lowers the quantity by 1.
func (r *GORMCartRepository) Decrement(userID, productID string) error {
	res := r.db.Model(&models.CartItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Update("quantity", gorm.Expr("quantity - 1"))
	if res.Error != nil {
		return fmt.Errorf("failed to decrement cart item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart item for user %s product %s: %w", userID, productID, ErrNotFound)
	}
	return nil
}

// Delete removes the tuple outright.
func (r *GORMCartRepository) Delete(userID, productID string) error {
	res := r.db.Delete(&models.CartItem{}, "user_id = ? AND product_id = ?", userID, productID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete cart item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart item for user %s product %s: %w", userID, productID, ErrNotFound)
	}
	return nil
}

// DeleteByUser removes every tuple owned by the user and reports the count.
func (r *GORMCartRepository) DeleteByUser(userID string) (int64, error) {
	res := r.db.Delete(&models.CartItem{}, "user_id = ?", userID)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to clear cart for user %s: %w", userID, res.Error)
	}
	return res.RowsAffected, nil
}
