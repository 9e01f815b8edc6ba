package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"goru/internal/models"

	"github.com/google/uuid"
)

// MockWishlistRepository is an in-memory implementation of WishlistRepository.
type MockWishlistRepository struct {
	items map[string]models.WishlistItem
	mu    sync.Mutex
}

// NewMockWishlistRepository creates a new instance of MockWishlistRepository.
func NewMockWishlistRepository() *MockWishlistRepository {
	return &MockWishlistRepository{
		items: make(map[string]models.WishlistItem),
	}
}

func wishlistKey(userID, productID string) string {
	return userID + "|" + productID
}

// Create inserts a membership tuple, rejecting duplicates like the unique
// index would.
func (r *MockWishlistRepository) Create(item *models.WishlistItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := wishlistKey(item.UserID, item.ProductID)
	if _, ok := r.items[key]; ok {
		return fmt.Errorf("wishlist item for user %s product %s: %w", item.UserID, item.ProductID, ErrDuplicateKey)
	}
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}
	r.items[key] = *item
	return nil
}

// GetByUser returns the user's tuples, most recently created first.
func (r *MockWishlistRepository) GetByUser(userID string) ([]models.WishlistItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	itemList := make([]models.WishlistItem, 0)
	for _, item := range r.items {
		if item.UserID == userID {
			itemList = append(itemList, item)
		}
	}
	sort.Slice(itemList, func(i, j int) bool {
		return itemList[i].CreatedAt.After(itemList[j].CreatedAt)
	})
	return itemList, nil
}

// Delete removes the tuple.
func (r *MockWishlistRepository) Delete(userID, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := wishlistKey(userID, productID)
	if _, ok := r.items[key]; !ok {
		return fmt.Errorf("wishlist item for user %s product %s: %w", userID, productID, ErrNotFound)
	}
	delete(r.items, key)
	return nil
}
