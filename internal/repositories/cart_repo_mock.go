package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"goru/internal/models"

	"github.com/google/uuid"
)

// MockCartRepository is an in-memory implementation of CartRepository.
// The map key is the (user, product) pair, which makes the uniqueness
// invariant structural: the same pair can never occupy two entries.
type MockCartRepository struct {
	items map[string]models.CartItem
	mu    sync.Mutex
}

// NewMockCartRepository creates a new instance of MockCartRepository.
func NewMockCartRepository() *MockCartRepository {
	return &MockCartRepository{
		items: make(map[string]models.CartItem),
	}
}

func cartKey(userID, productID string) string {
	return userID + "|" + productID
}

// Upsert inserts the tuple at quantity 1 or increments it, under one lock so
// the insert-or-increment step is atomic like the SQL upsert it stands in for.
func (r *MockCartRepository) Upsert(userID, productID string) (*models.CartItem, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := cartKey(userID, productID)
	if item, ok := r.items[key]; ok {
		item.Quantity++
		item.UpdatedAt = time.Now()
		r.items[key] = item
		return &item, false, nil
	}

	item := models.CartItem{
		ID:        uuid.New().String(),
		UserID:    userID,
		ProductID: productID,
		Quantity:  1,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	r.items[key] = item
	return &item, true, nil
}

// Get returns the tuple for (user, product).
func (r *MockCartRepository) Get(userID, productID string) (*models.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[cartKey(userID, productID)]
	if !ok {
		return nil, fmt.Errorf("cart item for user %s product %s: %w", userID, productID, ErrNotFound)
	}
	return &item, nil
}

// GetByUser returns the user's tuples, most recently created first.
func (r *MockCartRepository) GetByUser(userID string) ([]models.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	itemList := make([]models.CartItem, 0)
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

// Decrement lowers the tuple's quantity by 1.
func (r *MockCartRepository) Decrement(userID, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := cartKey(userID, productID)
	item, ok := r.items[key]
	if !ok {
		return fmt.Errorf("cart item for user %s product %s: %w", userID, productID, ErrNotFound)
	}
	item.Quantity--
	item.UpdatedAt = time.Now()
	r.items[key] = item
	return nil
}

// Delete removes the tuple outright.
func (r *MockCartRepository) Delete(userID, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := cartKey(userID, productID)
	if _, ok := r.items[key]; !ok {
		return fmt.Errorf("cart item for user %s product %s: %w", userID, productID, ErrNotFound)
	}
	delete(r.items, key)
	return nil
}

// DeleteByUser removes every tuple owned by the user and reports the count.
func (r *MockCartRepository) DeleteByUser(userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed int64
	for key, item := range r.items {
		if item.UserID == userID {
			delete(r.items, key)
			removed++
		}
	}
	return removed, nil
}
