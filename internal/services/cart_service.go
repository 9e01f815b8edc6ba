package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"goru/internal/apperrors"
	"goru/internal/models"
	"goru/internal/repositories"
	"goru/pkg/rabbitmq"
)

// CartView is a cart tuple joined with its product snapshot at read time.
type CartView struct {
	ID        string                 `json:"id"`
	Product   models.ProductSnapshot `json:"product"`
	Quantity  int                    `json:"quantity"`
	CreatedAt time.Time              `json:"createdAt"`
}

// CartSummary is the result of reading a user's cart: the joined tuples,
// their count, and the aggregate price over the returned set.
type CartSummary struct {
	Items      []CartView `json:"cartItems"`
	Count      int        `json:"count"`
	TotalPrice float64    `json:"totalPrice"`
}

// CartService manages per-user product-quantity tuples and price
// aggregation. Product data is read through the catalog repository only.
type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
	publisher   EventPublisher
}

// NewCartService creates a new CartService. The publisher may be nil, which
// disables event publishing.
func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository, publisher EventPublisher) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		publisher:   publisher,
	}
}

// AddItem adds one unit of the product to the user's cart. The returned flag
// reports whether this call created the tuple; an existing tuple is
// incremented instead. The whole step is a single atomic upsert, so no
// quantity cap applies on this path.
func (s *CartService) AddItem(userID, productID string) (*models.CartItem, bool, error) {
	item, created, err := s.cartRepo.Upsert(userID, productID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to add cart item: %w", err)
	}
	return item, created, nil
}

// GetItems returns the user's tuples joined with current product snapshots,
// most recently created first. Unavailable products are included, not
// filtered; totalPrice reflects the catalog's current prices.
func (s *CartService) GetItems(userID string) (*CartSummary, error) {
	items, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}

	summary := &CartSummary{Items: make([]CartView, 0, len(items))}
	for _, item := range items {
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			// The catalog only ever soft-deletes, so a dangling product
			// reference is a storage fault, not a business outcome.
			return nil, fmt.Errorf("failed to resolve product %s for cart: %w", item.ProductID, err)
		}
		summary.Items = append(summary.Items, CartView{
			ID:        item.ID,
			Product:   product.Snapshot(),
			Quantity:  item.Quantity,
			CreatedAt: item.CreatedAt,
		})
		summary.TotalPrice += product.Price * float64(item.Quantity)
	}
	summary.Count = len(summary.Items)
	return summary, nil
}

// RemoveItem removes the product from the user's cart. With multi set the
// tuple is deleted outright regardless of quantity; otherwise the quantity
// drops by 1 and the tuple is deleted once it would reach 0.
func (s *CartService) RemoveItem(userID, productID string, multi bool) error {
	item, err := s.cartRepo.Get(userID, productID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NotFound("Cart item not found")
		}
		return err
	}

	if multi || item.Quantity <= 1 {
		err = s.cartRepo.Delete(userID, productID)
	} else {
		err = s.cartRepo.Decrement(userID, productID)
	}
	if err != nil {
		// A concurrent removal may have emptied the tuple between the read
		// and the write; absence is still the caller's NotFound.
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NotFound("Cart item not found")
		}
		return err
	}
	return nil
}

// GetQuantity returns the tuple's quantity, or 0 if no tuple exists. Absence
// is never an error here.
func (s *CartService) GetQuantity(userID, productID string) (int, error) {
	item, err := s.cartRepo.Get(userID, productID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return item.Quantity, nil
}

// Clear deletes every tuple owned by the user and returns the count removed.
// Zero removals is a valid outcome, not an error.
func (s *CartService) Clear(userID string) (int64, error) {
	removed, err := s.cartRepo.DeleteByUser(userID)
	if err != nil {
		return 0, err
	}

	if s.publisher != nil && removed > 0 {
		event := map[string]interface{}{
			"userId":       userID,
			"deletedCount": removed,
		}
		if err := s.publisher.PublishEvent(rabbitmq.EventCartCleared, event); err != nil {
			log.Printf("Warning: Failed to publish cart cleared event for user %s: %v", userID, err)
		}
	}

	return removed, nil
}
