package services

import (
	"errors"
	"fmt"
	"time"

	"goru/internal/apperrors"
	"goru/internal/models"
	"goru/internal/repositories"
)

// WishlistView is a wishlist tuple joined with its product snapshot.
type WishlistView struct {
	ID        string                 `json:"id"`
	Product   models.ProductSnapshot `json:"product"`
	CreatedAt time.Time              `json:"createdAt"`
}

// WishlistSummary is the result of reading a user's wishlist.
type WishlistSummary struct {
	Items []WishlistView `json:"wishlistItems"`
	Count int            `json:"count"`
}

// WishlistService enforces a uniqueness invariant over a binary
// (user, product) relation. Same shape as the cart engine, no quantity.
type WishlistService struct {
	wishlistRepo repositories.WishlistRepository
	productRepo  repositories.ProductRepository
}

// NewWishlistService creates a new WishlistService.
func NewWishlistService(wishlistRepo repositories.WishlistRepository, productRepo repositories.ProductRepository) *WishlistService {
	return &WishlistService{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

// AddItem creates the membership tuple. Adding an existing pair is rejected
// with Conflict and leaves storage unchanged.
func (s *WishlistService) AddItem(userID, productID string) (*models.WishlistItem, error) {
	item := &models.WishlistItem{
		UserID:    userID,
		ProductID: productID,
	}
	if err := s.wishlistRepo.Create(item); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, apperrors.Conflict("Product already exists in wishlist")
		}
		return nil, fmt.Errorf("failed to add wishlist item: %w", err)
	}
	return item, nil
}

// GetItems returns the user's tuples joined with product snapshots, most
// recently created first, plus their count.
func (s *WishlistService) GetItems(userID string) (*WishlistSummary, error) {
	items, err := s.wishlistRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}

	summary := &WishlistSummary{Items: make([]WishlistView, 0, len(items))}
	for _, item := range items {
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve product %s for wishlist: %w", item.ProductID, err)
		}
		summary.Items = append(summary.Items, WishlistView{
			ID:        item.ID,
			Product:   product.Snapshot(),
			CreatedAt: item.CreatedAt,
		})
	}
	summary.Count = len(summary.Items)
	return summary, nil
}

// RemoveItem deletes the membership tuple, failing NotFound if it did not
// exist.
func (s *WishlistService) RemoveItem(userID, productID string) error {
	if err := s.wishlistRepo.Delete(userID, productID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NotFound("Wishlist item not found")
		}
		return err
	}
	return nil
}
