package services_test

import (
	"net/http"
	"testing"
	"time"

	"goru/internal/apperrors"
	"goru/internal/repositories"
	"goru/internal/services"

	"github.com/stretchr/testify/assert"
)

func newWishlistFixture(t *testing.T) (*services.WishlistService, *repositories.MockProductRepository) {
	t.Helper()
	productRepo := repositories.NewMockProductRepository()
	wishlistService := services.NewWishlistService(repositories.NewMockWishlistRepository(), productRepo)
	return wishlistService, productRepo
}

func TestWishlistService_AddItem(t *testing.T) {
	wishlistService, productRepo := newWishlistFixture(t)
	seedProduct(t, productRepo, "prod-1", 10.00, true)

	item, err := wishlistService.AddItem("user-1", "prod-1")
	assert.NoError(t, err)
	assert.NotEmpty(t, item.ID)

	// Adding the same pair again is a Conflict, not an idempotent success
	_, err = wishlistService.AddItem("user-1", "prod-1")
	assert.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperrors.StatusOf(err))

	// Storage is unchanged by the rejected add
	summary, err := wishlistService.GetItems("user-1")
	assert.NoError(t, err)
	assert.Equal(t, 1, summary.Count)

	// The same product is fine on another user's wishlist
	_, err = wishlistService.AddItem("user-2", "prod-1")
	assert.NoError(t, err)
}

func TestWishlistService_GetItems(t *testing.T) {
	wishlistService, productRepo := newWishlistFixture(t)
	seedProduct(t, productRepo, "prod-1", 10.00, true)
	seedProduct(t, productRepo, "prod-2", 20.00, true)

	_, err := wishlistService.AddItem("user-1", "prod-1")
	assert.NoError(t, err)
	time.Sleep(5 * time.Millisecond) // distinct creation times for ordering
	_, err = wishlistService.AddItem("user-1", "prod-2")
	assert.NoError(t, err)

	summary, err := wishlistService.GetItems("user-1")
	assert.NoError(t, err)
	assert.Equal(t, 2, summary.Count)
	assert.Equal(t, "prod-2", summary.Items[0].Product.ID)
	assert.Equal(t, "prod-1", summary.Items[1].Product.ID)

	// An empty wishlist reads as an empty set, not an error
	empty, err := wishlistService.GetItems("user-2")
	assert.NoError(t, err)
	assert.Equal(t, 0, empty.Count)
}

func TestWishlistService_RemoveItem(t *testing.T) {
	wishlistService, productRepo := newWishlistFixture(t)
	seedProduct(t, productRepo, "prod-1", 10.00, true)

	// Removing a membership that does not exist fails NotFound
	err := wishlistService.RemoveItem("user-1", "prod-1")
	assert.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperrors.StatusOf(err))

	_, err = wishlistService.AddItem("user-1", "prod-1")
	assert.NoError(t, err)
	assert.NoError(t, wishlistService.RemoveItem("user-1", "prod-1"))

	// A fresh add after deletion starts the membership over
	_, err = wishlistService.AddItem("user-1", "prod-1")
	assert.NoError(t, err)
}
