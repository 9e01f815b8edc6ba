package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"goru/internal/models"

	"github.com/google/uuid"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	products map[string]models.Product
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]models.Product),
	}
}

// GetAvailable returns all available products, newest first.
func (r *MockProductRepository) GetAvailable() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		if p.IsAvailable {
			productList = append(productList, p)
		}
	}
	sortProductsNewestFirst(productList)
	return productList, nil
}

// GetFeatured returns all available featured products, newest first.
func (r *MockProductRepository) GetFeatured() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0)
	for _, p := range r.products {
		if p.IsAvailable && p.IsFeatured {
			productList = append(productList, p)
		}
	}
	sortProductsNewestFirst(productList)
	return productList, nil
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
	}
	return &product, nil
}

// Create adds a new product.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if product.Model.CreatedAt.IsZero() {
		product.Model.CreatedAt = time.Now()
	}
	r.products[product.ID] = *product
	return nil
}

// Update modifies an existing product.
func (r *MockProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.products[product.ID]
	if !ok {
		return fmt.Errorf("product with ID %s: %w", product.ID, ErrNotFound)
	}
	r.products[product.ID] = *product
	return nil
}

// SetUnavailable clears the availability flag of a product.
func (r *MockProductRepository) SetUnavailable(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
	}
	product.IsAvailable = false
	r.products[id] = product
	return nil
}

func sortProductsNewestFirst(products []models.Product) {
	sort.Slice(products, func(i, j int) bool {
		return products[i].Model.CreatedAt.After(products[j].Model.CreatedAt)
	})
}
