package services

import (
	"errors"

	"goru/internal/apperrors"
	"goru/internal/models"
	"goru/internal/repositories"
)

// ProductService is the catalog facade: available-product listing and
// by-ID lookup for the cart and wishlist engines, plus catalog management.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// GetAvailableProducts retrieves all products currently marked available.
func (s *ProductService) GetAvailableProducts() ([]models.Product, error) {
	return s.repo.GetAvailable()
}

// GetFeaturedProducts retrieves all available featured products.
func (s *ProductService) GetFeaturedProducts() ([]models.Product, error) {
	return s.repo.GetFeatured()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Product not found")
		}
		return nil, err
	}
	return product, nil
}

// CreateProduct creates a new catalog entry. New products default to
// available unless the caller says otherwise.
func (s *ProductService) CreateProduct(product *models.Product) error {
	if product.Currency == "" {
		product.Currency = "usd"
	}
	return s.repo.Create(product)
}

// UpdateProduct updates an existing product.
func (s *ProductService) UpdateProduct(product *models.Product) error {
	if err := s.repo.Update(product); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NotFound("Product not found")
		}
		return err
	}
	return nil
}

// DeleteProduct delists a product. The record survives so existing cart and
// wishlist tuples still resolve; reads report it as unavailable.
func (s *ProductService) DeleteProduct(id string) error {
	if err := s.repo.SetUnavailable(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NotFound("Product not found")
		}
		return err
	}
	return nil
}
