package repositories

import (
	"goru/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAvailable() ([]models.Product, error)
	GetFeatured() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	SetUnavailable(id string) error
}
