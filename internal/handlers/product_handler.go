package handlers

import (
	"log"

	"goru/internal/models"
	"goru/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for the catalog.
type ProductHandler struct {
	productService *services.ProductService
	validate       *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/featured", h.HandleGetFeatured)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// ProductRequest represents the request body for creating or updating a
// product.
type ProductRequest struct {
	Name        string  `json:"name" validate:"required,min=3,max=100"`
	Description string  `json:"description" validate:"required,max=500"`
	Price       float64 `json:"price" validate:"gte=0"`
	Currency    string  `json:"currency" validate:"omitempty,len=3"`
	IsFeatured  bool    `json:"isFeatured"`
	ImageRef    string  `json:"imageRef"`
}

// HandleGetProducts lists all available products.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.productService.GetAvailableProducts()
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "Products retrieved successfully", fiber.Map{
		"products": products,
		"count":    len(products),
	})
}

// HandleGetFeatured lists all available featured products.
func (h *ProductHandler) HandleGetFeatured(c *fiber.Ctx) error {
	products, err := h.productService.GetFeaturedProducts()
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "Products retrieved successfully", fiber.Map{
		"products": products,
		"count":    len(products),
	})
}

// HandleGetProductByID retrieves a single product.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	product, err := h.productService.GetProductByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "Product retrieved successfully", fiber.Map{
		"product": product,
	})
}

// HandleCreateProduct creates a new catalog entry.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing product request body: %v", err)
		return respond(c, fiber.StatusBadRequest, "Invalid request body", nil)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Currency:    req.Currency,
		IsAvailable: true,
		IsFeatured:  req.IsFeatured,
		ImageRef:    req.ImageRef,
	}
	if err := h.productService.CreateProduct(product); err != nil {
		return respondError(c, err)
	}

	return respond(c, fiber.StatusCreated, "Product created successfully", fiber.Map{
		"product": product,
	})
}

// HandleUpdateProduct updates an existing catalog entry.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing product request body: %v", err)
		return respond(c, fiber.StatusBadRequest, "Invalid request body", nil)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	product, err := h.productService.GetProductByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	if req.Currency != "" {
		product.Currency = req.Currency
	}
	product.IsFeatured = req.IsFeatured
	if req.ImageRef != "" {
		product.ImageRef = req.ImageRef
	}

	if err := h.productService.UpdateProduct(product); err != nil {
		return respondError(c, err)
	}

	return respond(c, fiber.StatusOK, "Product updated successfully", fiber.Map{
		"product": product,
	})
}

// HandleDeleteProduct delists a product.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	if err := h.productService.DeleteProduct(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "Product deleted successfully", nil)
}
