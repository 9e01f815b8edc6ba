package handlers

import (
	"log"

	"goru/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the cart engine.
type CartHandler struct {
	cartService *services.CartService
	validate    *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the cart routes on the guarded /users group.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/:userId/cart", h.HandleAddItem)
	router.Get("/:userId/cart", h.HandleGetItems)
	router.Delete("/:userId/cart", h.HandleRemoveItem)
	router.Post("/:userId/cart/clear", h.HandleClear)
	router.Get("/:userId/cart/:productId/quantity", h.HandleGetQuantity)
}

// AddCartItemRequest represents the request body for adding to the cart.
// Quantity is accepted and bounded for schema parity, but the engine always
// increments by 1.
type AddCartItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,min=1,max=100"`
}

// HandleAddItem adds one unit of a product to the cart. A brand-new tuple
// answers 201, an incremented one answers 200.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	userID := c.Params("userId")

	var req AddCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing cart item request body: %v", err)
		return respond(c, fiber.StatusBadRequest, "Invalid request body", nil)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	item, created, err := h.cartService.AddItem(userID, req.ProductID)
	if err != nil {
		return respondError(c, err)
	}

	if created {
		return respond(c, fiber.StatusCreated, "Cart item created successfully", fiber.Map{
			"cartItem": item,
		})
	}
	return respond(c, fiber.StatusOK, "Cart item updated successfully", fiber.Map{
		"cartItem": item,
	})
}

// HandleGetItems returns the cart with product snapshots, count, and total
// price.
func (h *CartHandler) HandleGetItems(c *fiber.Ctx) error {
	userID := c.Params("userId")

	summary, err := h.cartService.GetItems(userID)
	if err != nil {
		return respondError(c, err)
	}

	return respond(c, fiber.StatusOK, "Cart items retrieved successfully", summary)
}

// HandleRemoveItem removes a product from the cart. productId comes from the
// query string; multi=true deletes the tuple regardless of quantity.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	userID := c.Params("userId")
	productID := c.Query("productId")
	if productID == "" {
		return respond(c, fiber.StatusBadRequest, "productId query parameter is required", nil)
	}
	multi := c.QueryBool("multi")

	if err := h.cartService.RemoveItem(userID, productID, multi); err != nil {
		return respondError(c, err)
	}

	return respond(c, fiber.StatusOK, "Cart item deleted successfully", nil)
}

// HandleClear removes every cart tuple the user owns.
func (h *CartHandler) HandleClear(c *fiber.Ctx) error {
	userID := c.Params("userId")

	deleted, err := h.cartService.Clear(userID)
	if err != nil {
		return respondError(c, err)
	}

	return respond(c, fiber.StatusOK, "Cart cleared successfully", fiber.Map{
		"deletedCount": deleted,
	})
}

// HandleGetQuantity reports the quantity of a product in the cart, 0 when
// the product is not there.
func (h *CartHandler) HandleGetQuantity(c *fiber.Ctx) error {
	userID := c.Params("userId")
	productID := c.Params("productId")

	quantity, err := h.cartService.GetQuantity(userID, productID)
	if err != nil {
		return respondError(c, err)
	}

	return respond(c, fiber.StatusOK, "Cart item quantity retrieved successfully", fiber.Map{
		"productId": productID,
		"quantity":  quantity,
	})
}
