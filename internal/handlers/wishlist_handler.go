package handlers

import (
	"log"

	"goru/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// WishlistHandler handles HTTP requests for the wishlist engine.
type WishlistHandler struct {
	wishlistService *services.WishlistService
	validate        *validator.Validate
}

// NewWishlistHandler creates a new WishlistHandler.
func NewWishlistHandler(wishlistService *services.WishlistService) *WishlistHandler {
	return &WishlistHandler{
		wishlistService: wishlistService,
		validate:        validator.New(),
	}
}

// RegisterRoutes registers the wishlist routes on the guarded /users group.
func (h *WishlistHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/:userId/wishlist", h.HandleAddItem)
	router.Get("/:userId/wishlist", h.HandleGetItems)
	router.Delete("/:userId/wishlist/:productId", h.HandleRemoveItem)
}

// AddWishlistItemRequest represents the request body for adding to the
// wishlist.
type AddWishlistItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

// HandleAddItem adds a product to the wishlist. An existing membership is a
// 409, not a silent success.
func (h *WishlistHandler) HandleAddItem(c *fiber.Ctx) error {
	userID := c.Params("userId")

	var req AddWishlistItemRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing wishlist item request body: %v", err)
		return respond(c, fiber.StatusBadRequest, "Invalid request body", nil)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	item, err := h.wishlistService.AddItem(userID, req.ProductID)
	if err != nil {
		return respondError(c, err)
	}

	return respond(c, fiber.StatusCreated, "Wishlist item created successfully", fiber.Map{
		"wishlistItem": item,
	})
}

// HandleGetItems returns the wishlist with product snapshots and count.
func (h *WishlistHandler) HandleGetItems(c *fiber.Ctx) error {
	userID := c.Params("userId")

	summary, err := h.wishlistService.GetItems(userID)
	if err != nil {
		return respondError(c, err)
	}

	return respond(c, fiber.StatusOK, "Wishlist items retrieved successfully", summary)
}

// HandleRemoveItem removes a product from the wishlist.
func (h *WishlistHandler) HandleRemoveItem(c *fiber.Ctx) error {
	userID := c.Params("userId")
	productID := c.Params("productId")

	if err := h.wishlistService.RemoveItem(userID, productID); err != nil {
		return respondError(c, err)
	}

	return respond(c, fiber.StatusOK, "Wishlist item deleted successfully", nil)
}
