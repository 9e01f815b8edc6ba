package handlers

import (
	"goru/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for the current user's profile.
type UserHandler struct{}

// NewUserHandler creates a new UserHandler.
func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// RegisterRoutes registers the user routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/me", h.HandleGetMe)
}

// HandleGetMe returns the identity the access guard resolved.
func (h *UserHandler) HandleGetMe(c *fiber.Ctx) error {
	user := middleware.UserFromContext(c)
	if user == nil {
		return respond(c, fiber.StatusUnauthorized, "Invalid or expired token", nil)
	}
	user.Password = ""
	return respond(c, fiber.StatusOK, "User profile retrieved successfully", fiber.Map{
		"user": user,
	})
}
