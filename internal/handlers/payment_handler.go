package handlers

import (
	"log"

	"goru/internal/middleware"
	"goru/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// PaymentHandler handles HTTP requests for checkout initiation.
type PaymentHandler struct {
	paymentService *services.PaymentService
	validate       *validator.Validate
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the payment routes on a guarded group.
func (h *PaymentHandler) RegisterRoutes(router fiber.Router) {
	paymentRoutes := router.Group("/payments")
	paymentRoutes.Post("/create-checkout-session", h.HandleCreateCheckoutSession)
}

// CheckoutSessionRequest represents the request body for checkout initiation.
type CheckoutSessionRequest struct {
	SuccessURL string            `json:"successUrl" validate:"required"`
	CancelURL  string            `json:"cancelUrl" validate:"required"`
	Metadata   map[string]string `json:"metadata"`
}

// HandleCreateCheckoutSession delegates to the payment gateway and returns
// the redirect URL.
func (h *PaymentHandler) HandleCreateCheckoutSession(c *fiber.Ctx) error {
	var req CheckoutSessionRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing checkout session request body: %v", err)
		return respond(c, fiber.StatusBadRequest, "Invalid request body", nil)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	var userID string
	if user := middleware.UserFromContext(c); user != nil {
		userID = user.ID
	}

	url, err := h.paymentService.CreateCheckoutSession(userID, req.SuccessURL, req.CancelURL, req.Metadata)
	if err != nil {
		return respondError(c, err)
	}

	return respond(c, fiber.StatusOK, "Checkout session created successfully", fiber.Map{
		"url": url,
	})
}
