package handlers

import (
	"fmt"
	"log"
	"net/http"

	"goru/internal/apperrors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// envelope is the uniform response shape: {message, data} on every response,
// success and failure alike.
type envelope struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// respond writes a success envelope.
func respond(c *fiber.Ctx, status int, message string, data interface{}) error {
	if data == nil {
		data = fiber.Map{}
	}
	return c.Status(status).JSON(envelope{Message: message, Data: data})
}

// respondError is the single boundary mapping service failures to HTTP.
// Typed errors keep their status and message; anything else becomes a 500
// with a generic message, and the real cause is only logged.
func respondError(c *fiber.Ctx, err error) error {
	status := apperrors.StatusOf(err)
	if status == http.StatusInternalServerError {
		log.Printf("Internal error handling %s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(status).JSON(envelope{
		Message: apperrors.MessageOf(err),
		Data:    fiber.Map{},
	})
}

// validationErrorResponse renders validator failures as a 400 envelope with
// a per-field error map in data.
func validationErrorResponse(c *fiber.Ctx, err error) error {
	errorMessages := make(map[string]string)
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
	}
	return c.Status(fiber.StatusBadRequest).JSON(envelope{
		Message: "Validation failed",
		Data:    fiber.Map{"errors": errorMessages},
	})
}
