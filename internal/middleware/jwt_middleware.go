package middleware

import (
	"log"
	"strings"

	"goru/internal/models"
	"goru/internal/repositories"
	"goru/internal/services"

	"github.com/gofiber/fiber/v2"
)

// userContextKey is where the resolved identity lives in the request locals.
const userContextKey = "user"

// AuthRequired is the access guard run before every protected operation.
// It extracts the bearer credential, verifies the access token, and
// re-resolves the user by the embedded identifier. Every failure path
// answers the same generic 401: missing header, bad signature, expiry, and
// missing user are indistinguishable to the caller.
func AuthRequired(authService *services.AuthService, userRepo repositories.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		unauthorized := func(cause string) error {
			log.Printf("Access denied for %s %s: %s", c.Method(), c.Path(), cause)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
				"data":    fiber.Map{},
			})
		}

		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return unauthorized("missing authorization header")
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return unauthorized("malformed authorization header")
		}

		claims, err := authService.VerifyAccessToken(parts[1])
		if err != nil {
			return unauthorized("token verification failed")
		}

		user, err := userRepo.GetByID(claims.UserID)
		if err != nil {
			return unauthorized("token subject not found")
		}

		c.Locals(userContextKey, user)
		return c.Next()
	}
}

// UserFromContext returns the identity the guard attached, or nil when the
// request never passed the guard.
func UserFromContext(c *fiber.Ctx) *models.User {
	user, ok := c.Locals(userContextKey).(*models.User)
	if !ok {
		return nil
	}
	return user
}
