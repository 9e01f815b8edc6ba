package services

import (
	"fmt"
	"log"
	"net/http"
	"regexp"

	"goru/internal/apperrors"
	"goru/pkg/rabbitmq"
	"goru/pkg/stripe"
)

// EventPublisher publishes commerce events to the message broker.
// *rabbitmq.Client satisfies it; a nil publisher disables publishing.
type EventPublisher interface {
	PublishEvent(eventType string, payload map[string]interface{}) error
}

// CheckoutGateway creates a payment redirect URL from success/cancel URLs
// and metadata. *stripe.Client satisfies it.
type CheckoutGateway interface {
	CreateCheckoutSession(params stripe.CheckoutSessionParams) (string, error)
}

var checkoutURLPattern = regexp.MustCompile(`^https?://.+`)

// PaymentService initiates checkout against the external payment gateway.
type PaymentService struct {
	gateway   CheckoutGateway
	publisher EventPublisher
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(gateway CheckoutGateway, publisher EventPublisher) *PaymentService {
	return &PaymentService{
		gateway:   gateway,
		publisher: publisher,
	}
}

// CreateCheckoutSession validates the redirect URLs, delegates to the
// gateway, and returns the session URL. A session-created event is published
// best-effort.
func (s *PaymentService) CreateCheckoutSession(userID, successURL, cancelURL string, metadata map[string]string) (string, error) {
	if !checkoutURLPattern.MatchString(successURL) || !checkoutURLPattern.MatchString(cancelURL) {
		return "", apperrors.BadRequest("successUrl and cancelUrl must be valid URLs")
	}
	if s.gateway == nil {
		return "", fmt.Errorf("payment gateway is not configured")
	}

	sessionURL, err := s.gateway.CreateCheckoutSession(stripe.CheckoutSessionParams{
		SuccessURL: successURL,
		CancelURL:  cancelURL,
		Metadata:   metadata,
	})
	if err != nil {
		log.Printf("Error creating checkout session for user %s: %v", userID, err)
		return "", apperrors.New(http.StatusInternalServerError, "Failed to create checkout session")
	}

	if s.publisher != nil {
		event := map[string]interface{}{
			"userId": userID,
			"url":    sessionURL,
		}
		if err := s.publisher.PublishEvent(rabbitmq.EventCheckoutSessionCreated, event); err != nil {
			log.Printf("Warning: Failed to publish checkout session event for user %s: %v", userID, err)
		}
	}

	return sessionURL, nil
}
