package services_test

import (
	"fmt"
	"net/http"
	"testing"

	"goru/internal/apperrors"
	"goru/internal/services"
	"goru/pkg/stripe"

	"github.com/stretchr/testify/assert"
)

type stubGateway struct {
	lastParams stripe.CheckoutSessionParams
	url        string
	err        error
}

func (g *stubGateway) CreateCheckoutSession(params stripe.CheckoutSessionParams) (string, error) {
	g.lastParams = params
	return g.url, g.err
}

type recordingPublisher struct {
	events []string
}

func (p *recordingPublisher) PublishEvent(eventType string, payload map[string]interface{}) error {
	p.events = append(p.events, eventType)
	return nil
}

func TestPaymentService_CreateCheckoutSession(t *testing.T) {
	gateway := &stubGateway{url: "https://checkout.stripe.com/c/session_123"}
	publisher := &recordingPublisher{}
	paymentService := services.NewPaymentService(gateway, publisher)

	url, err := paymentService.CreateCheckoutSession(
		"user-1",
		"https://shop.example.com/success",
		"https://shop.example.com/cancel",
		map[string]string{"orderId": "12345"},
	)
	assert.NoError(t, err)
	assert.Equal(t, gateway.url, url)
	assert.Equal(t, "https://shop.example.com/success", gateway.lastParams.SuccessURL)
	assert.Equal(t, "12345", gateway.lastParams.Metadata["orderId"])
	assert.Len(t, publisher.events, 1)
}

func TestPaymentService_RejectsInvalidURLs(t *testing.T) {
	gateway := &stubGateway{url: "https://checkout.stripe.com/c/session_123"}
	paymentService := services.NewPaymentService(gateway, nil)

	_, err := paymentService.CreateCheckoutSession("user-1", "ftp://bad", "https://ok.example.com", nil)
	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperrors.StatusOf(err))

	_, err = paymentService.CreateCheckoutSession("user-1", "https://ok.example.com", "not-a-url", nil)
	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperrors.StatusOf(err))
}

func TestPaymentService_GatewayFailure(t *testing.T) {
	gateway := &stubGateway{err: fmt.Errorf("stripe returned status 402")}
	publisher := &recordingPublisher{}
	paymentService := services.NewPaymentService(gateway, publisher)

	_, err := paymentService.CreateCheckoutSession(
		"user-1", "https://shop.example.com/success", "https://shop.example.com/cancel", nil)
	assert.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, apperrors.StatusOf(err))
	// The gateway's own message is not surfaced to the caller
	assert.Equal(t, "Failed to create checkout session", apperrors.MessageOf(err))
	assert.Len(t, publisher.events, 0)
}

func TestPaymentService_NoGatewayConfigured(t *testing.T) {
	paymentService := services.NewPaymentService(nil, nil)

	_, err := paymentService.CreateCheckoutSession(
		"user-1", "https://shop.example.com/success", "https://shop.example.com/cancel", nil)
	assert.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, apperrors.StatusOf(err))
}
