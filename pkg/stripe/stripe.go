// Package stripe is a minimal client for the Stripe Checkout Sessions API.
// Only session creation is needed: the payment flow hands the shopper a
// redirect URL and everything after that happens on Stripe's side.
package stripe

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.stripe.com"

// Config holds Stripe connection details.
type Config struct {
	SecretKey string
	// BaseURL overrides the API host, used by tests.
	BaseURL string
}

// Client calls the Stripe API with a fixed secret key.
type Client struct {
	secretKey  string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new Stripe client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("stripe secret key is required")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		secretKey: cfg.SecretKey,
		baseURL:   strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// CheckoutSessionParams describe a session to create. Metadata keys are
// forwarded verbatim.
type CheckoutSessionParams struct {
	SuccessURL string
	CancelURL  string
	Metadata   map[string]string
}

type checkoutSessionResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// CreateCheckoutSession creates a card-payment checkout session and returns
// the redirect URL.
func (c *Client) CreateCheckoutSession(params CheckoutSessionParams) (string, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("payment_method_types[0]", "card")
	form.Set("success_url", params.SuccessURL)
	form.Set("cancel_url", params.CancelURL)
	form.Set("line_items[0][price_data][currency]", "usd")
	form.Set("line_items[0][price_data][product_data][name]", "Sample Product")
	form.Set("line_items[0][price_data][unit_amount]", "2000")
	form.Set("line_items[0][quantity]", "1")
	for key, value := range params.Metadata {
		form.Set(fmt.Sprintf("metadata[%s]", key), value)
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/v1/checkout/sessions", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build checkout session request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call stripe: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read stripe response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("stripe returned status %d: %s", resp.StatusCode, body)
	}

	var session checkoutSessionResponse
	if err := json.Unmarshal(body, &session); err != nil {
		return "", fmt.Errorf("failed to decode stripe response: %w", err)
	}
	if session.URL == "" {
		return "", fmt.Errorf("stripe response missing session url")
	}
	return session.URL, nil
}
