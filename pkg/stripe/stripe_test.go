package stripe

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewClient(t *testing.T) {
	_, err := NewClient(Config{})
	assert.Error(t, err)

	client, err := NewClient(Config{SecretKey: "sk_test_123", BaseURL: "http://localhost:9999/"})
	assert.NoError(t, err)
	assert.Equal(t, "http://localhost:9999", client.baseURL)
}

func TestCreateCheckoutSession(t *testing.T) {
	var gotForm map[string]string
	var gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/checkout/sessions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")

		assert.NoError(t, r.ParseForm())
		gotForm = make(map[string]string)
		for key := range r.PostForm {
			gotForm[key] = r.PostForm.Get(key)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "cs_test_abc123", "url": "https://checkout.stripe.com/c/cs_test_abc123"}`))
	}))
	defer server.Close()

	client, err := NewClient(Config{SecretKey: "sk_test_123", BaseURL: server.URL})
	assert.NoError(t, err)

	sessionURL, err := client.CreateCheckoutSession(CheckoutSessionParams{
		SuccessURL: "https://shop.example.com/success",
		CancelURL:  "https://shop.example.com/cancel",
		Metadata:   map[string]string{"orderId": "12345"},
	})
	assert.NoError(t, err)
	assert.Equal(t, "https://checkout.stripe.com/c/cs_test_abc123", sessionURL)

	assert.Equal(t, "Bearer sk_test_123", gotAuth)
	assert.Equal(t, "payment", gotForm["mode"])
	assert.Equal(t, "card", gotForm["payment_method_types[0]"])
	assert.Equal(t, "https://shop.example.com/success", gotForm["success_url"])
	assert.Equal(t, "https://shop.example.com/cancel", gotForm["cancel_url"])
	assert.Equal(t, "12345", gotForm["metadata[orderId]"])
}

func TestCreateCheckoutSessionAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": {"message": "Invalid API Key provided"}}`))
	}))
	defer server.Close()

	client, err := NewClient(Config{SecretKey: "sk_test_bad", BaseURL: server.URL})
	assert.NoError(t, err)

	_, err = client.CreateCheckoutSession(CheckoutSessionParams{
		SuccessURL: "https://shop.example.com/success",
		CancelURL:  "https://shop.example.com/cancel",
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestCreateCheckoutSessionMissingURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": "cs_test_abc123"}`))
	}))
	defer server.Close()

	client, err := NewClient(Config{SecretKey: "sk_test_123", BaseURL: server.URL})
	assert.NoError(t, err)

	_, err = client.CreateCheckoutSession(CheckoutSessionParams{
		SuccessURL: "https://shop.example.com/success",
		CancelURL:  "https://shop.example.com/cancel",
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "missing session url")
}
