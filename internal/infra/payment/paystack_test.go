package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"buytrek/config"
	"buytrek/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(t *testing.T, baseURL string) *paystackGateway {
	t.Helper()

	gateway, err := NewGateway(GatewayParams{
		Config: &config.Config{
			Paystack: &config.PaystackConfig{SecretKey: "sk_test_secret", BaseURL: baseURL},
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	return gateway.(*paystackGateway)
}

func TestNewGateway_RequiresSecretKey(t *testing.T) {
	_, err := NewGateway(GatewayParams{
		Config: &config.Config{Paystack: &config.PaystackConfig{}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	assert.Error(t, err)
}

func TestPaystackGateway_Initialize_Success(t *testing.T) {
	var received initializeRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transaction/initialize", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_secret", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":true,"message":"Authorization URL created","data":{"authorization_url":"https://checkout.example/abc","access_code":"abc","reference":"TXN-abc-123"}}`))
	}))
	defer server.Close()

	gateway := newTestGateway(t, server.URL)

	auth, err := gateway.Initialize(context.Background(), service.InitializePayment{
		Amount:    2500,
		Email:     "buyer@example.com",
		Reference: "TXN-abc-123",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://checkout.example/abc", auth.AuthorizationURL)
	assert.Equal(t, "abc", auth.AccessCode)
	assert.Equal(t, int64(2500), received.Amount)
	assert.Equal(t, "buyer@example.com", received.Email)
	assert.Equal(t, "TXN-abc-123", received.Reference)
}

func TestPaystackGateway_Initialize_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"status":false,"message":"Invalid email address"}`))
	}))
	defer server.Close()

	gateway := newTestGateway(t, server.URL)

	_, err := gateway.Initialize(context.Background(), service.InitializePayment{
		Amount:    2500,
		Email:     "not-an-email",
		Reference: "TXN-abc-123",
	})

	assert.ErrorContains(t, err, "Invalid email address")
}

func TestPaystackGateway_VerifyWebhookSignature(t *testing.T) {
	gateway := newTestGateway(t, "http://unused")
	body := []byte(`{"event":"charge.success","data":{"reference":"TXN-abc-123","amount":2500}}`)

	mac := hmac.New(sha512.New, []byte("sk_test_secret"))
	mac.Write(body)
	valid := hex.EncodeToString(mac.Sum(nil))

	assert.True(t, gateway.VerifyWebhookSignature(body, valid))
	assert.False(t, gateway.VerifyWebhookSignature(body, "deadbeef"))
	assert.False(t, gateway.VerifyWebhookSignature([]byte(`tampered`), valid))
}
