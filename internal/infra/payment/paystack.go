// Package payment implements the payment-gateway contract against the
// Paystack HTTP API.
package payment

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"buytrek/config"
	"buytrek/internal/domain/service"
	"buytrek/internal/errors"

	"go.uber.org/fx"
)

const defaultBaseURL = "https://api.paystack.co"

// paystackGateway implements service.PaymentGateway against the Paystack API.
type paystackGateway struct {
	secretKey  string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// GatewayParams holds dependencies for the gateway, injected by Fx.
type GatewayParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewGateway is the constructor for paystackGateway.
func NewGateway(params GatewayParams) (service.PaymentGateway, error) {
	if params.Config == nil || params.Config.Paystack == nil || params.Config.Paystack.SecretKey == "" {
		return nil, errors.New("paystack secret key must be provided")
	}

	baseURL := params.Config.Paystack.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &paystackGateway{
		secretKey: params.Config.Paystack.SecretKey,
		baseURL:   baseURL,
		// Per-call deadlines come from the caller's context.
		httpClient: &http.Client{},
		logger:     params.Logger,
	}, nil
}

// initializeRequest is the gateway's initialize payload. Amount is in minor
// units, which is also what the API expects.
type initializeRequest struct {
	Amount      int64  `json:"amount"`
	Email       string `json:"email"`
	Reference   string `json:"reference"`
	CallbackURL string `json:"callback_url,omitempty"`
	Metadata    struct {
		CancelAction string `json:"cancel_action,omitempty"`
	} `json:"metadata"`
}

// initializeResponse is the slice of the API response we consume.
type initializeResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	} `json:"data"`
}

// Initialize creates a payment session. Any non-success response or
// transport failure (including the context deadline) is returned as an error.
func (g *paystackGateway) Initialize(ctx context.Context, req service.InitializePayment) (*service.PaymentAuthorization, error) {
	payload := initializeRequest{
		Amount:      req.Amount,
		Email:       req.Email,
		Reference:   req.Reference,
		CallbackURL: req.CallbackURL,
	}
	payload.Metadata.CancelAction = req.CancelURL

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode initialize payload")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/transaction/initialize", bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build initialize request")
	}
	httpReq.Header.Set("Authorization", "Bearer "+g.secretKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(err, "initialize request failed")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read initialize response")
	}

	var parsed initializeResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, errors.Wrapf(err, "failed to decode initialize response (HTTP %d)", resp.StatusCode)
	}

	if resp.StatusCode != http.StatusOK || !parsed.Status {
		g.logger.Warn("Gateway rejected payment initialization",
			slog.Int("httpStatus", resp.StatusCode),
			slog.String("message", parsed.Message),
			slog.String("reference", req.Reference))

		return nil, errors.Errorf("gateway rejected initialization: %s", parsed.Message)
	}

	return &service.PaymentAuthorization{
		AuthorizationURL: parsed.Data.AuthorizationURL,
		AccessCode:       parsed.Data.AccessCode,
	}, nil
}

// VerifyWebhookSignature recomputes the HMAC-SHA512 of the raw webhook body
// with the secret key and compares it to the signature header in constant
// time.
func (g *paystackGateway) VerifyWebhookSignature(body []byte, signature string) bool {
	mac := hmac.New(sha512.New, []byte(g.secretKey))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
