package service

import "context"

// InitializePayment is the request for creating a remote payment session.
type InitializePayment struct {
	Amount      int64  // Amount in minor units (kobo/cents).
	Email       string // Buyer email the gateway associates with the charge.
	Reference   string // Unique transaction reference for webhook correlation.
	CallbackURL string
	CancelURL   string
}

// PaymentAuthorization is the gateway's successful initialize response.
type PaymentAuthorization struct {
	AuthorizationURL string // Hosted payment page the buyer is redirected to.
	AccessCode       string
}

// PaymentGateway is the outbound contract with the payment provider.
type PaymentGateway interface {
	// Initialize creates a payment session. Any non-success response or
	// transport failure (including timeout) is returned as an error; the
	// caller rolls back the pending order.
	Initialize(ctx context.Context, req InitializePayment) (*PaymentAuthorization, error)

	// VerifyWebhookSignature recomputes the HMAC-SHA512 of the raw webhook
	// body with the shared secret and compares it to the signature header in
	// constant time.
	VerifyWebhookSignature(body []byte, signature string) bool
}
