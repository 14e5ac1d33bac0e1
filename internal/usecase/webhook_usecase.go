// Package usecase contains the application-specific business rules.
package usecase

import "context"

// WebhookUsecase reconciles asynchronous payment-gateway callbacks against
// local transaction and order state.
type WebhookUsecase interface {
	// HandleWebhook validates the callback's source IP and HMAC signature,
	// matches it to a pending transaction, and completes the order payment
	// exactly once. Replays of an already-reconciled reference succeed
	// without mutating state or re-notifying.
	HandleWebhook(ctx context.Context, signature string, sourceIP string, body []byte) error
}
