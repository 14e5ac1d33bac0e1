package service

import "context"

// NotificationEvent identifies a lifecycle message template.
type NotificationEvent string

// Notification events sent over the buyer/seller lifecycle.
const (
	EventVerifyRegistration    NotificationEvent = "verify-registration"
	EventAccountActivated      NotificationEvent = "activated-account"
	EventPasswordResetOTP      NotificationEvent = "initiate-password"
	EventPasswordResetComplete NotificationEvent = "complete-password"
	EventOrderCreated          NotificationEvent = "new-order"
	EventOrderPaymentCompleted NotificationEvent = "payment-completed"
	EventOrderAdminNewOrder    NotificationEvent = "admin-new-order"
	EventOrderPackaging        NotificationEvent = "packaging"
	EventOrderPackaged         NotificationEvent = "packaged"
	EventOrderOutForDelivery   NotificationEvent = "out-for-delivery"
	EventOrderDelivered        NotificationEvent = "delivered"
	EventOrderCancelled        NotificationEvent = "cancelled"
)

// Notifier delivers lifecycle messages to users. Delivery is best-effort:
// callers dispatch without awaiting and must never fail an operation on a
// notification error.
type Notifier interface {
	// Send delivers the event's template to the recipients. The returned
	// error is for logging only.
	Send(ctx context.Context, event NotificationEvent, recipients []string, data map[string]any) error
}
