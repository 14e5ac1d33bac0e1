// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// TransactionStatus is the settlement state of a payment transaction.
type TransactionStatus string

const (
	// TransactionPending is the initial status, set before the gateway call.
	TransactionPending TransactionStatus = "Pending"
	// TransactionCompleted is set when the gateway confirms payment.
	TransactionCompleted TransactionStatus = "Completed"
	// TransactionFailed marks a transaction the gateway rejected.
	TransactionFailed TransactionStatus = "Failed"
)

// Transaction is the local record of a payment attempt. Ref is the unique
// correlation key shared with the payment gateway; webhook callbacks are
// matched against it.
type Transaction struct {
	ID        uuid.UUID
	Ref       string // Unique reference, e.g. "TXN-x4f9k2a1p-1756700000000".
	Amount    int64  // Expected amount in minor units.
	Status    TransactionStatus
	UserID    uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderTransaction is the 1:1 join between an order and its payment
// transaction, used to resolve the order during webhook reconciliation.
type OrderTransaction struct {
	ID            uuid.UUID
	OrderID       uuid.UUID
	TransactionID uuid.UUID
	CreatedAt     time.Time
}
