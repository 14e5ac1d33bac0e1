// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"buytrek/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for payment-transaction persistence.
var (
	// ErrTransactionNotFound is returned when no transaction matches.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrDuplicateReference is returned when the unique reference constraint
	// rejects an insert; the caller regenerates and retries.
	ErrDuplicateReference = errors.New("transaction reference already exists")
)

// TransactionRepository defines the interface for payment-transaction persistence.
type TransactionRepository interface {
	// Create persists a new transaction in status Pending.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByRef retrieves a transaction by its gateway reference.
	FindByRef(ctx context.Context, ref string) (*entity.Transaction, error)

	// CompleteIfPending marks the transaction Completed only when it is
	// still Pending, reporting whether a row was updated. A false result
	// means the webhook was already reconciled; callers treat it as an
	// idempotent no-op.
	CompleteIfPending(ctx context.Context, id uuid.UUID) (bool, error)

	// Delete removes the transaction row.
	Delete(ctx context.Context, id uuid.UUID) error
}
