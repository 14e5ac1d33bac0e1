// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"buytrek/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for cart persistence.
var (
	// ErrCartLineNotFound is returned when a cart line is not found.
	ErrCartLineNotFound = errors.New("cart line not found")
	// ErrDuplicateCartLine is returned when the (user, product) unique
	// constraint rejects an insert. Concurrent adds race to this instead of
	// creating duplicate lines.
	ErrDuplicateCartLine = errors.New("product already in cart")
)

// CartRepository defines the interface for cart persistence.
type CartRepository interface {
	// Create persists a new cart line with quantity 1.
	Create(ctx context.Context, line *entity.CartLine) error

	// FindLine retrieves the line for a (user, product) pair.
	FindLine(ctx context.Context, userID, productID uuid.UUID) (*entity.CartLine, error)

	// FindAvailableLines retrieves the user's cart lines whose product is
	// currently available, with products preloaded. Lines pointing at
	// unavailable products are silently excluded.
	FindAvailableLines(ctx context.Context, userID uuid.UUID) ([]*entity.CartLine, error)

	// FindLines retrieves all of the user's cart lines with products preloaded.
	FindLines(ctx context.Context, userID uuid.UUID) ([]*entity.CartLine, error)

	// UpdateQuantity sets the quantity of an existing line.
	UpdateQuantity(ctx context.Context, lineID uuid.UUID, quantity int) error

	// Delete removes a single cart line.
	Delete(ctx context.Context, lineID uuid.UUID) error

	// DeleteLines removes the given cart lines. Order placement sweeps the
	// consumed lines with it.
	DeleteLines(ctx context.Context, lineIDs []uuid.UUID) error
}
