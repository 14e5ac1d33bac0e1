// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"buytrek/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductQuery narrows and pages a catalog listing.
type ProductQuery struct {
	Category      string    // Filter by category when non-empty.
	SellerID      uuid.UUID // Filter by owning seller when non-zero.
	AvailableOnly bool
	Skip          int
	Take          int
}

// ProductRepository defines the interface for catalog persistence.
type ProductRepository interface {
	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindAvailableByID retrieves a product only if it is currently available.
	// Returns ErrProductNotFound for missing and unavailable products alike.
	FindAvailableByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// Update modifies an existing product record.
	Update(ctx context.Context, product *entity.Product) error

	// FindPage returns one page of products and the total match count.
	FindPage(ctx context.Context, query ProductQuery) ([]*entity.Product, int64, error)
}
