// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"buytrek/internal/domain/entity"

	"github.com/google/uuid"
)

// CartLineView is a cart line with its price math done.
type CartLineView struct {
	ProductID uuid.UUID `json:"productId"`
	Product   string    `json:"product"`
	Amount    int64     `json:"amount"`
	Quantity  int       `json:"quantity"`
	Subtotal  int64     `json:"subtotal"`
}

// CartView is the buyer's current cart.
type CartView struct {
	Lines       []*CartLineView `json:"lines"`
	TotalAmount int64           `json:"totalAmount"`
}

// CartUsecase manages a buyer's cart lines. All operations require the
// buyer role; sellers and staff do not carry carts.
type CartUsecase interface {
	// AddToCart creates a quantity-1 line for an available product.
	// Adding a product already in the cart is a conflict.
	AddToCart(ctx context.Context, principal entity.Principal, productID uuid.UUID) error

	// IncreaseQuantity bumps an existing line's quantity by one.
	IncreaseQuantity(ctx context.Context, principal entity.Principal, productID uuid.UUID) error

	// DecreaseQuantity lowers an existing line's quantity by one, never
	// below one; removal is the explicit RemoveFromCart operation.
	DecreaseQuantity(ctx context.Context, principal entity.Principal, productID uuid.UUID) error

	// RemoveFromCart deletes the line for a product.
	RemoveFromCart(ctx context.Context, principal entity.Principal, productID uuid.UUID) error

	// GetCart returns the cart restricted to currently available products.
	GetCart(ctx context.Context, principal entity.Principal) (*CartView, error)
}
