// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"buytrek/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProductInput defines a new catalog item.
type CreateProductInput struct {
	Name        string `json:"product" validate:"required"`
	Amount      int64  `json:"amount" validate:"required,gt=0"` // minor units
	Description string `json:"description"`
	Category    string `json:"category"`
	Available   bool   `json:"isAvailable"`
}

// UpdateProductInput modifies an existing catalog item. Nil fields are left
// untouched.
type UpdateProductInput struct {
	ProductID   uuid.UUID `json:"productId" validate:"required"`
	Name        *string   `json:"product"`
	Amount      *int64    `json:"amount" validate:"omitempty,gt=0"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	Available   *bool     `json:"isAvailable"`
}

// ListProductsInput pages the public catalog.
type ListProductsInput struct {
	Category string `query:"category"`
	Page     int    `query:"page"`
	Size     int    `query:"size"`
}

// ProductPage is one page of catalog results.
type ProductPage struct {
	Products    []*entity.Product `json:"products"`
	CurrentPage int               `json:"currentPage"`
	TotalPages  int               `json:"totalPages"`
	Total       int64             `json:"total"`
}

// ProductUsecase covers the catalog operations sellers and buyers need
// around the order flow.
type ProductUsecase interface {
	// CreateProduct adds a product owned by the calling seller.
	CreateProduct(ctx context.Context, principal entity.Principal, input *CreateProductInput) (*entity.Product, error)

	// UpdateProduct modifies a product owned by the calling seller.
	// Admins may modify any product.
	UpdateProduct(ctx context.Context, principal entity.Principal, input *UpdateProductInput) (*entity.Product, error)

	// GetProduct returns a single product.
	GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error)

	// ListProducts returns one page of available products.
	ListProducts(ctx context.Context, input *ListProductsInput) (*ProductPage, error)
}
