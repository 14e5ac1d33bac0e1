// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"buytrek/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateAddressInput adds a delivery address for the caller.
type CreateAddressInput struct {
	Address string `json:"address" validate:"required"`
}

// UpdateAddressInput rewrites an existing address.
type UpdateAddressInput struct {
	AddressID uuid.UUID `json:"addressId" validate:"required"`
	Address   string    `json:"address" validate:"required"`
}

// AddressUsecase manages a buyer's delivery addresses. The default address
// is the one order placement snapshots.
type AddressUsecase interface {
	// CreateAddress adds an address; the user's first address becomes the default.
	CreateAddress(ctx context.Context, principal entity.Principal, input *CreateAddressInput) (*entity.Address, error)

	// ListAddresses returns all of the caller's addresses.
	ListAddresses(ctx context.Context, principal entity.Principal) ([]*entity.Address, error)

	// UpdateAddress rewrites one of the caller's addresses.
	UpdateAddress(ctx context.Context, principal entity.Principal, input *UpdateAddressInput) (*entity.Address, error)

	// SetDefaultAddress promotes an address to default, demoting the previous one.
	SetDefaultAddress(ctx context.Context, principal entity.Principal, addressID uuid.UUID) error

	// DeleteAddress removes one of the caller's addresses.
	DeleteAddress(ctx context.Context, principal entity.Principal, addressID uuid.UUID) error
}
