package impl

import (
	"context"
	"log/slog"

	deliverycontext "buytrek/internal/delivery/context"
	"buytrek/internal/domain/entity"
	domainerrors "buytrek/internal/domain/errors"
	"buytrek/internal/domain/repository"
	"buytrek/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// addressService implements the AddressUsecase interface.
type addressService struct {
	addressRepo repository.AddressRepository
	logger      *slog.Logger
}

// AddressServiceParams holds dependencies for AddressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	AddressRepo repository.AddressRepository
	Logger      *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	return &addressService{
		addressRepo: params.AddressRepo,
		logger:      params.Logger,
	}
}

func (srv *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateAddress adds an address; the user's first address becomes the default.
func (srv *addressService) CreateAddress(ctx context.Context, principal entity.Principal, input *usecase.CreateAddressInput) (*entity.Address, error) {
	existing, err := srv.addressRepo.FindByUser(ctx, principal.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	address := &entity.Address{
		UserID:    principal.UserID,
		Address:   input.Address,
		IsDefault: len(existing) == 0,
	}
	if err := srv.addressRepo.Create(ctx, address); err != nil {
		return nil, errors.Wrap(err, "failed to create address")
	}
	srv.log(ctx).Debug("Address created", slog.Any("userID", principal.UserID), slog.Any("addressID", address.ID), slog.Bool("default", address.IsDefault))

	return address, nil
}

// ListAddresses returns all of the caller's addresses.
func (srv *addressService) ListAddresses(ctx context.Context, principal entity.Principal) ([]*entity.Address, error) {
	addresses, err := srv.addressRepo.FindByUser(ctx, principal.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	return addresses, nil
}

// UpdateAddress rewrites one of the caller's addresses.
func (srv *addressService) UpdateAddress(ctx context.Context, principal entity.Principal, input *usecase.UpdateAddressInput) (*entity.Address, error) {
	address, err := srv.loadOwnedAddress(ctx, principal, input.AddressID)
	if err != nil {
		return nil, err
	}

	address.Address = input.Address
	if err := srv.addressRepo.Update(ctx, address); err != nil {
		return nil, errors.Wrap(err, "failed to update address")
	}

	return address, nil
}

// SetDefaultAddress promotes an address to default, demoting the previous one.
func (srv *addressService) SetDefaultAddress(ctx context.Context, principal entity.Principal, addressID uuid.UUID) error {
	address, err := srv.loadOwnedAddress(ctx, principal, addressID)
	if err != nil {
		return err
	}

	if address.IsDefault {
		return nil
	}

	if err := srv.addressRepo.ClearDefault(ctx, principal.UserID); err != nil {
		return errors.Wrap(err, "failed to clear previous default address")
	}

	address.IsDefault = true
	if err := srv.addressRepo.Update(ctx, address); err != nil {
		return errors.Wrap(err, "failed to promote default address")
	}
	srv.log(ctx).Debug("Default address changed", slog.Any("userID", principal.UserID), slog.Any("addressID", addressID))

	return nil
}

// DeleteAddress removes one of the caller's addresses.
func (srv *addressService) DeleteAddress(ctx context.Context, principal entity.Principal, addressID uuid.UUID) error {
	if _, err := srv.loadOwnedAddress(ctx, principal, addressID); err != nil {
		return err
	}

	if err := srv.addressRepo.Delete(ctx, addressID); err != nil {
		return errors.Wrap(err, "failed to delete address")
	}

	return nil
}

// loadOwnedAddress fetches an address and verifies the caller owns it.
// Foreign addresses surface as not-found rather than forbidden to avoid
// leaking their existence.
func (srv *addressService) loadOwnedAddress(ctx context.Context, principal entity.Principal, addressID uuid.UUID) (*entity.Address, error) {
	address, err := srv.addressRepo.FindByID(ctx, addressID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAddressNotFound, "address lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load address")
	}

	if address.UserID != principal.UserID {
		srv.log(ctx).Warn("Address access denied", slog.Any("userID", principal.UserID), slog.Any("addressID", addressID))

		return nil, errors.Wrap(domainerrors.ErrAddressNotFound, "address lookup failed")
	}

	return address, nil
}
