package impl

import (
	"context"
	"testing"

	"buytrek/internal/domain/entity"
	domainerrors "buytrek/internal/domain/errors"
	"buytrek/internal/domain/repository"
	mockRepo "buytrek/internal/mocks/repository"
	"buytrek/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAddressServiceFixture(t *testing.T) (*addressService, *mockRepo.MockAddressRepository) {
	addressRepo := mockRepo.NewMockAddressRepository(t)
	service := NewAddressService(AddressServiceParams{
		AddressRepo: addressRepo,
		Logger:      newDiscardLogger(),
	})

	return service.(*addressService), addressRepo
}

func TestAddressService_CreateAddress_FirstBecomesDefault(t *testing.T) {
	service, addressRepo := newAddressServiceFixture(t)
	ctx := context.Background()
	principal := buyerPrincipal()

	addressRepo.EXPECT().FindByUser(ctx, principal.UserID).Return([]*entity.Address{}, nil)
	addressRepo.EXPECT().Create(ctx, &entity.Address{
		UserID:    principal.UserID,
		Address:   "12 Marina Road, Lagos",
		IsDefault: true,
	}).Return(nil)

	address, err := service.CreateAddress(ctx, principal, &usecase.CreateAddressInput{Address: "12 Marina Road, Lagos"})

	require.NoError(t, err)
	assert.True(t, address.IsDefault)
}

func TestAddressService_CreateAddress_SecondIsNotDefault(t *testing.T) {
	service, addressRepo := newAddressServiceFixture(t)
	ctx := context.Background()
	principal := buyerPrincipal()

	addressRepo.EXPECT().FindByUser(ctx, principal.UserID).Return([]*entity.Address{
		{ID: uuid.New(), UserID: principal.UserID, IsDefault: true},
	}, nil)
	addressRepo.EXPECT().Create(ctx, &entity.Address{
		UserID:  principal.UserID,
		Address: "4 Broad Street, Lagos",
	}).Return(nil)

	address, err := service.CreateAddress(ctx, principal, &usecase.CreateAddressInput{Address: "4 Broad Street, Lagos"})

	require.NoError(t, err)
	assert.False(t, address.IsDefault)
}

func TestAddressService_UpdateAddress_ForeignAddressHidden(t *testing.T) {
	service, addressRepo := newAddressServiceFixture(t)
	ctx := context.Background()
	principal := buyerPrincipal()
	addressID := uuid.New()

	addressRepo.EXPECT().FindByID(ctx, addressID).
		Return(&entity.Address{ID: addressID, UserID: uuid.New()}, nil)

	_, err := service.UpdateAddress(ctx, principal, &usecase.UpdateAddressInput{AddressID: addressID, Address: "new"})

	assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
}

func TestAddressService_SetDefaultAddress_Success(t *testing.T) {
	service, addressRepo := newAddressServiceFixture(t)
	ctx := context.Background()
	principal := buyerPrincipal()
	addressID := uuid.New()
	address := &entity.Address{ID: addressID, UserID: principal.UserID, Address: "4 Broad Street, Lagos"}

	addressRepo.EXPECT().FindByID(ctx, addressID).Return(address, nil)
	addressRepo.EXPECT().ClearDefault(ctx, principal.UserID).Return(nil)
	addressRepo.EXPECT().Update(ctx, address).Return(nil)

	err := service.SetDefaultAddress(ctx, principal, addressID)

	require.NoError(t, err)
	assert.True(t, address.IsDefault)
}

func TestAddressService_SetDefaultAddress_AlreadyDefault(t *testing.T) {
	service, addressRepo := newAddressServiceFixture(t)
	ctx := context.Background()
	principal := buyerPrincipal()
	addressID := uuid.New()

	addressRepo.EXPECT().FindByID(ctx, addressID).
		Return(&entity.Address{ID: addressID, UserID: principal.UserID, IsDefault: true}, nil)

	err := service.SetDefaultAddress(ctx, principal, addressID)

	require.NoError(t, err)
}

func TestAddressService_DeleteAddress_Success(t *testing.T) {
	service, addressRepo := newAddressServiceFixture(t)
	ctx := context.Background()
	principal := buyerPrincipal()
	addressID := uuid.New()

	addressRepo.EXPECT().FindByID(ctx, addressID).
		Return(&entity.Address{ID: addressID, UserID: principal.UserID}, nil)
	addressRepo.EXPECT().Delete(ctx, addressID).Return(nil)

	err := service.DeleteAddress(ctx, principal, addressID)

	require.NoError(t, err)
}

func TestAddressService_DeleteAddress_NotFound(t *testing.T) {
	service, addressRepo := newAddressServiceFixture(t)
	ctx := context.Background()
	principal := buyerPrincipal()
	addressID := uuid.New()

	addressRepo.EXPECT().FindByID(ctx, addressID).Return(nil, repository.ErrAddressNotFound)

	err := service.DeleteAddress(ctx, principal, addressID)

	assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
}
