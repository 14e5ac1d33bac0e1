package impl

import (
	"context"
	"testing"

	"buytrek/internal/domain/entity"
	domainerrors "buytrek/internal/domain/errors"
	"buytrek/internal/domain/repository"
	mockRepo "buytrek/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cartServiceFixture struct {
	service  *cartService
	cartRepo *mockRepo.MockCartRepository
	prodRepo *mockRepo.MockProductRepository
}

func newCartServiceFixture(t *testing.T) *cartServiceFixture {
	cartRepo := mockRepo.NewMockCartRepository(t)
	prodRepo := mockRepo.NewMockProductRepository(t)

	service := NewCartService(CartServiceParams{
		CartRepo:    cartRepo,
		ProductRepo: prodRepo,
		Logger:      newDiscardLogger(),
	})

	return &cartServiceFixture{
		service:  service.(*cartService),
		cartRepo: cartRepo,
		prodRepo: prodRepo,
	}
}

func buyerPrincipal() entity.Principal {
	return entity.Principal{UserID: uuid.New(), Role: entity.RoleBuyer}
}

func TestCartService_AddToCart_Success(t *testing.T) {
	f := newCartServiceFixture(t)
	ctx := context.Background()
	principal := buyerPrincipal()
	productID := uuid.New()

	f.prodRepo.EXPECT().FindAvailableByID(ctx, productID).
		Return(&entity.Product{ID: productID, Name: "productA", Amount: 1000, Available: true}, nil)
	f.cartRepo.EXPECT().Create(ctx, &entity.CartLine{
		UserID:    principal.UserID,
		ProductID: productID,
		Quantity:  1,
	}).Return(nil)

	err := f.service.AddToCart(ctx, principal, productID)

	require.NoError(t, err)
}

func TestCartService_AddToCart_NotBuyer(t *testing.T) {
	f := newCartServiceFixture(t)

	err := f.service.AddToCart(context.Background(), entity.Principal{UserID: uuid.New(), Role: entity.RoleSeller}, uuid.New())

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestCartService_AddToCart_ProductUnavailable(t *testing.T) {
	f := newCartServiceFixture(t)
	ctx := context.Background()
	productID := uuid.New()

	f.prodRepo.EXPECT().FindAvailableByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	err := f.service.AddToCart(ctx, buyerPrincipal(), productID)

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCartService_AddToCart_AlreadyInCart(t *testing.T) {
	f := newCartServiceFixture(t)
	ctx := context.Background()
	principal := buyerPrincipal()
	productID := uuid.New()

	f.prodRepo.EXPECT().FindAvailableByID(ctx, productID).
		Return(&entity.Product{ID: productID, Available: true}, nil)
	f.cartRepo.EXPECT().Create(ctx, &entity.CartLine{
		UserID:    principal.UserID,
		ProductID: productID,
		Quantity:  1,
	}).Return(repository.ErrDuplicateCartLine)

	err := f.service.AddToCart(ctx, principal, productID)

	assert.ErrorIs(t, err, domainerrors.ErrProductInCart)
}

func TestCartService_IncreaseQuantity_Success(t *testing.T) {
	f := newCartServiceFixture(t)
	ctx := context.Background()
	principal := buyerPrincipal()
	productID := uuid.New()
	lineID := uuid.New()

	f.cartRepo.EXPECT().FindLine(ctx, principal.UserID, productID).
		Return(&entity.CartLine{ID: lineID, UserID: principal.UserID, ProductID: productID, Quantity: 2}, nil)
	f.cartRepo.EXPECT().UpdateQuantity(ctx, lineID, 3).Return(nil)

	err := f.service.IncreaseQuantity(ctx, principal, productID)

	require.NoError(t, err)
}

func TestCartService_DecreaseQuantity_Success(t *testing.T) {
	f := newCartServiceFixture(t)
	ctx := context.Background()
	principal := buyerPrincipal()
	productID := uuid.New()
	lineID := uuid.New()

	f.cartRepo.EXPECT().FindLine(ctx, principal.UserID, productID).
		Return(&entity.CartLine{ID: lineID, UserID: principal.UserID, ProductID: productID, Quantity: 3}, nil)
	f.cartRepo.EXPECT().UpdateQuantity(ctx, lineID, 2).Return(nil)

	err := f.service.DecreaseQuantity(ctx, principal, productID)

	require.NoError(t, err)
}

func TestCartService_DecreaseQuantity_FloorAtOne(t *testing.T) {
	f := newCartServiceFixture(t)
	ctx := context.Background()
	principal := buyerPrincipal()
	productID := uuid.New()

	f.cartRepo.EXPECT().FindLine(ctx, principal.UserID, productID).
		Return(&entity.CartLine{ID: uuid.New(), UserID: principal.UserID, ProductID: productID, Quantity: 1}, nil)

	err := f.service.DecreaseQuantity(ctx, principal, productID)

	assert.ErrorIs(t, err, domainerrors.ErrCartMinimumQuantity)
}

func TestCartService_RemoveFromCart_NotInCart(t *testing.T) {
	f := newCartServiceFixture(t)
	ctx := context.Background()
	principal := buyerPrincipal()
	productID := uuid.New()

	f.cartRepo.EXPECT().FindLine(ctx, principal.UserID, productID).Return(nil, repository.ErrCartLineNotFound)

	err := f.service.RemoveFromCart(ctx, principal, productID)

	assert.ErrorIs(t, err, domainerrors.ErrProductNotInCart)
}

func TestCartService_RemoveFromCart_Success(t *testing.T) {
	f := newCartServiceFixture(t)
	ctx := context.Background()
	principal := buyerPrincipal()
	productID := uuid.New()
	lineID := uuid.New()

	f.cartRepo.EXPECT().FindLine(ctx, principal.UserID, productID).
		Return(&entity.CartLine{ID: lineID, UserID: principal.UserID, ProductID: productID, Quantity: 1}, nil)
	f.cartRepo.EXPECT().Delete(ctx, lineID).Return(nil)

	err := f.service.RemoveFromCart(ctx, principal, productID)

	require.NoError(t, err)
}

func TestCartService_GetCart_Totals(t *testing.T) {
	f := newCartServiceFixture(t)
	ctx := context.Background()
	principal := buyerPrincipal()

	productA := &entity.Product{ID: uuid.New(), Name: "productA", Amount: 1000, Available: true}
	productB := &entity.Product{ID: uuid.New(), Name: "productB", Amount: 500, Available: true}
	f.cartRepo.EXPECT().FindAvailableLines(ctx, principal.UserID).Return([]*entity.CartLine{
		{ID: uuid.New(), ProductID: productA.ID, Quantity: 2, Product: productA},
		{ID: uuid.New(), ProductID: productB.ID, Quantity: 1, Product: productB},
	}, nil)

	view, err := f.service.GetCart(ctx, principal)

	require.NoError(t, err)
	require.Len(t, view.Lines, 2)
	assert.Equal(t, int64(2500), view.TotalAmount)
	assert.Equal(t, "productA", view.Lines[0].Product)
	assert.Equal(t, int64(2000), view.Lines[0].Subtotal)
	assert.Equal(t, int64(500), view.Lines[1].Subtotal)
}

func TestCartService_GetCart_Empty(t *testing.T) {
	f := newCartServiceFixture(t)
	ctx := context.Background()
	principal := buyerPrincipal()

	f.cartRepo.EXPECT().FindAvailableLines(ctx, principal.UserID).Return([]*entity.CartLine{}, nil)

	view, err := f.service.GetCart(ctx, principal)

	require.NoError(t, err)
	assert.Empty(t, view.Lines)
	assert.Zero(t, view.TotalAmount)
}
