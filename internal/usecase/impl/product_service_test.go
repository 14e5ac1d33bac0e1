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

func newProductServiceFixture(t *testing.T) (*productService, *mockRepo.MockProductRepository) {
	productRepo := mockRepo.NewMockProductRepository(t)
	service := NewProductService(ProductServiceParams{
		ProductRepo: productRepo,
		Logger:      newDiscardLogger(),
	})

	return service.(*productService), productRepo
}

func TestProductService_CreateProduct_Success(t *testing.T) {
	service, productRepo := newProductServiceFixture(t)
	ctx := context.Background()
	principal := entity.Principal{UserID: uuid.New(), Role: entity.RoleSeller}

	productRepo.EXPECT().Create(ctx, &entity.Product{
		Name:      "productA",
		Amount:    1000,
		Category:  "outdoor",
		Available: true,
		SellerID:  principal.UserID,
	}).Return(nil)

	product, err := service.CreateProduct(ctx, principal, &usecase.CreateProductInput{
		Name:      "productA",
		Amount:    1000,
		Category:  "outdoor",
		Available: true,
	})

	require.NoError(t, err)
	assert.Equal(t, principal.UserID, product.SellerID)
}

func TestProductService_CreateProduct_BuyerDenied(t *testing.T) {
	service, _ := newProductServiceFixture(t)

	_, err := service.CreateProduct(context.Background(), buyerPrincipal(), &usecase.CreateProductInput{Name: "productA", Amount: 1000})

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestProductService_UpdateProduct_PartialFields(t *testing.T) {
	service, productRepo := newProductServiceFixture(t)
	ctx := context.Background()
	principal := entity.Principal{UserID: uuid.New(), Role: entity.RoleSeller}
	productID := uuid.New()
	existing := &entity.Product{
		ID:        productID,
		Name:      "productA",
		Amount:    1000,
		Available: true,
		SellerID:  principal.UserID,
	}

	productRepo.EXPECT().FindByID(ctx, productID).Return(existing, nil)
	productRepo.EXPECT().Update(ctx, existing).Return(nil)

	newAmount := int64(1500)
	available := false
	product, err := service.UpdateProduct(ctx, principal, &usecase.UpdateProductInput{
		ProductID: productID,
		Amount:    &newAmount,
		Available: &available,
	})

	require.NoError(t, err)
	assert.Equal(t, "productA", product.Name)
	assert.Equal(t, int64(1500), product.Amount)
	assert.False(t, product.Available)
}

func TestProductService_UpdateProduct_ForeignSellerDenied(t *testing.T) {
	service, productRepo := newProductServiceFixture(t)
	ctx := context.Background()
	productID := uuid.New()

	productRepo.EXPECT().FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, SellerID: uuid.New()}, nil)

	name := "renamed"
	_, err := service.UpdateProduct(ctx, entity.Principal{UserID: uuid.New(), Role: entity.RoleSeller}, &usecase.UpdateProductInput{
		ProductID: productID,
		Name:      &name,
	})

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestProductService_UpdateProduct_AdminMayEditAny(t *testing.T) {
	service, productRepo := newProductServiceFixture(t)
	ctx := context.Background()
	productID := uuid.New()
	existing := &entity.Product{ID: productID, Name: "productA", SellerID: uuid.New()}

	productRepo.EXPECT().FindByID(ctx, productID).Return(existing, nil)
	productRepo.EXPECT().Update(ctx, existing).Return(nil)

	name := "renamed"
	product, err := service.UpdateProduct(ctx, entity.Principal{UserID: uuid.New(), Role: entity.RoleAdmin}, &usecase.UpdateProductInput{
		ProductID: productID,
		Name:      &name,
	})

	require.NoError(t, err)
	assert.Equal(t, "renamed", product.Name)
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	service, productRepo := newProductServiceFixture(t)
	ctx := context.Background()
	productID := uuid.New()

	productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	_, err := service.GetProduct(ctx, productID)

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_ListProducts_AvailableOnly(t *testing.T) {
	service, productRepo := newProductServiceFixture(t)
	ctx := context.Background()

	productRepo.EXPECT().FindPage(ctx, repository.ProductQuery{
		Category:      "outdoor",
		AvailableOnly: true,
		Skip:          20,
		Take:          20,
	}).Return([]*entity.Product{
		{ID: uuid.New(), Name: "productA", Available: true},
	}, int64(41), nil)

	page, err := service.ListProducts(ctx, &usecase.ListProductsInput{Category: "outdoor", Page: 1, Size: 20})

	require.NoError(t, err)
	assert.Len(t, page.Products, 1)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, int64(41), page.Total)
}
