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

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct adds a product owned by the calling seller.
func (srv *productService) CreateProduct(ctx context.Context, principal entity.Principal, input *usecase.CreateProductInput) (*entity.Product, error) {
	if !principal.Role.In(entity.RoleSeller, entity.RoleAdmin) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "product creation requires a seller account")
	}

	product := &entity.Product{
		Name:        input.Name,
		Amount:      input.Amount,
		Description: input.Description,
		Category:    input.Category,
		Available:   input.Available,
		SellerID:    principal.UserID,
	}
	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}
	srv.log(ctx).Info("Product created", slog.Any("productID", product.ID), slog.Any("sellerID", principal.UserID))

	return product, nil
}

// UpdateProduct modifies a product owned by the calling seller. Admins may
// modify any product.
func (srv *productService) UpdateProduct(ctx context.Context, principal entity.Principal, input *usecase.UpdateProductInput) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product update failed")
		}

		return nil, errors.Wrap(err, "failed to load product")
	}

	if product.SellerID != principal.UserID && principal.Role != entity.RoleAdmin {
		srv.log(ctx).Warn("Product update denied", slog.Any("productID", product.ID), slog.Any("userID", principal.UserID))

		return nil, errors.Wrap(domainerrors.ErrForbidden, "product update failed")
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Amount != nil {
		product.Amount = *input.Amount
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Available != nil {
		product.Available = *input.Available
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// GetProduct returns a single product.
func (srv *productService) GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load product")
	}

	return product, nil
}

// ListProducts returns one page of available products.
func (srv *productService) ListProducts(ctx context.Context, input *usecase.ListProductsInput) (*usecase.ProductPage, error) {
	skip, take := paginate(input.Page, input.Size)

	products, total, err := srv.productRepo.FindPage(ctx, repository.ProductQuery{
		Category:      input.Category,
		AvailableOnly: true,
		Skip:          skip,
		Take:          take,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return &usecase.ProductPage{
		Products:    products,
		CurrentPage: input.Page,
		TotalPages:  totalPages(total, take),
		Total:       total,
	}, nil
}
