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

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// requireBuyer gates cart operations to buyer accounts.
func requireBuyer(principal entity.Principal) error {
	if principal.Role != entity.RoleBuyer {
		return errors.Wrap(domainerrors.ErrForbidden, "cart operations require a buyer account")
	}

	return nil
}

// AddToCart creates a quantity-1 line for an available product. Adding a
// product already in the cart is a conflict; the unique (user, product)
// constraint resolves concurrent adds the same way.
func (srv *cartService) AddToCart(ctx context.Context, principal entity.Principal, productID uuid.UUID) error {
	if err := requireBuyer(principal); err != nil {
		return err
	}

	if _, err := srv.productRepo.FindAvailableByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.Wrap(domainerrors.ErrProductNotFound, "add to cart failed")
		}

		return errors.Wrap(err, "failed to load product for cart")
	}

	line := &entity.CartLine{
		UserID:    principal.UserID,
		ProductID: productID,
		Quantity:  1,
	}
	if err := srv.cartRepo.Create(ctx, line); err != nil {
		if errors.Is(err, repository.ErrDuplicateCartLine) {
			return errors.Wrap(domainerrors.ErrProductInCart, "add to cart failed")
		}

		return errors.Wrap(err, "failed to create cart line")
	}
	srv.log(ctx).Debug("Product added to cart", slog.Any("userID", principal.UserID), slog.Any("productID", productID))

	return nil
}

// IncreaseQuantity bumps an existing line's quantity by one.
func (srv *cartService) IncreaseQuantity(ctx context.Context, principal entity.Principal, productID uuid.UUID) error {
	if err := requireBuyer(principal); err != nil {
		return err
	}

	line, err := srv.loadLine(ctx, principal.UserID, productID)
	if err != nil {
		return err
	}

	if err := srv.cartRepo.UpdateQuantity(ctx, line.ID, line.Quantity+1); err != nil {
		return errors.Wrap(err, "failed to increase cart quantity")
	}

	return nil
}

// DecreaseQuantity lowers an existing line's quantity by one, never below one.
func (srv *cartService) DecreaseQuantity(ctx context.Context, principal entity.Principal, productID uuid.UUID) error {
	if err := requireBuyer(principal); err != nil {
		return err
	}

	line, err := srv.loadLine(ctx, principal.UserID, productID)
	if err != nil {
		return err
	}

	if line.Quantity <= 1 {
		return errors.Wrap(domainerrors.ErrCartMinimumQuantity, "decrease cart quantity failed")
	}

	if err := srv.cartRepo.UpdateQuantity(ctx, line.ID, line.Quantity-1); err != nil {
		return errors.Wrap(err, "failed to decrease cart quantity")
	}

	return nil
}

// RemoveFromCart deletes the line for a product.
func (srv *cartService) RemoveFromCart(ctx context.Context, principal entity.Principal, productID uuid.UUID) error {
	if err := requireBuyer(principal); err != nil {
		return err
	}

	line, err := srv.loadLine(ctx, principal.UserID, productID)
	if err != nil {
		return err
	}

	if err := srv.cartRepo.Delete(ctx, line.ID); err != nil {
		return errors.Wrap(err, "failed to remove cart line")
	}
	srv.log(ctx).Debug("Product removed from cart", slog.Any("userID", principal.UserID), slog.Any("productID", productID))

	return nil
}

// GetCart returns the cart restricted to currently available products.
func (srv *cartService) GetCart(ctx context.Context, principal entity.Principal) (*usecase.CartView, error) {
	if err := requireBuyer(principal); err != nil {
		return nil, err
	}

	lines, err := srv.cartRepo.FindAvailableLines(ctx, principal.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart lines")
	}

	view := &usecase.CartView{Lines: make([]*usecase.CartLineView, 0, len(lines))}
	for _, line := range lines {
		subtotal := line.Subtotal()
		view.TotalAmount += subtotal
		view.Lines = append(view.Lines, &usecase.CartLineView{
			ProductID: line.ProductID,
			Product:   line.Product.Name,
			Amount:    line.Product.Amount,
			Quantity:  line.Quantity,
			Subtotal:  subtotal,
		})
	}

	return view, nil
}

func (srv *cartService) loadLine(ctx context.Context, userID, productID uuid.UUID) (*entity.CartLine, error) {
	line, err := srv.cartRepo.FindLine(ctx, userID, productID)
	if err != nil {
		if errors.Is(err, repository.ErrCartLineNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotInCart, "cart line lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load cart line")
	}

	return line, nil
}
