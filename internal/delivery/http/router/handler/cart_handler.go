package handler

import (
	"net/http"

	"buytrek/internal/delivery/http/response"
	"buytrek/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for cart handlers.
type CartHandler struct {
	uc usecase.CartUsecase
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

// AddToCart puts an available product into the caller's cart.
func (h *CartHandler) AddToCart(c echo.Context) error {
	principal, ok := currentPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	productID, err := pathUUID(c, "productId")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	if err := h.uc.AddToCart(c.Request().Context(), principal, productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Product added to cart")
}

// IncreaseQuantity bumps a cart line's quantity by one.
func (h *CartHandler) IncreaseQuantity(c echo.Context) error {
	principal, ok := currentPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	productID, err := pathUUID(c, "productId")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	if err := h.uc.IncreaseQuantity(c.Request().Context(), principal, productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Quantity increased")
}

// DecreaseQuantity lowers a cart line's quantity by one, never below one.
func (h *CartHandler) DecreaseQuantity(c echo.Context) error {
	principal, ok := currentPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	productID, err := pathUUID(c, "productId")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	if err := h.uc.DecreaseQuantity(c.Request().Context(), principal, productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Quantity decreased")
}

// RemoveFromCart deletes a product's cart line.
func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	principal, ok := currentPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	productID, err := pathUUID(c, "productId")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	if err := h.uc.RemoveFromCart(c.Request().Context(), principal, productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product removed from cart")
}

// GetCart returns the caller's cart restricted to available products.
func (h *CartHandler) GetCart(c echo.Context) error {
	principal, ok := currentPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	cart, err := h.uc.GetCart(c.Request().Context(), principal)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "")
}
