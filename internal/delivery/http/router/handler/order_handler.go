package handler

import (
	"context"
	"net/http"

	"buytrek/internal/delivery/http/response"
	"buytrek/internal/domain/entity"
	"buytrek/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order and fulfillment handlers.
type OrderHandler struct {
	uc usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// InitiateOrder turns the caller's cart into an order and opens a payment
// session, returning the hosted payment page.
func (h *OrderHandler) InitiateOrder(c echo.Context) error {
	principal, ok := currentPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	output, err := h.uc.InitiateOrder(c.Request().Context(), principal)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Order created, complete your payment")
}

// CancelOrder cancels an order still awaiting or just past payment.
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	return h.transition(c, h.uc.CancelOrder, "Order cancelled")
}

// UpdateToPackaging moves a paid order into packaging.
func (h *OrderHandler) UpdateToPackaging(c echo.Context) error {
	return h.transition(c, h.uc.UpdateToPackaging, "Order updated to packaging")
}

// UpdateToPackaged marks an order packaged.
func (h *OrderHandler) UpdateToPackaged(c echo.Context) error {
	return h.transition(c, h.uc.UpdateToPackaged, "Order updated to packaged")
}

// UpdateToOutForDelivery marks an order out for delivery.
func (h *OrderHandler) UpdateToOutForDelivery(c echo.Context) error {
	return h.transition(c, h.uc.UpdateToOutForDelivery, "Order updated to out for delivery")
}

// UpdateToDelivered marks an order delivered.
func (h *OrderHandler) UpdateToDelivered(c echo.Context) error {
	return h.transition(c, h.uc.UpdateToDelivered, "Order updated to delivered")
}

// transition runs one of the state-machine operations against the order in
// the path.
func (h *OrderHandler) transition(c echo.Context, op func(ctx context.Context, principal entity.Principal, orderID uuid.UUID) error, message string) error {
	principal, ok := currentPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	if err := op(c.Request().Context(), principal, orderID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, message)
}

// GetOrder returns the full order view with the next legal action.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	principal, ok := currentPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	detail, err := h.uc.GetOrder(c.Request().Context(), principal, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, detail, "")
}

// GetUserOrders lists the calling buyer's orders.
func (h *OrderHandler) GetUserOrders(c echo.Context) error {
	return h.listing(c, h.uc.GetUserOrders)
}

// GetOrders lists orders in fulfillment for staff processing.
func (h *OrderHandler) GetOrders(c echo.Context) error {
	return h.listing(c, h.uc.GetOrders)
}

// GetNewOrders lists freshly paid orders awaiting packaging.
func (h *OrderHandler) GetNewOrders(c echo.Context) error {
	return h.listing(c, h.uc.GetNewOrders)
}

func (h *OrderHandler) listing(c echo.Context, op func(ctx context.Context, principal entity.Principal, page *usecase.PageInput) (*usecase.OrderPage, error)) error {
	principal, ok := currentPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var page usecase.PageInput
	if err := c.Bind(&page); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid paging parameters")
	}

	orders, err := op(c.Request().Context(), principal, &page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// GetSellerTransactions lists payments touching a seller's products.
func (h *OrderHandler) GetSellerTransactions(c echo.Context) error {
	principal, ok := currentPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var input usecase.SellerTransactionsInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing parameters")
	}

	page, err := h.uc.GetSellerTransactions(c.Request().Context(), principal, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "")
}
