package handler

import (
	"io"
	"net/http"

	"buytrek/internal/delivery/http/response"
	"buytrek/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// paystackSignatureHeader carries the HMAC-SHA512 hex digest of the raw body.
const paystackSignatureHeader = "x-paystack-signature"

// WebhookHandler receives payment-gateway callbacks.
type WebhookHandler struct {
	uc usecase.WebhookUsecase
}

// NewWebhookHandler is the constructor for WebhookHandler, injected by Fx.
func NewWebhookHandler(uc usecase.WebhookUsecase) *WebhookHandler {
	return &WebhookHandler{uc: uc}
}

// HandlePaystack verifies and reconciles a gateway callback. The signature
// covers the raw request bytes, so the body must reach the use case unparsed.
func (h *WebhookHandler) HandlePaystack(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Unreadable webhook body")
	}

	signature := c.Request().Header.Get(paystackSignatureHeader)

	if err := h.uc.HandleWebhook(c.Request().Context(), signature, c.RealIP(), body); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "")
}
