package impl

import (
	"context"
	"encoding/json"
	"log/slog"

	"buytrek/config"
	deliverycontext "buytrek/internal/delivery/context"
	"buytrek/internal/domain/entity"
	domainerrors "buytrek/internal/domain/errors"
	"buytrek/internal/domain/repository"
	"buytrek/internal/domain/service"
	"buytrek/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Gateway events that confirm a settled payment. All other events are
// acknowledged and ignored.
const (
	eventChargeSuccess   = "charge.success"
	eventTransferSuccess = "transfer.success"
)

// webhookEvent is the slice of the gateway callback payload reconciliation
// needs.
type webhookEvent struct {
	Event string `json:"event"`
	Data  struct {
		Reference string `json:"reference"`
		Amount    int64  `json:"amount"`
	} `json:"data"`
}

// webhookService implements the WebhookUsecase interface. It is the only
// writer of the Pending -> Completed transition; both the transaction and the
// order move under conditional updates inside one DB transaction, so a
// replayed callback finds nothing left to do.
type webhookService struct {
	txManager  repository.TransactionManager
	txnRepo    repository.TransactionRepository
	orderRepo  repository.OrderRepository
	userRepo   repository.UserRepository
	gateway    service.PaymentGateway
	notifier   service.Notifier
	allowedIPs map[string]struct{}
	logger     *slog.Logger
}

// WebhookServiceParams holds dependencies for WebhookService, injected by Fx.
type WebhookServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	TxnRepo   repository.TransactionRepository
	OrderRepo repository.OrderRepository
	UserRepo  repository.UserRepository
	Gateway   service.PaymentGateway
	Notifier  service.Notifier
	Config    *config.Config
	Logger    *slog.Logger
}

// NewWebhookService is the constructor for webhookService.
func NewWebhookService(params WebhookServiceParams) usecase.WebhookUsecase {
	srv := &webhookService{
		txManager: params.TxManager,
		txnRepo:   params.TxnRepo,
		orderRepo: params.OrderRepo,
		userRepo:  params.UserRepo,
		gateway:   params.Gateway,
		notifier:  params.Notifier,
		logger:    params.Logger,
	}

	if params.Config != nil && params.Config.Paystack != nil {
		srv.allowedIPs = make(map[string]struct{}, len(params.Config.Paystack.AllowedIPs))
		for _, ip := range params.Config.Paystack.AllowedIPs {
			srv.allowedIPs[ip] = struct{}{}
		}
	}

	return srv
}

func (srv *webhookService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// HandleWebhook validates the callback's source IP and HMAC signature,
// matches it to a pending transaction by reference and completes the order
// payment exactly once.
func (srv *webhookService) HandleWebhook(ctx context.Context, signature string, sourceIP string, body []byte) error {
	if len(srv.allowedIPs) > 0 {
		if _, ok := srv.allowedIPs[sourceIP]; !ok {
			srv.log(ctx).Warn("Webhook from unlisted source", slog.String("sourceIP", sourceIP))

			return errors.Wrap(domainerrors.ErrWebhookSourceForbidden, "webhook rejected")
		}
	}

	if !srv.gateway.VerifyWebhookSignature(body, signature) {
		srv.log(ctx).Warn("Webhook signature mismatch", slog.String("sourceIP", sourceIP))

		return errors.Wrap(domainerrors.ErrWebhookSignature, "webhook rejected")
	}

	var event webhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "malformed webhook payload")
	}

	if event.Event != eventChargeSuccess && event.Event != eventTransferSuccess {
		srv.log(ctx).Debug("Ignoring webhook event", slog.String("event", event.Event))

		return nil
	}

	transaction, err := srv.txnRepo.FindByRef(ctx, event.Data.Reference)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			srv.log(ctx).Warn("Webhook for unknown reference", slog.String("reference", event.Data.Reference))

			return errors.Wrap(domainerrors.ErrTransactionNotFound, "webhook reconciliation failed")
		}

		return errors.Wrap(err, "failed to load transaction by reference")
	}

	if event.Data.Amount != transaction.Amount {
		srv.log(ctx).Warn("Webhook amount mismatch",
			slog.String("reference", event.Data.Reference),
			slog.Int64("expected", transaction.Amount),
			slog.Int64("got", event.Data.Amount))

		return errors.Wrap(domainerrors.ErrAmountMismatch, "webhook reconciliation failed")
	}

	completed, order, err := srv.completePayment(ctx, transaction)
	if err != nil {
		return err
	}
	if !completed {
		// Already reconciled; the replay succeeds without side effects.
		srv.log(ctx).Info("Webhook replay ignored", slog.String("reference", transaction.Ref))

		return nil
	}

	srv.notifyPaymentCompleted(ctx, order)
	srv.log(ctx).Info("Payment reconciled", slog.String("reference", transaction.Ref), slog.Any("orderID", order.ID))

	return nil
}

// completePayment flips the transaction and its order in one DB transaction.
// The transaction row is the idempotency anchor: when it is no longer
// Pending, nothing else runs.
func (srv *webhookService) completePayment(ctx context.Context, transaction *entity.Transaction) (bool, *entity.Order, error) {
	var completed bool
	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		txnRepo := repoFactory.NewTransactionRepository()
		orderRepo := repoFactory.NewOrderRepository()

		updated, err := txnRepo.CompleteIfPending(ctx, transaction.ID)
		if err != nil {
			return errors.Wrap(err, "failed to complete transaction")
		}
		if !updated {
			return nil
		}
		completed = true

		link, err := orderRepo.FindLinkByTransaction(ctx, transaction.ID)
		if err != nil {
			return errors.Wrap(err, "failed to resolve order for transaction")
		}

		if _, err := orderRepo.UpdateStatusIfCurrent(ctx, link.OrderID, entity.StatusPendingPayment, entity.StatusPaymentCompleted); err != nil {
			return errors.Wrap(err, "failed to update order status")
		}

		order, err = orderRepo.FindByID(ctx, link.OrderID)
		if err != nil {
			return errors.Wrap(err, "failed to load order after payment")
		}

		return nil
	})
	if err != nil {
		return false, nil, errors.Wrap(err, "failed to execute payment reconciliation transaction")
	}

	return completed, order, nil
}

// notifyPaymentCompleted fans out to the buyer and to the operations roles
// that process new orders. Runs after commit; failures only log.
func (srv *webhookService) notifyPaymentCompleted(ctx context.Context, order *entity.Order) {
	buyer, err := srv.userRepo.FindByID(ctx, order.UserID)
	if err != nil {
		srv.log(ctx).Warn("Failed to load buyer for payment notification", slog.Any("orderID", order.ID), slog.Any("error", err))
	} else {
		dispatch(ctx, srv.log(ctx), srv.notifier, service.EventOrderPaymentCompleted, []string{buyer.Email}, map[string]any{
			"name":    buyer.FirstNameOrEmail(),
			"orderNo": order.OrderNo,
			"amount":  entity.FormatMinorUnits(order.TotalAmount),
		})
	}

	operators, err := srv.userRepo.FindByRoles(ctx, entity.RoleStaff, entity.RoleAdmin)
	if err != nil {
		srv.log(ctx).Warn("Failed to load operators for payment notification", slog.Any("orderID", order.ID), slog.Any("error", err))

		return
	}

	recipients := make([]string, 0, len(operators))
	for _, operator := range operators {
		recipients = append(recipients, operator.Email)
	}
	dispatch(ctx, srv.log(ctx), srv.notifier, service.EventOrderAdminNewOrder, recipients, map[string]any{
		"orderNo":     order.OrderNo,
		"amount":      entity.FormatMinorUnits(order.TotalAmount),
		"description": order.Description,
	})
}
