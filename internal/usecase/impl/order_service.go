package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"buytrek/config"
	deliverycontext "buytrek/internal/delivery/context"
	"buytrek/internal/domain/entity"
	domainerrors "buytrek/internal/domain/errors"
	"buytrek/internal/domain/repository"
	"buytrek/internal/domain/service"
	"buytrek/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultOrderNoPrefix  = "BuyTrek"
	defaultRefPrefix      = "TXN"
	defaultGatewayTimeout = 15 * time.Second

	// placementAttempts bounds retries when a generated order number or
	// transaction reference collides with an existing row.
	placementAttempts = 3
)

// orderService implements the OrderUsecase interface: placement against the
// payment gateway, cancellation, the fulfillment transitions and the
// read-only listings.
type orderService struct {
	txManager      repository.TransactionManager
	orderRepo      repository.OrderRepository
	addressRepo    repository.AddressRepository
	userRepo       repository.UserRepository
	txnRepo        repository.TransactionRepository
	snapshots      *cartSnapshotBuilder
	gateway        service.PaymentGateway
	notifier       service.Notifier
	baseURL        string
	orderNoPrefix  string
	refPrefix      string
	gatewayTimeout time.Duration
	logger         *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	OrderRepo   repository.OrderRepository
	CartRepo    repository.CartRepository
	AddressRepo repository.AddressRepository
	UserRepo    repository.UserRepository
	TxnRepo     repository.TransactionRepository
	Gateway     service.PaymentGateway
	Notifier    service.Notifier
	Config      *config.Config
	Logger      *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	srv := &orderService{
		txManager:      params.TxManager,
		orderRepo:      params.OrderRepo,
		addressRepo:    params.AddressRepo,
		userRepo:       params.UserRepo,
		txnRepo:        params.TxnRepo,
		snapshots:      newCartSnapshotBuilder(params.CartRepo),
		gateway:        params.Gateway,
		notifier:       params.Notifier,
		orderNoPrefix:  defaultOrderNoPrefix,
		refPrefix:      defaultRefPrefix,
		gatewayTimeout: defaultGatewayTimeout,
		logger:         params.Logger,
	}

	if params.Config != nil {
		srv.baseURL = params.Config.HTTP.BaseURL
		if params.Config.Order != nil {
			if params.Config.Order.OrderNoPrefix != "" {
				srv.orderNoPrefix = params.Config.Order.OrderNoPrefix
			}
			if params.Config.Order.RefPrefix != "" {
				srv.refPrefix = params.Config.Order.RefPrefix
			}
		}
		if params.Config.Paystack != nil && params.Config.Paystack.Timeout > 0 {
			srv.gatewayTimeout = params.Config.Paystack.Timeout
		}
	}

	return srv
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// placement carries the rows written for one order attempt, so a failed
// gateway call can compensate them away.
type placement struct {
	order       *entity.Order
	lines       []*entity.OrderLine
	address     *entity.OrderAddress
	transaction *entity.Transaction
	link        *entity.OrderTransaction
	cartLineIDs []uuid.UUID
}

// InitiateOrder reserves the caller's cart as an order and opens a payment
// session. The local rows are committed before the gateway call; if the
// gateway rejects or times out they are deleted again and the cart is left
// untouched. The cart is swept only after the gateway accepts.
func (srv *orderService) InitiateOrder(ctx context.Context, principal entity.Principal) (*usecase.InitiateOrderOutput, error) {
	if err := requireBuyer(principal); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Starting order placement", slog.Any("userID", principal.UserID))

	buyer, err := srv.userRepo.FindByID(ctx, principal.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load buyer")
	}

	snapshot, err := srv.snapshots.BuildSnapshot(ctx, principal.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build cart snapshot")
	}

	shipping, err := srv.addressRepo.FindDefaultByUser(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNoDefaultAddress, "order placement failed")
		}

		return nil, errors.Wrap(err, "failed to load default address")
	}

	placed, err := srv.persistPlacement(ctx, buyer, snapshot, shipping)
	if err != nil {
		return nil, err
	}

	// The gateway call runs outside any DB transaction and under its own
	// deadline, so a slow provider cannot hold locks open.
	gatewayCtx, cancel := context.WithTimeout(ctx, srv.gatewayTimeout)
	defer cancel()

	authorization, err := srv.gateway.Initialize(gatewayCtx, service.InitializePayment{
		Amount:      snapshot.TotalAmount,
		Email:       buyer.Email,
		Reference:   placed.transaction.Ref,
		CallbackURL: srv.baseURL + "/payment/callback",
		CancelURL:   srv.baseURL + "/payment/cancelled",
	})
	if err != nil {
		srv.log(ctx).Error("Payment initialization failed", slog.Any("orderID", placed.order.ID), slog.Any("error", err))
		srv.compensatePlacement(ctx, placed)

		return nil, errors.Wrap(domainerrors.ErrPaymentInitFailed, "order placement failed")
	}

	if err := srv.sweepCart(ctx, placed.cartLineIDs); err != nil {
		// The order and payment session are live; a stale cart is the lesser
		// failure and is logged rather than surfaced.
		srv.log(ctx).Error("Failed to sweep cart after placement", slog.Any("orderID", placed.order.ID), slog.Any("error", err))
	}

	dispatch(ctx, srv.log(ctx), srv.notifier, service.EventOrderCreated, []string{buyer.Email}, map[string]any{
		"name":        buyer.FirstNameOrEmail(),
		"orderNo":     placed.order.OrderNo,
		"amount":      entity.FormatMinorUnits(placed.order.TotalAmount),
		"description": placed.order.Description,
		"paymentUrl":  authorization.AuthorizationURL,
	})

	srv.log(ctx).Info("Order placed", slog.Any("orderID", placed.order.ID), slog.String("orderNo", placed.order.OrderNo))

	return &usecase.InitiateOrderOutput{
		PaymentURL: authorization.AuthorizationURL,
		OrderID:    placed.order.ID,
	}, nil
}

// persistPlacement writes the order, its lines, the address snapshot, the
// pending transaction and the order-transaction link in one DB transaction.
// A colliding order number or reference rolls the whole attempt back and a
// fresh pair is generated.
func (srv *orderService) persistPlacement(ctx context.Context, buyer *entity.User, snapshot *CartSnapshot, shipping *entity.Address) (*placement, error) {
	var lastErr error
	for attempt := 0; attempt < placementAttempts; attempt++ {
		placed, err := srv.buildPlacement(buyer, snapshot, shipping)
		if err != nil {
			return nil, err
		}

		err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			orderRepo := repoFactory.NewOrderRepository()
			txnRepo := repoFactory.NewTransactionRepository()

			if err := orderRepo.Create(ctx, placed.order); err != nil {
				return errors.Wrap(err, "failed to create order")
			}
			for _, line := range placed.lines {
				line.OrderID = placed.order.ID
			}
			placed.address.OrderID = placed.order.ID
			if err := orderRepo.CreateLines(ctx, placed.lines); err != nil {
				return errors.Wrap(err, "failed to create order lines")
			}
			if err := orderRepo.CreateAddress(ctx, placed.address); err != nil {
				return errors.Wrap(err, "failed to create order address")
			}
			if err := txnRepo.Create(ctx, placed.transaction); err != nil {
				return errors.Wrap(err, "failed to create transaction")
			}
			placed.link.OrderID = placed.order.ID
			placed.link.TransactionID = placed.transaction.ID
			if err := orderRepo.CreateLink(ctx, placed.link); err != nil {
				return errors.Wrap(err, "failed to create order transaction link")
			}

			return nil
		})
		if err == nil {
			return placed, nil
		}
		lastErr = err

		if errors.Is(err, repository.ErrDuplicateReference) {
			srv.log(ctx).Warn("Transaction reference collision, regenerating", slog.Int("attempt", attempt+1))

			continue
		}

		return nil, errors.Wrap(err, "failed to execute order placement transaction")
	}

	return nil, errors.Wrap(lastErr, "failed to place order after reference retries")
}

// buildPlacement assembles the entities for one placement attempt.
func (srv *orderService) buildPlacement(buyer *entity.User, snapshot *CartSnapshot, shipping *entity.Address) (*placement, error) {
	suffix, err := randomToken(9)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate order number")
	}
	refSuffix, err := randomToken(9)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate transaction reference")
	}

	order := &entity.Order{
		OrderNo:     fmt.Sprintf("%s-%s", srv.orderNoPrefix, suffix),
		UserID:      buyer.ID,
		TotalAmount: snapshot.TotalAmount,
		Description: snapshot.Description,
		Status:      entity.StatusPendingPayment,
	}

	lines := make([]*entity.OrderLine, 0, len(snapshot.Lines))
	cartLineIDs := make([]uuid.UUID, 0, len(snapshot.Lines))
	for _, line := range snapshot.Lines {
		lines = append(lines, &entity.OrderLine{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Amount:    line.Amount,
		})
		cartLineIDs = append(cartLineIDs, line.LineID)
	}

	return &placement{
		order: order,
		lines: lines,
		address: &entity.OrderAddress{
			AddressID: shipping.ID,
			Address:   shipping.Address,
		},
		transaction: &entity.Transaction{
			Ref:    fmt.Sprintf("%s-%s-%d", srv.refPrefix, refSuffix, time.Now().UnixMilli()),
			Amount: snapshot.TotalAmount,
			Status: entity.TransactionPending,
			UserID: buyer.ID,
		},
		link:        &entity.OrderTransaction{},
		cartLineIDs: cartLineIDs,
	}, nil
}

// compensatePlacement deletes every row a failed placement attempt wrote,
// children before parents. Compensation failures are logged; the placement
// error already on its way to the caller takes precedence.
func (srv *orderService) compensatePlacement(ctx context.Context, placed *placement) {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()
		txnRepo := repoFactory.NewTransactionRepository()

		if err := orderRepo.DeleteLink(ctx, placed.order.ID); err != nil {
			return errors.Wrap(err, "failed to delete order transaction link")
		}
		if err := txnRepo.Delete(ctx, placed.transaction.ID); err != nil {
			return errors.Wrap(err, "failed to delete transaction")
		}
		if err := orderRepo.DeleteLines(ctx, placed.order.ID); err != nil {
			return errors.Wrap(err, "failed to delete order lines")
		}
		if err := orderRepo.DeleteAddress(ctx, placed.order.ID); err != nil {
			return errors.Wrap(err, "failed to delete order address")
		}
		if err := orderRepo.Delete(ctx, placed.order.ID); err != nil {
			return errors.Wrap(err, "failed to delete order")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to compensate order placement", slog.Any("orderID", placed.order.ID), slog.Any("error", err))
	}
}

// sweepCart removes the consumed cart lines in their own transaction.
func (srv *orderService) sweepCart(ctx context.Context, lineIDs []uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewCartRepository().DeleteLines(ctx, lineIDs)
	})
}

// CancelOrder cancels an order still awaiting or just past payment. Allowed
// for the owning buyer and for staff/admin.
func (srv *orderService) CancelOrder(ctx context.Context, principal entity.Principal, orderID uuid.UUID) error {
	order, err := srv.loadOrder(ctx, orderID)
	if err != nil {
		return err
	}

	if order.UserID != principal.UserID && !principal.Role.In(entity.RoleStaff, entity.RoleAdmin) {
		return errors.Wrap(domainerrors.ErrForbidden, "order cancellation denied")
	}

	if !order.Status.Cancellable() {
		return errors.Wrap(domainerrors.ErrOrderNotCancellable, "order cancellation failed")
	}

	// Conditional on the status just read, so a webhook or staff transition
	// racing this call wins cleanly.
	updated, err := srv.orderRepo.UpdateStatusIfCurrent(ctx, order.ID, order.Status, entity.StatusCancelled)
	if err != nil {
		return errors.Wrap(err, "failed to cancel order")
	}
	if !updated {
		return errors.Wrap(domainerrors.ErrOrderNotCancellable, "order cancellation failed")
	}

	srv.notifyBuyer(ctx, order, service.EventOrderCancelled)
	srv.log(ctx).Info("Order cancelled", slog.Any("orderID", order.ID))

	return nil
}

// UpdateToPackaging moves Payment Completed -> Packaging.
func (srv *orderService) UpdateToPackaging(ctx context.Context, principal entity.Principal, orderID uuid.UUID) error {
	return srv.advance(ctx, principal, orderID, entity.StatusPaymentCompleted, entity.StatusPackaging,
		domainerrors.ErrOrderAwaitingPayment, service.EventOrderPackaging)
}

// UpdateToPackaged moves Packaging -> Packaged.
func (srv *orderService) UpdateToPackaged(ctx context.Context, principal entity.Principal, orderID uuid.UUID) error {
	return srv.advance(ctx, principal, orderID, entity.StatusPackaging, entity.StatusPackaged,
		domainerrors.ErrOrderNotPackaging, service.EventOrderPackaged)
}

// UpdateToOutForDelivery moves Packaged -> Out for Delivery.
func (srv *orderService) UpdateToOutForDelivery(ctx context.Context, principal entity.Principal, orderID uuid.UUID) error {
	return srv.advance(ctx, principal, orderID, entity.StatusPackaged, entity.StatusOutForDelivery,
		domainerrors.ErrOrderNotPackaged, service.EventOrderOutForDelivery)
}

// UpdateToDelivered moves Out for Delivery -> Delivered.
func (srv *orderService) UpdateToDelivered(ctx context.Context, principal entity.Principal, orderID uuid.UUID) error {
	return srv.advance(ctx, principal, orderID, entity.StatusOutForDelivery, entity.StatusDelivered,
		domainerrors.ErrOrderNotOutForDelivery, service.EventOrderDelivered)
}

// advance performs one fulfillment transition. The conditional update only
// fires when the stored status still equals from; anything else surfaces the
// transition's gate error.
func (srv *orderService) advance(
	ctx context.Context,
	principal entity.Principal,
	orderID uuid.UUID,
	from, to entity.OrderStatus,
	gateErr *domainerrors.BaseError,
	event service.NotificationEvent,
) error {
	if !principal.Role.In(entity.RoleStaff, entity.RoleAdmin) {
		return errors.Wrap(domainerrors.ErrForbidden, "fulfillment transition denied")
	}

	order, err := srv.loadOrder(ctx, orderID)
	if err != nil {
		return err
	}

	updated, err := srv.orderRepo.UpdateStatusIfCurrent(ctx, order.ID, from, to)
	if err != nil {
		return errors.Wrapf(err, "failed to update order status to %s", to)
	}
	if !updated {
		srv.log(ctx).Warn("Fulfillment transition rejected",
			slog.Any("orderID", order.ID),
			slog.String("status", order.Status.String()),
			slog.String("wanted", from.String()))

		return errors.Wrapf(gateErr, "fulfillment transition to %s failed", to)
	}

	order.Status = to
	srv.notifyBuyer(ctx, order, event)
	srv.log(ctx).Info("Order status updated", slog.Any("orderID", order.ID), slog.String("status", to.String()))

	return nil
}

// GetOrder returns the full order view with the next legal action.
func (srv *orderService) GetOrder(ctx context.Context, principal entity.Principal, orderID uuid.UUID) (*usecase.OrderDetail, error) {
	order, err := srv.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.UserID != principal.UserID && !principal.Role.In(entity.RoleStaff, entity.RoleAdmin) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "order access denied")
	}

	address, err := srv.orderRepo.FindAddress(ctx, order.ID)
	if err != nil && !errors.Is(err, repository.ErrOrderAddressNotFound) {
		return nil, errors.Wrap(err, "failed to load order address")
	}

	lines, err := srv.orderRepo.FindLines(ctx, order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order lines")
	}

	detail := &usecase.OrderDetail{
		OrderID:     order.ID,
		OrderNo:     order.OrderNo,
		TotalAmount: order.TotalAmount,
		Status:      order.Status.String(),
		NextAction:  order.Status.NextAction(),
		Products:    make([]*usecase.OrderLineDetail, 0, len(lines)),
	}
	if address != nil {
		detail.Address = address.Address
	}
	for _, line := range lines {
		lineDetail := &usecase.OrderLineDetail{
			Amount:   line.Amount,
			Quantity: line.Quantity,
		}
		if line.Product != nil {
			lineDetail.Product = line.Product.Name
			lineDetail.Description = line.Product.Description
		}
		detail.Products = append(detail.Products, lineDetail)
	}

	return detail, nil
}

// GetUserOrders lists the calling buyer's orders.
func (srv *orderService) GetUserOrders(ctx context.Context, principal entity.Principal, page *usecase.PageInput) (*usecase.OrderPage, error) {
	skip, take := paginate(page.Page, page.Size)

	orders, total, err := srv.orderRepo.FindByUser(ctx, principal.UserID, skip, take)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user orders")
	}

	return buildOrderPage(orders, total, page.Page, take), nil
}

// GetOrders lists orders in fulfillment for staff/admin processing.
func (srv *orderService) GetOrders(ctx context.Context, principal entity.Principal, page *usecase.PageInput) (*usecase.OrderPage, error) {
	return srv.listByStatuses(ctx, principal, page, []entity.OrderStatus{
		entity.StatusPackaging,
		entity.StatusPackaged,
		entity.StatusOutForDelivery,
		entity.StatusDelivered,
	})
}

// GetNewOrders lists freshly paid orders awaiting packaging for staff/admin.
func (srv *orderService) GetNewOrders(ctx context.Context, principal entity.Principal, page *usecase.PageInput) (*usecase.OrderPage, error) {
	return srv.listByStatuses(ctx, principal, page, []entity.OrderStatus{entity.StatusPaymentCompleted})
}

func (srv *orderService) listByStatuses(ctx context.Context, principal entity.Principal, page *usecase.PageInput, statuses []entity.OrderStatus) (*usecase.OrderPage, error) {
	if !principal.Role.In(entity.RoleStaff, entity.RoleAdmin) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "order listing denied")
	}

	skip, take := paginate(page.Page, page.Size)

	orders, total, err := srv.orderRepo.FindByStatuses(ctx, statuses, skip, take)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return buildOrderPage(orders, total, page.Page, take), nil
}

// GetSellerTransactions lists payments touching a seller's products. Sellers
// see their own; staff and admins may query any seller by ID.
func (srv *orderService) GetSellerTransactions(ctx context.Context, principal entity.Principal, input *usecase.SellerTransactionsInput) (*usecase.SellerTransactionPage, error) {
	sellerID := principal.UserID
	switch {
	case principal.Role == entity.RoleSeller:
		// Own transactions only.
	case principal.Role.In(entity.RoleStaff, entity.RoleAdmin):
		if input.SellerID == uuid.Nil {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "sellerId is required")
		}
		sellerID = input.SellerID
	default:
		return nil, errors.Wrap(domainerrors.ErrForbidden, "seller transaction listing denied")
	}

	skip, take := paginate(input.Page, input.Size)

	lines, total, err := srv.orderRepo.FindSellerLines(ctx, repository.SellerOrderQuery{
		SellerID: sellerID,
		Exclude:  []entity.OrderStatus{entity.StatusPendingPayment, entity.StatusCancelled},
		Skip:     skip,
		Take:     take,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list seller order lines")
	}

	transactions := make([]*usecase.SellerTransaction, 0, len(lines))
	txnByOrder := make(map[uuid.UUID]*entity.Transaction)
	for _, line := range lines {
		if line.Order == nil {
			continue
		}

		txn, ok := txnByOrder[line.OrderID]
		if !ok {
			link, err := srv.orderRepo.FindLinkByOrder(ctx, line.OrderID)
			if err != nil {
				return nil, errors.Wrap(err, "failed to resolve order transaction link")
			}
			txn, err = srv.txnRepo.FindByID(ctx, link.TransactionID)
			if err != nil {
				return nil, errors.Wrap(err, "failed to load transaction")
			}
			txnByOrder[line.OrderID] = txn
		}

		entry := &usecase.SellerTransaction{
			OrderNo: line.Order.OrderNo,
			Amount:  int64(line.Quantity) * line.Amount,
			Ref:     txn.Ref,
			Status:  string(txn.Status),
		}
		if line.Product != nil {
			entry.Description = fmt.Sprintf("%d x %s", line.Quantity, line.Product.Name)
		}
		transactions = append(transactions, entry)
	}

	return &usecase.SellerTransactionPage{
		Transactions: transactions,
		CurrentPage:  input.Page,
		TotalPages:   totalPages(total, take),
		Total:        total,
	}, nil
}

func (srv *orderService) loadOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load order")
	}

	return order, nil
}

// notifyBuyer resolves the order's owner and dispatches a lifecycle event.
func (srv *orderService) notifyBuyer(ctx context.Context, order *entity.Order, event service.NotificationEvent) {
	buyer, err := srv.userRepo.FindByID(ctx, order.UserID)
	if err != nil {
		srv.log(ctx).Warn("Failed to load buyer for notification", slog.Any("orderID", order.ID), slog.Any("error", err))

		return
	}

	dispatch(ctx, srv.log(ctx), srv.notifier, event, []string{buyer.Email}, map[string]any{
		"name":    buyer.FirstNameOrEmail(),
		"orderNo": order.OrderNo,
		"status":  order.Status.String(),
	})
}

func buildOrderPage(orders []*entity.Order, total int64, page, take int) *usecase.OrderPage {
	summaries := make([]*usecase.OrderSummary, 0, len(orders))
	for _, order := range orders {
		summaries = append(summaries, &usecase.OrderSummary{
			OrderID:     order.ID,
			OrderNo:     order.OrderNo,
			Description: order.Description,
			TotalAmount: order.TotalAmount,
			Status:      order.Status.String(),
			NextAction:  order.Status.NextAction(),
		})
	}

	return &usecase.OrderPage{
		Orders:      summaries,
		CurrentPage: page,
		TotalPages:  totalPages(total, take),
		Total:       total,
	}
}
