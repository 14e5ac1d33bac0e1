package impl

import (
	"context"
	"strings"
	"testing"

	"buytrek/internal/domain/entity"
	domainerrors "buytrek/internal/domain/errors"
	"buytrek/internal/domain/repository"
	"buytrek/internal/domain/service"
	mockRepo "buytrek/internal/mocks/repository"
	mockSvc "buytrek/internal/mocks/service"
	"buytrek/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixture struct {
	service     *orderService
	txManager   *mockRepo.MockTransactionManager
	orderRepo   *mockRepo.MockOrderRepository
	cartRepo    *mockRepo.MockCartRepository
	addressRepo *mockRepo.MockAddressRepository
	userRepo    *mockRepo.MockUserRepository
	txnRepo     *mockRepo.MockTransactionRepository
	gateway     *mockSvc.MockPaymentGateway
}

func newOrderServiceFixture(t *testing.T) *orderServiceFixture {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	addressRepo := mockRepo.NewMockAddressRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	txnRepo := mockRepo.NewMockTransactionRepository(t)
	gateway := mockSvc.NewMockPaymentGateway(t)

	service := NewOrderService(OrderServiceParams{
		TxManager:   txManager,
		OrderRepo:   orderRepo,
		CartRepo:    cartRepo,
		AddressRepo: addressRepo,
		UserRepo:    userRepo,
		TxnRepo:     txnRepo,
		Gateway:     gateway,
		Logger:      newDiscardLogger(),
	})

	return &orderServiceFixture{
		service:     service.(*orderService),
		txManager:   txManager,
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		addressRepo: addressRepo,
		userRepo:    userRepo,
		txnRepo:     txnRepo,
		gateway:     gateway,
	}
}

// twoLineCart returns cart lines worth 2500 minor units in total.
func twoLineCart() []*entity.CartLine {
	productA := &entity.Product{ID: uuid.New(), Name: "productA", Amount: 1000, Available: true}
	productB := &entity.Product{ID: uuid.New(), Name: "productB", Amount: 500, Available: true}

	return []*entity.CartLine{
		{ID: uuid.New(), ProductID: productA.ID, Quantity: 2, Product: productA},
		{ID: uuid.New(), ProductID: productB.ID, Quantity: 1, Product: productB},
	}
}

// expectPlacementCommit registers one successful placement transaction. The
// captured order and transaction are handed to the callbacks for assertions.
func (f *orderServiceFixture) expectPlacementCommit(t *testing.T, onOrder func(order *entity.Order), onTxn func(txn *entity.Transaction)) {
	f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			orderRepo := mockRepo.NewMockOrderRepository(t)
			txnRepo := mockRepo.NewMockTransactionRepository(t)

			factory.EXPECT().NewOrderRepository().Return(orderRepo)
			factory.EXPECT().NewTransactionRepository().Return(txnRepo)

			orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).
				Run(func(ctx context.Context, order *entity.Order) {
					order.ID = uuid.New()
					if onOrder != nil {
						onOrder(order)
					}
				}).
				Return(nil)
			orderRepo.EXPECT().CreateLines(ctx, mock.AnythingOfType("[]*entity.OrderLine")).Return(nil)
			orderRepo.EXPECT().CreateAddress(ctx, mock.AnythingOfType("*entity.OrderAddress")).Return(nil)
			txnRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Transaction")).
				Run(func(ctx context.Context, txn *entity.Transaction) {
					txn.ID = uuid.New()
					if onTxn != nil {
						onTxn(txn)
					}
				}).
				Return(nil)
			orderRepo.EXPECT().CreateLink(ctx, mock.AnythingOfType("*entity.OrderTransaction")).Return(nil)

			_ = fn(factory)
		}).
		Return(nil).Once()
}

// expectCartSweep registers the post-placement cart cleanup transaction.
func (f *orderServiceFixture) expectCartSweep(t *testing.T) {
	f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			cartRepo := mockRepo.NewMockCartRepository(t)

			factory.EXPECT().NewCartRepository().Return(cartRepo)
			cartRepo.EXPECT().DeleteLines(ctx, mock.AnythingOfType("[]uuid.UUID")).
				Run(func(ctx context.Context, lineIDs []uuid.UUID) {
					assert.Len(t, lineIDs, 2)
				}).
				Return(nil)

			_ = fn(factory)
		}).
		Return(nil).Once()
}

// expectCompensation registers the rollback transaction that deletes every
// row a failed placement wrote, children before parents.
func (f *orderServiceFixture) expectCompensation(t *testing.T) {
	f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			orderRepo := mockRepo.NewMockOrderRepository(t)
			txnRepo := mockRepo.NewMockTransactionRepository(t)

			factory.EXPECT().NewOrderRepository().Return(orderRepo)
			factory.EXPECT().NewTransactionRepository().Return(txnRepo)

			orderRepo.EXPECT().DeleteLink(ctx, mock.AnythingOfType("uuid.UUID")).Return(nil)
			txnRepo.EXPECT().Delete(ctx, mock.AnythingOfType("uuid.UUID")).Return(nil)
			orderRepo.EXPECT().DeleteLines(ctx, mock.AnythingOfType("uuid.UUID")).Return(nil)
			orderRepo.EXPECT().DeleteAddress(ctx, mock.AnythingOfType("uuid.UUID")).Return(nil)
			orderRepo.EXPECT().Delete(ctx, mock.AnythingOfType("uuid.UUID")).Return(nil)

			_ = fn(factory)
		}).
		Return(nil).Once()
}

func TestOrderService_InitiateOrder_Success(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	principal := buyerPrincipal()
	buyer := &entity.User{ID: principal.UserID, Email: "buyer@example.com", Activated: true, Role: entity.RoleBuyer}

	f.userRepo.EXPECT().FindByID(ctx, principal.UserID).Return(buyer, nil)
	f.cartRepo.EXPECT().FindAvailableLines(ctx, principal.UserID).Return(twoLineCart(), nil)
	f.addressRepo.EXPECT().FindDefaultByUser(ctx, principal.UserID).
		Return(&entity.Address{ID: uuid.New(), UserID: principal.UserID, Address: "12 Marina Road, Lagos", IsDefault: true}, nil)

	f.expectPlacementCommit(t,
		func(order *entity.Order) {
			assert.Equal(t, int64(2500), order.TotalAmount)
			assert.Equal(t, "2 x productA, 1 x productB", order.Description)
			assert.Equal(t, entity.StatusPendingPayment, order.Status)
			assert.True(t, strings.HasPrefix(order.OrderNo, "BuyTrek-"))
		},
		func(txn *entity.Transaction) {
			assert.Equal(t, int64(2500), txn.Amount)
			assert.Equal(t, entity.TransactionPending, txn.Status)
			assert.True(t, strings.HasPrefix(txn.Ref, "TXN-"))
		})

	f.gateway.EXPECT().
		Initialize(mock.Anything, mock.MatchedBy(func(req service.InitializePayment) bool {
			return req.Amount == 2500 && req.Email == "buyer@example.com" && strings.HasPrefix(req.Reference, "TXN-")
		})).
		Return(&service.PaymentAuthorization{AuthorizationURL: "https://checkout.paystack.com/abc123"}, nil)

	f.expectCartSweep(t)

	output, err := f.service.InitiateOrder(ctx, principal)

	require.NoError(t, err)
	assert.Equal(t, "https://checkout.paystack.com/abc123", output.PaymentURL)
	assert.NotEqual(t, uuid.Nil, output.OrderID)
}

func TestOrderService_InitiateOrder_EmptyCart(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	principal := buyerPrincipal()

	f.userRepo.EXPECT().FindByID(ctx, principal.UserID).
		Return(&entity.User{ID: principal.UserID, Email: "buyer@example.com"}, nil)
	f.cartRepo.EXPECT().FindAvailableLines(ctx, principal.UserID).Return([]*entity.CartLine{}, nil)

	_, err := f.service.InitiateOrder(ctx, principal)

	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
}

func TestOrderService_InitiateOrder_NonBuyerDenied(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()

	for _, role := range []entity.Role{entity.RoleSeller, entity.RoleStaff, entity.RoleAdmin} {
		_, err := f.service.InitiateOrder(ctx, entity.Principal{UserID: uuid.New(), Role: role})

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	}
}

func TestOrderService_InitiateOrder_NoDefaultAddress(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	principal := buyerPrincipal()

	f.userRepo.EXPECT().FindByID(ctx, principal.UserID).
		Return(&entity.User{ID: principal.UserID, Email: "buyer@example.com"}, nil)
	f.cartRepo.EXPECT().FindAvailableLines(ctx, principal.UserID).Return(twoLineCart(), nil)
	f.addressRepo.EXPECT().FindDefaultByUser(ctx, principal.UserID).Return(nil, repository.ErrAddressNotFound)

	_, err := f.service.InitiateOrder(ctx, principal)

	assert.ErrorIs(t, err, domainerrors.ErrNoDefaultAddress)
}

func TestOrderService_InitiateOrder_GatewayFailureCompensates(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	principal := buyerPrincipal()

	f.userRepo.EXPECT().FindByID(ctx, principal.UserID).
		Return(&entity.User{ID: principal.UserID, Email: "buyer@example.com"}, nil)
	f.cartRepo.EXPECT().FindAvailableLines(ctx, principal.UserID).Return(twoLineCart(), nil)
	f.addressRepo.EXPECT().FindDefaultByUser(ctx, principal.UserID).
		Return(&entity.Address{ID: uuid.New(), UserID: principal.UserID, Address: "12 Marina Road, Lagos", IsDefault: true}, nil)

	f.expectPlacementCommit(t, nil, nil)
	f.gateway.EXPECT().
		Initialize(mock.Anything, mock.AnythingOfType("service.InitializePayment")).
		Return(nil, errors.New("gateway timeout"))
	f.expectCompensation(t)

	_, err := f.service.InitiateOrder(ctx, principal)

	assert.ErrorIs(t, err, domainerrors.ErrPaymentInitFailed)
}

func TestOrderService_InitiateOrder_ReferenceCollisionRetries(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	principal := buyerPrincipal()

	f.userRepo.EXPECT().FindByID(ctx, principal.UserID).
		Return(&entity.User{ID: principal.UserID, Email: "buyer@example.com"}, nil)
	f.cartRepo.EXPECT().FindAvailableLines(ctx, principal.UserID).Return(twoLineCart(), nil)
	f.addressRepo.EXPECT().FindDefaultByUser(ctx, principal.UserID).
		Return(&entity.Address{ID: uuid.New(), UserID: principal.UserID, Address: "12 Marina Road, Lagos", IsDefault: true}, nil)

	// First attempt hits the unique reference constraint; the retry commits.
	f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(repository.ErrDuplicateReference).Once()
	f.expectPlacementCommit(t, nil, nil)

	f.gateway.EXPECT().
		Initialize(mock.Anything, mock.AnythingOfType("service.InitializePayment")).
		Return(&service.PaymentAuthorization{AuthorizationURL: "https://checkout.paystack.com/abc123"}, nil)
	f.expectCartSweep(t)

	output, err := f.service.InitiateOrder(ctx, principal)

	require.NoError(t, err)
	assert.Equal(t, "https://checkout.paystack.com/abc123", output.PaymentURL)
}

func TestOrderService_CancelOrder_ByOwner(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	principal := buyerPrincipal()
	orderID := uuid.New()
	order := &entity.Order{ID: orderID, OrderNo: "BuyTrek-abc", UserID: principal.UserID, Status: entity.StatusPendingPayment}

	f.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	f.orderRepo.EXPECT().UpdateStatusIfCurrent(ctx, orderID, entity.StatusPendingPayment, entity.StatusCancelled).Return(true, nil)
	f.userRepo.EXPECT().FindByID(ctx, principal.UserID).
		Return(&entity.User{ID: principal.UserID, Email: "buyer@example.com"}, nil)

	err := f.service.CancelOrder(ctx, principal, orderID)

	require.NoError(t, err)
}

func TestOrderService_CancelOrder_ForeignBuyerDenied(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	orderID := uuid.New()

	f.orderRepo.EXPECT().FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: uuid.New(), Status: entity.StatusPendingPayment}, nil)

	err := f.service.CancelOrder(ctx, buyerPrincipal(), orderID)

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_CancelOrder_InFulfillment(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	principal := buyerPrincipal()
	orderID := uuid.New()

	f.orderRepo.EXPECT().FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: principal.UserID, Status: entity.StatusPackaging}, nil)

	err := f.service.CancelOrder(ctx, principal, orderID)

	assert.ErrorIs(t, err, domainerrors.ErrOrderNotCancellable)
}

func TestOrderService_CancelOrder_LostRace(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	principal := buyerPrincipal()
	orderID := uuid.New()

	f.orderRepo.EXPECT().FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: principal.UserID, Status: entity.StatusPaymentCompleted}, nil)
	f.orderRepo.EXPECT().UpdateStatusIfCurrent(ctx, orderID, entity.StatusPaymentCompleted, entity.StatusCancelled).Return(false, nil)

	err := f.service.CancelOrder(ctx, principal, orderID)

	assert.ErrorIs(t, err, domainerrors.ErrOrderNotCancellable)
}

func TestOrderService_UpdateToPackaging_Success(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	staff := entity.Principal{UserID: uuid.New(), Role: entity.RoleStaff}
	orderID := uuid.New()
	buyerID := uuid.New()
	order := &entity.Order{ID: orderID, OrderNo: "BuyTrek-abc", UserID: buyerID, Status: entity.StatusPaymentCompleted}

	f.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	f.orderRepo.EXPECT().UpdateStatusIfCurrent(ctx, orderID, entity.StatusPaymentCompleted, entity.StatusPackaging).Return(true, nil)
	f.userRepo.EXPECT().FindByID(ctx, buyerID).
		Return(&entity.User{ID: buyerID, Email: "buyer@example.com"}, nil)

	err := f.service.UpdateToPackaging(ctx, staff, orderID)

	require.NoError(t, err)
}

func TestOrderService_UpdateToPackaging_BuyerDenied(t *testing.T) {
	f := newOrderServiceFixture(t)

	err := f.service.UpdateToPackaging(context.Background(), buyerPrincipal(), uuid.New())

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_UpdateToPackaging_AwaitingPayment(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	staff := entity.Principal{UserID: uuid.New(), Role: entity.RoleStaff}
	orderID := uuid.New()

	f.orderRepo.EXPECT().FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: uuid.New(), Status: entity.StatusPendingPayment}, nil)
	f.orderRepo.EXPECT().UpdateStatusIfCurrent(ctx, orderID, entity.StatusPaymentCompleted, entity.StatusPackaging).Return(false, nil)

	err := f.service.UpdateToPackaging(ctx, staff, orderID)

	assert.ErrorIs(t, err, domainerrors.ErrOrderAwaitingPayment)
}

func TestOrderService_UpdateToDelivered_GateRejected(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	admin := entity.Principal{UserID: uuid.New(), Role: entity.RoleAdmin}
	orderID := uuid.New()

	f.orderRepo.EXPECT().FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: uuid.New(), Status: entity.StatusPackaged}, nil)
	f.orderRepo.EXPECT().UpdateStatusIfCurrent(ctx, orderID, entity.StatusOutForDelivery, entity.StatusDelivered).Return(false, nil)

	err := f.service.UpdateToDelivered(ctx, admin, orderID)

	assert.ErrorIs(t, err, domainerrors.ErrOrderNotOutForDelivery)
}

func TestOrderService_GetOrder_OwnerView(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	principal := buyerPrincipal()
	orderID := uuid.New()
	order := &entity.Order{
		ID:          orderID,
		OrderNo:     "BuyTrek-abc",
		UserID:      principal.UserID,
		TotalAmount: 2500,
		Status:      entity.StatusPaymentCompleted,
	}

	f.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	f.orderRepo.EXPECT().FindAddress(ctx, orderID).
		Return(&entity.OrderAddress{OrderID: orderID, Address: "12 Marina Road, Lagos"}, nil)
	f.orderRepo.EXPECT().FindLines(ctx, orderID).Return([]*entity.OrderLine{
		{OrderID: orderID, Quantity: 2, Amount: 1000, Product: &entity.Product{Name: "productA", Description: "a trek product"}},
		{OrderID: orderID, Quantity: 1, Amount: 500, Product: &entity.Product{Name: "productB"}},
	}, nil)

	detail, err := f.service.GetOrder(ctx, principal, orderID)

	require.NoError(t, err)
	assert.Equal(t, "BuyTrek-abc", detail.OrderNo)
	assert.Equal(t, int64(2500), detail.TotalAmount)
	assert.Equal(t, "updateToPackaging", detail.NextAction)
	assert.Equal(t, "12 Marina Road, Lagos", detail.Address)
	require.Len(t, detail.Products, 2)
	assert.Equal(t, "productA", detail.Products[0].Product)
	assert.Equal(t, 2, detail.Products[0].Quantity)
}

func TestOrderService_GetOrder_ForeignBuyerDenied(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	orderID := uuid.New()

	f.orderRepo.EXPECT().FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: uuid.New(), Status: entity.StatusPendingPayment}, nil)

	_, err := f.service.GetOrder(ctx, buyerPrincipal(), orderID)

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	orderID := uuid.New()

	f.orderRepo.EXPECT().FindByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	_, err := f.service.GetOrder(ctx, buyerPrincipal(), orderID)

	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_GetUserOrders_Pagination(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	principal := buyerPrincipal()

	f.orderRepo.EXPECT().FindByUser(ctx, principal.UserID, 0, 50).Return([]*entity.Order{
		{ID: uuid.New(), OrderNo: "BuyTrek-abc", Status: entity.StatusDelivered, TotalAmount: 2500},
	}, int64(120), nil)

	page, err := f.service.GetUserOrders(ctx, principal, &usecase.PageInput{})

	require.NoError(t, err)
	assert.Len(t, page.Orders, 1)
	assert.Equal(t, 0, page.CurrentPage)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, int64(120), page.Total)
}

func TestOrderService_GetOrders_FulfillmentStatuses(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	staff := entity.Principal{UserID: uuid.New(), Role: entity.RoleStaff}

	f.orderRepo.EXPECT().FindByStatuses(ctx, []entity.OrderStatus{
		entity.StatusPackaging,
		entity.StatusPackaged,
		entity.StatusOutForDelivery,
		entity.StatusDelivered,
	}, 0, 50).Return([]*entity.Order{
		{ID: uuid.New(), OrderNo: "BuyTrek-abc", Status: entity.StatusPackaging},
	}, int64(1), nil)

	page, err := f.service.GetOrders(ctx, staff, &usecase.PageInput{})

	require.NoError(t, err)
	require.Len(t, page.Orders, 1)
	assert.Equal(t, "updateToPackaged", page.Orders[0].NextAction)
}

func TestOrderService_GetOrders_BuyerDenied(t *testing.T) {
	f := newOrderServiceFixture(t)

	_, err := f.service.GetOrders(context.Background(), buyerPrincipal(), &usecase.PageInput{})

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_GetNewOrders_PaymentCompletedOnly(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	admin := entity.Principal{UserID: uuid.New(), Role: entity.RoleAdmin}

	f.orderRepo.EXPECT().FindByStatuses(ctx, []entity.OrderStatus{entity.StatusPaymentCompleted}, 0, 50).
		Return([]*entity.Order{}, int64(0), nil)

	page, err := f.service.GetNewOrders(ctx, admin, &usecase.PageInput{})

	require.NoError(t, err)
	assert.Empty(t, page.Orders)
}

func TestOrderService_GetSellerTransactions_OwnListing(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	seller := entity.Principal{UserID: uuid.New(), Role: entity.RoleSeller}
	orderID := uuid.New()
	transactionID := uuid.New()

	f.orderRepo.EXPECT().FindSellerLines(ctx, repository.SellerOrderQuery{
		SellerID: seller.UserID,
		Exclude:  []entity.OrderStatus{entity.StatusPendingPayment, entity.StatusCancelled},
		Skip:     0,
		Take:     50,
	}).Return([]*entity.OrderLine{
		{
			OrderID:  orderID,
			Quantity: 2,
			Amount:   1000,
			Order:    &entity.Order{ID: orderID, OrderNo: "BuyTrek-abc"},
			Product:  &entity.Product{Name: "productA"},
		},
	}, int64(1), nil)
	f.orderRepo.EXPECT().FindLinkByOrder(ctx, orderID).
		Return(&entity.OrderTransaction{OrderID: orderID, TransactionID: transactionID}, nil)
	f.txnRepo.EXPECT().FindByID(ctx, transactionID).
		Return(&entity.Transaction{ID: transactionID, Ref: "TXN-abc-123", Status: entity.TransactionCompleted}, nil)

	page, err := f.service.GetSellerTransactions(ctx, seller, &usecase.SellerTransactionsInput{})

	require.NoError(t, err)
	require.Len(t, page.Transactions, 1)
	assert.Equal(t, "BuyTrek-abc", page.Transactions[0].OrderNo)
	assert.Equal(t, int64(2000), page.Transactions[0].Amount)
	assert.Equal(t, "2 x productA", page.Transactions[0].Description)
	assert.Equal(t, "TXN-abc-123", page.Transactions[0].Ref)
	assert.Equal(t, "Completed", page.Transactions[0].Status)
}

func TestOrderService_GetSellerTransactions_StaffNeedsSellerID(t *testing.T) {
	f := newOrderServiceFixture(t)
	staff := entity.Principal{UserID: uuid.New(), Role: entity.RoleStaff}

	_, err := f.service.GetSellerTransactions(context.Background(), staff, &usecase.SellerTransactionsInput{})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_GetSellerTransactions_BuyerDenied(t *testing.T) {
	f := newOrderServiceFixture(t)

	_, err := f.service.GetSellerTransactions(context.Background(), buyerPrincipal(), &usecase.SellerTransactionsInput{})

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
