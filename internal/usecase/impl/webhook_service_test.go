package impl

import (
	"context"
	"testing"

	"buytrek/config"
	"buytrek/internal/domain/entity"
	domainerrors "buytrek/internal/domain/errors"
	"buytrek/internal/domain/repository"
	mockRepo "buytrek/internal/mocks/repository"
	mockSvc "buytrek/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const paystackIP = "52.31.139.75"

type webhookServiceFixture struct {
	service   *webhookService
	txManager *mockRepo.MockTransactionManager
	txnRepo   *mockRepo.MockTransactionRepository
	orderRepo *mockRepo.MockOrderRepository
	userRepo  *mockRepo.MockUserRepository
	gateway   *mockSvc.MockPaymentGateway
}

func newWebhookServiceFixture(t *testing.T) *webhookServiceFixture {
	txManager := mockRepo.NewMockTransactionManager(t)
	txnRepo := mockRepo.NewMockTransactionRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	gateway := mockSvc.NewMockPaymentGateway(t)

	service := NewWebhookService(WebhookServiceParams{
		TxManager: txManager,
		TxnRepo:   txnRepo,
		OrderRepo: orderRepo,
		UserRepo:  userRepo,
		Gateway:   gateway,
		Config: &config.Config{
			Paystack: &config.PaystackConfig{AllowedIPs: []string{paystackIP}},
		},
		Logger: newDiscardLogger(),
	})

	return &webhookServiceFixture{
		service:   service.(*webhookService),
		txManager: txManager,
		txnRepo:   txnRepo,
		orderRepo: orderRepo,
		userRepo:  userRepo,
		gateway:   gateway,
	}
}

func TestWebhookService_HandleWebhook_UnlistedSourceIP(t *testing.T) {
	f := newWebhookServiceFixture(t)

	err := f.service.HandleWebhook(context.Background(), "sig", "203.0.113.10", []byte(`{}`))

	assert.ErrorIs(t, err, domainerrors.ErrWebhookSourceForbidden)
}

func TestWebhookService_HandleWebhook_BadSignature(t *testing.T) {
	f := newWebhookServiceFixture(t)
	body := []byte(`{"event":"charge.success"}`)

	f.gateway.EXPECT().VerifyWebhookSignature(body, "forged").Return(false)

	err := f.service.HandleWebhook(context.Background(), "forged", paystackIP, body)

	assert.ErrorIs(t, err, domainerrors.ErrWebhookSignature)
}

func TestWebhookService_HandleWebhook_MalformedPayload(t *testing.T) {
	f := newWebhookServiceFixture(t)
	body := []byte(`not json`)

	f.gateway.EXPECT().VerifyWebhookSignature(body, "sig").Return(true)

	err := f.service.HandleWebhook(context.Background(), "sig", paystackIP, body)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestWebhookService_HandleWebhook_IgnoredEvent(t *testing.T) {
	f := newWebhookServiceFixture(t)
	body := []byte(`{"event":"charge.failed","data":{"reference":"TXN-abc-123","amount":2500}}`)

	f.gateway.EXPECT().VerifyWebhookSignature(body, "sig").Return(true)

	err := f.service.HandleWebhook(context.Background(), "sig", paystackIP, body)

	require.NoError(t, err)
}

func TestWebhookService_HandleWebhook_UnknownReference(t *testing.T) {
	f := newWebhookServiceFixture(t)
	ctx := context.Background()
	body := []byte(`{"event":"charge.success","data":{"reference":"TXN-ghost-123","amount":2500}}`)

	f.gateway.EXPECT().VerifyWebhookSignature(body, "sig").Return(true)
	f.txnRepo.EXPECT().FindByRef(ctx, "TXN-ghost-123").Return(nil, repository.ErrTransactionNotFound)

	err := f.service.HandleWebhook(ctx, "sig", paystackIP, body)

	assert.ErrorIs(t, err, domainerrors.ErrTransactionNotFound)
}

func TestWebhookService_HandleWebhook_AmountMismatch(t *testing.T) {
	f := newWebhookServiceFixture(t)
	ctx := context.Background()
	body := []byte(`{"event":"charge.success","data":{"reference":"TXN-abc-123","amount":100}}`)

	f.gateway.EXPECT().VerifyWebhookSignature(body, "sig").Return(true)
	f.txnRepo.EXPECT().FindByRef(ctx, "TXN-abc-123").
		Return(&entity.Transaction{ID: uuid.New(), Ref: "TXN-abc-123", Amount: 2500, Status: entity.TransactionPending}, nil)

	err := f.service.HandleWebhook(ctx, "sig", paystackIP, body)

	assert.ErrorIs(t, err, domainerrors.ErrAmountMismatch)
}

func TestWebhookService_HandleWebhook_Success(t *testing.T) {
	f := newWebhookServiceFixture(t)
	ctx := context.Background()
	transactionID := uuid.New()
	orderID := uuid.New()
	buyerID := uuid.New()
	body := []byte(`{"event":"charge.success","data":{"reference":"TXN-abc-123","amount":2500}}`)

	f.gateway.EXPECT().VerifyWebhookSignature(body, "sig").Return(true)
	f.txnRepo.EXPECT().FindByRef(ctx, "TXN-abc-123").
		Return(&entity.Transaction{ID: transactionID, Ref: "TXN-abc-123", Amount: 2500, Status: entity.TransactionPending}, nil)

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txnRepo := mockRepo.NewMockTransactionRepository(t)
			orderRepo := mockRepo.NewMockOrderRepository(t)

			factory.EXPECT().NewTransactionRepository().Return(txnRepo)
			factory.EXPECT().NewOrderRepository().Return(orderRepo)

			txnRepo.EXPECT().CompleteIfPending(ctx, transactionID).Return(true, nil)
			orderRepo.EXPECT().FindLinkByTransaction(ctx, transactionID).
				Return(&entity.OrderTransaction{OrderID: orderID, TransactionID: transactionID}, nil)
			orderRepo.EXPECT().
				UpdateStatusIfCurrent(ctx, orderID, entity.StatusPendingPayment, entity.StatusPaymentCompleted).
				Return(true, nil)
			orderRepo.EXPECT().FindByID(ctx, orderID).
				Return(&entity.Order{ID: orderID, OrderNo: "BuyTrek-abc", UserID: buyerID, TotalAmount: 2500, Status: entity.StatusPaymentCompleted}, nil)

			_ = fn(factory)
		}).
		Return(nil)

	f.userRepo.EXPECT().FindByID(ctx, buyerID).
		Return(&entity.User{ID: buyerID, Email: "buyer@example.com"}, nil)
	f.userRepo.EXPECT().FindByRoles(ctx, entity.RoleStaff, entity.RoleAdmin).
		Return([]*entity.User{
			{ID: uuid.New(), Email: "ops@example.com", Role: entity.RoleStaff},
		}, nil)

	err := f.service.HandleWebhook(ctx, "sig", paystackIP, body)

	require.NoError(t, err)
}

func TestWebhookService_HandleWebhook_ReplayIsIdempotent(t *testing.T) {
	f := newWebhookServiceFixture(t)
	ctx := context.Background()
	transactionID := uuid.New()
	body := []byte(`{"event":"charge.success","data":{"reference":"TXN-abc-123","amount":2500}}`)

	f.gateway.EXPECT().VerifyWebhookSignature(body, "sig").Return(true)
	f.txnRepo.EXPECT().FindByRef(ctx, "TXN-abc-123").
		Return(&entity.Transaction{ID: transactionID, Ref: "TXN-abc-123", Amount: 2500, Status: entity.TransactionCompleted}, nil)

	// The conditional update finds nothing pending; no order is touched and
	// nobody is re-notified.
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txnRepo := mockRepo.NewMockTransactionRepository(t)
			orderRepo := mockRepo.NewMockOrderRepository(t)

			factory.EXPECT().NewTransactionRepository().Return(txnRepo)
			factory.EXPECT().NewOrderRepository().Return(orderRepo)

			txnRepo.EXPECT().CompleteIfPending(ctx, transactionID).Return(false, nil)

			_ = fn(factory)
		}).
		Return(nil)

	err := f.service.HandleWebhook(ctx, "sig", paystackIP, body)

	require.NoError(t, err)
}

func TestWebhookService_HandleWebhook_NoAllowlistAcceptsAnySource(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	gateway := mockSvc.NewMockPaymentGateway(t)
	service := NewWebhookService(WebhookServiceParams{
		TxManager: txManager,
		TxnRepo:   mockRepo.NewMockTransactionRepository(t),
		OrderRepo: mockRepo.NewMockOrderRepository(t),
		UserRepo:  mockRepo.NewMockUserRepository(t),
		Gateway:   gateway,
		Logger:    newDiscardLogger(),
	})
	body := []byte(`{"event":"charge.failed","data":{}}`)

	gateway.EXPECT().VerifyWebhookSignature(body, "sig").Return(true)

	err := service.HandleWebhook(context.Background(), "sig", "203.0.113.10", body)

	require.NoError(t, err)
}
