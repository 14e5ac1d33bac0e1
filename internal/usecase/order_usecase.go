// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"buytrek/internal/domain/entity"

	"github.com/google/uuid"
)

// PageInput pages any of the order listings. Pages are 0-based; size
// defaults to 50 when unset.
type PageInput struct {
	Page int `query:"page"`
	Size int `query:"size"`
}

// InitiateOrderOutput returns the hosted payment page for a placed order.
type InitiateOrderOutput struct {
	PaymentURL string    `json:"paymentUrl"`
	OrderID    uuid.UUID `json:"orderId"`
}

// OrderSummary is a single order in a listing.
type OrderSummary struct {
	OrderID     uuid.UUID `json:"orderId"`
	OrderNo     string    `json:"orderNo"`
	Description string    `json:"description"`
	TotalAmount int64     `json:"totalAmount"`
	Status      string    `json:"status"`
	NextAction  string    `json:"nextAction,omitempty"`
}

// OrderPage is one page of order summaries.
type OrderPage struct {
	Orders      []*OrderSummary `json:"orders"`
	CurrentPage int             `json:"currentPage"`
	TotalPages  int             `json:"totalPages"`
	Total       int64           `json:"total"`
}

// OrderLineDetail is a line item inside an order detail view.
type OrderLineDetail struct {
	Product     string `json:"product"`
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
	Quantity    int    `json:"quantity"`
}

// OrderDetail is the full view of a single order.
type OrderDetail struct {
	OrderID     uuid.UUID          `json:"orderId"`
	OrderNo     string             `json:"orderNo"`
	TotalAmount int64              `json:"totalAmount"`
	Status      string             `json:"status"`
	NextAction  string             `json:"nextAction"`
	Address     string             `json:"address"`
	Products    []*OrderLineDetail `json:"products"`
}

// SellerTransaction is one settled or pending payment touching a seller's product.
type SellerTransaction struct {
	OrderNo     string `json:"orderNo"`
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
	Ref         string `json:"transactionRef"`
	Status      string `json:"status"`
}

// SellerTransactionPage is one page of seller transactions.
type SellerTransactionPage struct {
	Transactions []*SellerTransaction `json:"transactions"`
	CurrentPage  int                  `json:"currentPage"`
	TotalPages   int                  `json:"totalPages"`
	Total        int64                `json:"total"`
}

// SellerTransactionsInput pages a seller's transactions; staff and admins
// may query another seller's by ID.
type SellerTransactionsInput struct {
	SellerID uuid.UUID `query:"sellerId"`
	Page     int       `query:"page"`
	Size     int       `query:"size"`
}

// OrderUsecase is the order-payment orchestrator and fulfillment state
// machine: placement against the payment gateway, cancellation, the linear
// status transitions, and the read-only projections over the same data.
type OrderUsecase interface {
	// InitiateOrder reserves the caller's cart as an order and opens a
	// payment session. On gateway failure every row written for the attempt
	// is compensated away.
	InitiateOrder(ctx context.Context, principal entity.Principal) (*InitiateOrderOutput, error)

	// CancelOrder cancels an order still awaiting or just past payment.
	// Allowed for the owning buyer and for staff/admin.
	CancelOrder(ctx context.Context, principal entity.Principal, orderID uuid.UUID) error

	// UpdateToPackaging moves Payment Completed -> Packaging. Staff/admin only.
	UpdateToPackaging(ctx context.Context, principal entity.Principal, orderID uuid.UUID) error

	// UpdateToPackaged moves Packaging -> Packaged. Staff/admin only.
	UpdateToPackaged(ctx context.Context, principal entity.Principal, orderID uuid.UUID) error

	// UpdateToOutForDelivery moves Packaged -> Out for Delivery. Staff/admin only.
	UpdateToOutForDelivery(ctx context.Context, principal entity.Principal, orderID uuid.UUID) error

	// UpdateToDelivered moves Out for Delivery -> Delivered. Staff/admin only.
	UpdateToDelivered(ctx context.Context, principal entity.Principal, orderID uuid.UUID) error

	// GetOrder returns the full order view with the next legal action.
	GetOrder(ctx context.Context, principal entity.Principal, orderID uuid.UUID) (*OrderDetail, error)

	// GetUserOrders lists the calling buyer's orders.
	GetUserOrders(ctx context.Context, principal entity.Principal, page *PageInput) (*OrderPage, error)

	// GetOrders lists orders in fulfillment (past Payment Completed) for
	// staff/admin processing.
	GetOrders(ctx context.Context, principal entity.Principal, page *PageInput) (*OrderPage, error)

	// GetNewOrders lists freshly paid orders awaiting packaging for staff/admin.
	GetNewOrders(ctx context.Context, principal entity.Principal, page *PageInput) (*OrderPage, error)

	// GetSellerTransactions lists payments touching a seller's products.
	GetSellerTransactions(ctx context.Context, principal entity.Principal, input *SellerTransactionsInput) (*SellerTransactionPage, error)
}
