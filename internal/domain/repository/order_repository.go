// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"buytrek/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderLinkNotFound is returned when no order-transaction link exists.
	ErrOrderLinkNotFound = errors.New("order transaction link not found")
	// ErrOrderAddressNotFound is returned when an order has no address snapshot.
	ErrOrderAddressNotFound = errors.New("order address not found")
)

// SellerOrderQuery pages the order listings derived from a seller's products.
type SellerOrderQuery struct {
	SellerID uuid.UUID
	// Include restricts to orders in any of these statuses. Empty means all.
	Include []entity.OrderStatus
	// Exclude drops orders in any of these statuses.
	Exclude []entity.OrderStatus
	Skip    int
	Take    int
}

// OrderRepository persists the order aggregate: the order row plus its
// lines, address snapshot and transaction link. The Orchestrator owns all
// four within a single placement, so they share one repository.
type OrderRepository interface {
	// Create persists a new order in its initial status.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByUser returns one page of the user's orders and the total count.
	FindByUser(ctx context.Context, userID uuid.UUID, skip, take int) ([]*entity.Order, int64, error)

	// FindByStatuses returns one page of orders across all users, restricted
	// to the given statuses. Fulfillment staff work off these listings.
	FindByStatuses(ctx context.Context, statuses []entity.OrderStatus, skip, take int) ([]*entity.Order, int64, error)

	// UpdateStatusIfCurrent transitions the status only when the stored
	// status still equals from. It reports whether a row was updated; a
	// false result means another actor already moved the order on.
	UpdateStatusIfCurrent(ctx context.Context, id uuid.UUID, from, to entity.OrderStatus) (bool, error)

	// Delete removes the order row.
	Delete(ctx context.Context, id uuid.UUID) error

	// CreateLines persists the order's line items.
	CreateLines(ctx context.Context, lines []*entity.OrderLine) error

	// FindLines retrieves the order's lines with products preloaded.
	FindLines(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderLine, error)

	// DeleteLines removes all lines of an order.
	DeleteLines(ctx context.Context, orderID uuid.UUID) error

	// CreateAddress persists the order's address snapshot.
	CreateAddress(ctx context.Context, address *entity.OrderAddress) error

	// FindAddress retrieves the order's address snapshot.
	FindAddress(ctx context.Context, orderID uuid.UUID) (*entity.OrderAddress, error)

	// DeleteAddress removes the order's address snapshot.
	DeleteAddress(ctx context.Context, orderID uuid.UUID) error

	// CreateLink persists the 1:1 order-transaction join.
	CreateLink(ctx context.Context, link *entity.OrderTransaction) error

	// FindLinkByTransaction resolves the join from a transaction ID.
	// Webhook reconciliation uses it to find the order to transition.
	FindLinkByTransaction(ctx context.Context, transactionID uuid.UUID) (*entity.OrderTransaction, error)

	// FindLinkByOrder resolves the join from an order ID.
	FindLinkByOrder(ctx context.Context, orderID uuid.UUID) (*entity.OrderTransaction, error)

	// DeleteLink removes the join for an order.
	DeleteLink(ctx context.Context, orderID uuid.UUID) error

	// FindSellerLines returns one page of order lines for products owned by
	// the seller, orders preloaded, excluding orders in the given statuses.
	FindSellerLines(ctx context.Context, query SellerOrderQuery) ([]*entity.OrderLine, int64, error)
}
