// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the fulfillment lifecycle state of an order. Statuses move
// forward along a strict linear chain; Cancelled is reachable only from the
// two pre-fulfillment states. Delivered and Cancelled are terminal.
type OrderStatus string

const (
	// StatusPendingPayment is the initial status at order placement.
	StatusPendingPayment OrderStatus = "Pending Payment Confirmation"
	// StatusPaymentCompleted is set by webhook reconciliation, exactly once.
	StatusPaymentCompleted OrderStatus = "Payment Completed"
	// StatusPackaging means staff started preparing the order.
	StatusPackaging OrderStatus = "Packaging"
	// StatusPackaged means the order is packed and ready to ship.
	StatusPackaged OrderStatus = "Packaged"
	// StatusOutForDelivery means the order left the warehouse.
	StatusOutForDelivery OrderStatus = "Out for Delivery"
	// StatusDelivered is the terminal success status.
	StatusDelivered OrderStatus = "Delivered"
	// StatusCancelled is the terminal cancellation status.
	StatusCancelled OrderStatus = "Cancelled"
)

// String returns the string representation of the status.
func (s OrderStatus) String() string {
	return string(s)
}

// NextAction returns the name of the next legal fulfillment transition for
// an order in this status. Empty for states awaiting payment and for
// terminal states.
func (s OrderStatus) NextAction() string {
	switch s {
	case StatusPaymentCompleted:
		return "updateToPackaging"
	case StatusPackaging:
		return "updateToPackaged"
	case StatusPackaged:
		return "updateToOutForDelivery"
	case StatusOutForDelivery:
		return "updateToDelivered"
	default:
		return ""
	}
}

// Cancellable reports whether an order in this status may still be
// cancelled by the buyer.
func (s OrderStatus) Cancellable() bool {
	return s == StatusPendingPayment || s == StatusPaymentCompleted
}

// Order is a reserved cart turned into a purchase. Total and description are
// snapshots computed at placement time and never recomputed.
type Order struct {
	ID          uuid.UUID
	OrderNo     string // Human-readable unique order number, e.g. "BuyTrek-x4f9k2a1p".
	UserID      uuid.UUID
	TotalAmount int64  // Sum of line subtotals at placement, in minor units.
	Description string // Human-readable line summary, e.g. "2 x productA, 1 x productB".
	Status      OrderStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OrderLine records one product position of an order. Amount is the product
// price copied at order time; it is never re-read from the live product.
type OrderLine struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Quantity  int
	Amount    int64    // Unit price snapshot in minor units.
	Product   *Product // Preloaded product, when the query asks for it.
	Order     *Order   // Preloaded order, when the query asks for it.
	CreatedAt time.Time
}

// OrderAddress snapshots the buyer's default address at placement time.
// The address text is copied so later edits to the live address do not
// change where an already-placed order ships.
type OrderAddress struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	AddressID uuid.UUID
	Address   string // Copied street address text.
	CreatedAt time.Time
}
