// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Product is a catalog item owned by a seller. Availability gates whether it
// can be added to a cart or ordered; unavailable products are silently
// excluded from cart snapshots.
type Product struct {
	ID          uuid.UUID
	Name        string
	Amount      int64 // Unit price in minor units (kobo/cents).
	Description string
	Available   bool
	SellerID    uuid.UUID // The seller who owns this product.
	Category    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FormatMinorUnits renders a minor-unit amount as a human-readable decimal,
// e.g. 2500 -> "25.00". Used for notification payloads.
func FormatMinorUnits(amount int64) string {
	return fmt.Sprintf("%d.%02d", amount/100, amount%100)
}
