// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CartLine is a single (user, product) entry in a user's cart. The storage
// layer enforces at most one line per (user, product) pair; a duplicate
// insert surfaces as the "already in cart" conflict.
type CartLine struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ProductID uuid.UUID
	Quantity  int
	Product   *Product // Preloaded product, when the query asks for it.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Subtotal returns quantity times the unit price, in minor units.
// The receiver must have its Product preloaded.
func (l *CartLine) Subtotal() int64 {
	if l.Product == nil {
		return 0
	}

	return int64(l.Quantity) * l.Product.Amount
}
