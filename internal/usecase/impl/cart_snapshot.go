// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"strconv"
	"strings"

	domainerrors "buytrek/internal/domain/errors"
	"buytrek/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// CartSnapshot is the frozen view of a cart at order-placement time: the
// included lines, their summed total and a human-readable description.
// Only lines whose product is currently available are included.
type CartSnapshot struct {
	Lines       []*SnapshotLine
	TotalAmount int64 // Minor units.
	Description string
}

// SnapshotLine is one (product, quantity) pair with the price captured at
// snapshot time.
type SnapshotLine struct {
	LineID    uuid.UUID
	ProductID uuid.UUID
	Name      string
	Quantity  int
	Amount    int64 // Unit price in minor units at snapshot time.
}

// cartSnapshotBuilder reads a user's cart and computes the order total and
// line items the orchestrator persists.
type cartSnapshotBuilder struct {
	cartRepo repository.CartRepository
}

func newCartSnapshotBuilder(cartRepo repository.CartRepository) *cartSnapshotBuilder {
	return &cartSnapshotBuilder{cartRepo: cartRepo}
}

// BuildSnapshot computes the snapshot for a user's cart. Unavailable
// products are silently excluded; a cart with no available-product lines
// fails as empty.
func (b *cartSnapshotBuilder) BuildSnapshot(ctx context.Context, userID uuid.UUID) (*CartSnapshot, error) {
	lines, err := b.cartRepo.FindAvailableLines(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart lines")
	}

	if len(lines) == 0 {
		return nil, domainerrors.ErrCartEmpty
	}

	snapshot := &CartSnapshot{Lines: make([]*SnapshotLine, 0, len(lines))}

	var description strings.Builder
	for i, line := range lines {
		if i > 0 {
			description.WriteString(", ")
		}
		description.WriteString(strconv.Itoa(line.Quantity))
		description.WriteString(" x ")
		description.WriteString(line.Product.Name)

		snapshot.TotalAmount += line.Subtotal()
		snapshot.Lines = append(snapshot.Lines, &SnapshotLine{
			LineID:    line.ID,
			ProductID: line.ProductID,
			Name:      line.Product.Name,
			Quantity:  line.Quantity,
			Amount:    line.Product.Amount,
		})
	}
	snapshot.Description = description.String()

	return snapshot, nil
}
