package cart

import (
	"context"

	"github.com/evershine/storefront-core/internal/model"
)

// UseCase is the single source of truth for the shopping basket.
//
// Mutations do not return errors: snapshot persistence is best-effort and
// a failed write must never surface to the shopper, only logged. Derived
// values are recomputed from the line
// sequence on every read, never cached.
type UseCase interface {
	// AddItem increments the existing line for the product or appends a
	// new one. Out-of-stock products are accepted; gating on stock is a
	// presentation concern.
	AddItem(ctx context.Context, product model.Product, quantity int)

	// UpdateQuantity sets the line quantity. A quantity of zero or less
	// removes the line. Unknown product ids are a silent no-op.
	UpdateQuantity(ctx context.Context, productID string, quantity int)

	// RemoveItem deletes the line if present.
	RemoveItem(ctx context.Context, productID string)

	// Clear empties the cart and persists the empty state.
	Clear(ctx context.Context)

	Items() []model.CartLine
	Total() float64
	ItemCount() int

	// Summary derives the checkout totals (subtotal, free shipping, 10%
	// tax, grand total) from the current cart total.
	Summary() model.OrderSummary
}
