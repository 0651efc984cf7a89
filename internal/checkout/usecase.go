package checkout

import (
	"context"

	"github.com/evershine/storefront-core/internal/checkout/dto"
	"github.com/evershine/storefront-core/internal/model"
)

// Step is the wizard position: Shipping → Payment → Complete.
type Step string

const (
	StepShipping Step = "shipping"
	StepPayment  Step = "payment"
	StepComplete Step = "complete"
)

// OrderRecorder receives the order produced by a completed checkout.
// Persistence behind it is simulated; the admin store implements it.
type OrderRecorder interface {
	RecordOrder(ctx context.Context, order *model.Order)
}

// UseCase drives one pass through the checkout wizard. Validation
// failures come back as a field→message map and block the transition;
// they are form state, not errors.
type UseCase interface {
	Step() Step

	// SubmitShipping validates the shipping form (required fields after
	// whitespace trimming) and advances to Payment when the returned map
	// is empty. Outside the Shipping step it is a no-op.
	SubmitShipping(input dto.ShippingInput) map[string]string

	// SubmitPayment validates the active payment method's fields; when
	// they pass, it runs the simulated payment processing, records the
	// order, clears the cart and advances to Complete. The returned map
	// is non-empty on validation failure.
	SubmitPayment(ctx context.Context, input dto.PaymentInput) (map[string]string, *model.Order, error)

	// Back returns from Payment to Shipping, preserving entered data.
	Back()

	// Reset returns to Shipping with cleared form state from any step.
	// It is the only way out of Complete.
	Reset()

	// Shipping returns the entered shipping form state.
	Shipping() dto.ShippingInput

	// Summary derives the order totals from the current cart.
	Summary() model.OrderSummary
}
