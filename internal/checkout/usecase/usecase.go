package usecase

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/evershine/storefront-core/internal/auth"
	"github.com/evershine/storefront-core/internal/cart"
	"github.com/evershine/storefront-core/internal/checkout"
	"github.com/evershine/storefront-core/internal/checkout/dto"
	"github.com/evershine/storefront-core/internal/model"
	"github.com/evershine/storefront-core/pkg/logger"
)

var (
	whitespaceRe = regexp.MustCompile(`\s`)
	cardNumberRe = regexp.MustCompile(`^\d{16}$`)
	expiryRe     = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvvRe        = regexp.MustCompile(`^\d{3,4}$`)
	upiRe        = regexp.MustCompile(`^\S+@\S+$`)
)

type checkoutUseCase struct {
	cart     cart.UseCase
	auth     auth.UseCase
	recorder checkout.OrderRecorder
	logger   logger.Logger
	delay    time.Duration // simulated payment processing latency

	step     checkout.Step
	shipping dto.ShippingInput
}

// NewCheckoutUseCase builds a fresh wizard positioned at the Shipping
// step. recorder may be nil when nothing consumes completed orders.
func NewCheckoutUseCase(cartUC cart.UseCase, authUC auth.UseCase, recorder checkout.OrderRecorder, delay time.Duration, log logger.Logger) checkout.UseCase {
	return &checkoutUseCase{
		cart:     cartUC,
		auth:     authUC,
		recorder: recorder,
		logger:   log,
		delay:    delay,
		step:     checkout.StepShipping,
	}
}

func (uc *checkoutUseCase) Step() checkout.Step {
	return uc.step
}

func (uc *checkoutUseCase) SubmitShipping(input dto.ShippingInput) map[string]string {
	if uc.step != checkout.StepShipping {
		return nil
	}

	errs := map[string]string{}
	if strings.TrimSpace(input.FirstName) == "" {
		errs["firstName"] = "First name is required"
	}
	if strings.TrimSpace(input.LastName) == "" {
		errs["lastName"] = "Last name is required"
	}
	if strings.TrimSpace(input.Address) == "" {
		errs["address"] = "Address is required"
	}
	if strings.TrimSpace(input.City) == "" {
		errs["city"] = "City is required"
	}
	if strings.TrimSpace(input.PostalCode) == "" {
		errs["postalCode"] = "Postal code is required"
	}
	if len(errs) > 0 {
		return errs
	}

	uc.shipping = input
	uc.step = checkout.StepPayment
	return errs
}

func validatePayment(input dto.PaymentInput) map[string]string {
	errs := map[string]string{}
	switch input.Method {
	case model.PaymentMethodCard:
		if !cardNumberRe.MatchString(whitespaceRe.ReplaceAllString(input.CardNumber, "")) {
			errs["cardNumber"] = "Please enter a valid 16-digit card number"
		}
		if !expiryRe.MatchString(input.ExpiryDate) {
			errs["expiryDate"] = "Please enter expiry date in MM/YY format"
		}
		if !cvvRe.MatchString(input.CVV) {
			errs["cvv"] = "Please enter a valid CVV"
		}
		if strings.TrimSpace(input.CardName) == "" {
			errs["cardName"] = "Cardholder name is required"
		}
	case model.PaymentMethodUPI:
		if !upiRe.MatchString(input.UPIID) {
			errs["upiId"] = "Please enter a valid UPI ID"
		}
	case model.PaymentMethodCOD:
		// Nothing to validate.
	default:
		errs["method"] = "Please select a payment method"
	}
	return errs
}

func (uc *checkoutUseCase) SubmitPayment(ctx context.Context, input dto.PaymentInput) (map[string]string, *model.Order, error) {
	if uc.step != checkout.StepPayment {
		return nil, nil, nil
	}

	if errs := validatePayment(input); len(errs) > 0 {
		return errs, nil, nil
	}

	// Simulated payment processing round trip.
	if uc.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, nil, ctx.Err()
		case <-time.After(uc.delay):
		}
	}

	order := uc.buildOrder(input)
	uc.step = checkout.StepComplete
	uc.cart.Clear(ctx)

	if uc.recorder != nil {
		uc.recorder.RecordOrder(ctx, order)
	}
	uc.logger.Info("order placed",
		zap.String("order_id", order.ID),
		zap.String("payment_method", order.PaymentMethod),
		zap.Float64("total", order.Summary.Total),
	)
	return nil, order, nil
}

func (uc *checkoutUseCase) buildOrder(input dto.PaymentInput) *model.Order {
	order := &model.Order{
		ID:            uuid.New().String(),
		Items:         uc.cart.Items(),
		Shipping:      model.ShippingAddress(uc.shipping),
		PaymentMethod: input.Method,
		Summary:       uc.cart.Summary(),
		Status:        model.OrderStatusPending,
		CreatedAt:     time.Now(),
	}
	if user := uc.auth.CurrentUser(); user != nil {
		order.CustomerID = user.ID
		order.CustomerName = user.Name
		order.CustomerEmail = user.Email
	} else {
		order.CustomerName = strings.TrimSpace(uc.shipping.FirstName + " " + uc.shipping.LastName)
	}
	return order
}

func (uc *checkoutUseCase) Back() {
	if uc.step == checkout.StepPayment {
		uc.step = checkout.StepShipping
	}
}

func (uc *checkoutUseCase) Reset() {
	uc.step = checkout.StepShipping
	uc.shipping = dto.ShippingInput{}
}

func (uc *checkoutUseCase) Shipping() dto.ShippingInput {
	return uc.shipping
}

func (uc *checkoutUseCase) Summary() model.OrderSummary {
	return uc.cart.Summary()
}
