package commands

import (
	"errors"

	"burgershop/internal/core/domain/model/cart"
	"burgershop/internal/core/domain/services"
	"burgershop/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrCartIsEmpty = errors.New("cart must contain at least one line")
)

// PlaceOrderCommand represents a checkout request: the cart contents, the
// customer's address form, and the raw payment selection. Validation of the
// individual fields happens in the checkout service; the command only
// guarantees the cart is non-empty.
type PlaceOrderCommand struct {
	lines   []cart.Line
	form    services.CheckoutForm
	payment services.PaymentSelection

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a checkout command from the session cart and
// the submitted form.
func NewPlaceOrderCommand(
	lines []cart.Line,
	form services.CheckoutForm,
	payment services.PaymentSelection,
) (PlaceOrderCommand, error) {
	if len(lines) == 0 {
		return PlaceOrderCommand{}, ErrCartIsEmpty
	}

	return PlaceOrderCommand{
		lines:   append([]cart.Line(nil), lines...),
		form:    form,
		payment: payment,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// Lines returns the cart lines being checked out.
func (c PlaceOrderCommand) Lines() []cart.Line {
	return append([]cart.Line(nil), c.lines...)
}

// Form returns the customer address form.
func (c PlaceOrderCommand) Form() services.CheckoutForm {
	return c.form
}

// Payment returns the raw payment selection.
func (c PlaceOrderCommand) Payment() services.PaymentSelection {
	return c.payment
}
