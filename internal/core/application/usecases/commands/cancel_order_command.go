package commands

import (
	"errors"

	"burgershop/internal/core/domain/model/kernel"
	"burgershop/internal/pkg/guard"
)

var (
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
	)
	ErrCancelledByIsRequired = errors.New("cancelledBy is required")
)

// CancelOrderCommand cancels an order on behalf of the named actor.
// Cancellation is only permitted while the order is still preparing.
type CancelOrderCommand struct {
	orderID     kernel.OrderID
	cancelledBy string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel the given order.
// The cancelledBy value identifies who asked for the cancellation, typically
// the customer's email or an admin account name.
func NewCancelOrderCommand(orderID kernel.OrderID, cancelledBy string) (CancelOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CancelOrderCommand{}, err
	}
	if cancelledBy == "" {
		return CancelOrderCommand{}, ErrCancelledByIsRequired
	}

	return CancelOrderCommand{
		orderID:     orderID,
		cancelledBy: cancelledBy,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to cancel.
func (c CancelOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// CancelledBy returns who requested the cancellation.
func (c CancelOrderCommand) CancelledBy() string {
	return c.cancelledBy
}
