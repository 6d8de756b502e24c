package commands

import (
	"errors"

	"burgershop/internal/core/domain/model/kernel"
	"burgershop/internal/pkg/guard"
)

var ErrAdvanceOrderStatusCommandIsNotConstructed = errors.New(
	"AdvanceOrderStatusCommand must be created via NewAdvanceOrderStatusCommand constructor",
)

// AdvanceOrderStatusCommand moves an order one step along the kitchen
// workflow: preparing, then on the way, then delivered. Advancing from any
// other status wraps back around to preparing.
type AdvanceOrderStatusCommand struct {
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewAdvanceOrderStatusCommand creates a command to advance the given order.
func NewAdvanceOrderStatusCommand(orderID kernel.OrderID) (AdvanceOrderStatusCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AdvanceOrderStatusCommand{}, err
	}

	return AdvanceOrderStatusCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to advance.
func (c AdvanceOrderStatusCommand) OrderID() kernel.OrderID {
	return c.orderID
}
