package commands

import (
	"errors"

	"burgershop/internal/core/domain/model/kernel"
	"burgershop/internal/core/domain/model/order"
	"burgershop/internal/pkg/guard"
)

var ErrSetOrderStatusCommandIsNotConstructed = errors.New(
	"SetOrderStatusCommand must be created via NewSetOrderStatusCommand constructor",
)

// SetOrderStatusCommand sets an order to a manually selected active status.
// Staff use this for corrections outside the one-step advance flow; the
// terminal statuses are not selectable.
type SetOrderStatusCommand struct {
	orderID kernel.OrderID
	status  order.Status

	guard guard.ConstructorGuard
}

// NewSetOrderStatusCommand creates a command to set the given order's status.
func NewSetOrderStatusCommand(orderID kernel.OrderID, status order.Status) (SetOrderStatusCommand, error) {
	if err := orderID.Validate(); err != nil {
		return SetOrderStatusCommand{}, err
	}
	if err := status.ValidateActive(); err != nil {
		return SetOrderStatusCommand{}, err
	}

	return SetOrderStatusCommand{
		orderID: orderID,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to mutate.
func (c SetOrderStatusCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Status returns the status to set.
func (c SetOrderStatusCommand) Status() order.Status {
	return c.status
}
