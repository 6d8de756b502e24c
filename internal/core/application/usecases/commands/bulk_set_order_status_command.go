package commands

import (
	"errors"

	"burgershop/internal/core/domain/model/kernel"
	"burgershop/internal/core/domain/model/order"
	"burgershop/internal/pkg/guard"
)

var (
	ErrBulkSetOrderStatusCommandIsNotConstructed = errors.New(
		"BulkSetOrderStatusCommand must be created via NewBulkSetOrderStatusCommand constructor",
	)
	ErrOrderIDsAreRequired = errors.New("at least one order id is required")
)

// BulkSetOrderStatusCommand sets several orders to the same active status in
// a single transaction. Staff use it to clear a batch of deliveries at once.
type BulkSetOrderStatusCommand struct {
	orderIDs []kernel.OrderID
	status   order.Status

	guard guard.ConstructorGuard
}

// NewBulkSetOrderStatusCommand creates a bulk status command.
func NewBulkSetOrderStatusCommand(orderIDs []kernel.OrderID, status order.Status) (BulkSetOrderStatusCommand, error) {
	if len(orderIDs) == 0 {
		return BulkSetOrderStatusCommand{}, ErrOrderIDsAreRequired
	}
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return BulkSetOrderStatusCommand{}, err
		}
	}
	if err := status.ValidateActive(); err != nil {
		return BulkSetOrderStatusCommand{}, err
	}

	return BulkSetOrderStatusCommand{
		orderIDs: append([]kernel.OrderID(nil), orderIDs...),
		status:   status,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c BulkSetOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrBulkSetOrderStatusCommandIsNotConstructed)
}

// OrderIDs returns the identifiers of the orders to mutate.
func (c BulkSetOrderStatusCommand) OrderIDs() []kernel.OrderID {
	return append([]kernel.OrderID(nil), c.orderIDs...)
}

// Status returns the status to set on every order.
func (c BulkSetOrderStatusCommand) Status() order.Status {
	return c.status
}
