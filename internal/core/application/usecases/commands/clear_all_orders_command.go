package commands

import (
	"errors"

	"burgershop/internal/pkg/guard"
)

var ErrClearAllOrdersCommandIsNotConstructed = errors.New(
	"ClearAllOrdersCommand must be created via NewClearAllOrdersCommand constructor",
)

// ClearAllOrdersCommand wipes the entire order collection. This is the only
// way orders are ever deleted and is restricted to admins at the HTTP layer.
type ClearAllOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewClearAllOrdersCommand creates the bulk delete command.
func NewClearAllOrdersCommand() ClearAllOrdersCommand {
	return ClearAllOrdersCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c ClearAllOrdersCommand) Validate() error {
	return c.guard.Validate(ErrClearAllOrdersCommandIsNotConstructed)
}
