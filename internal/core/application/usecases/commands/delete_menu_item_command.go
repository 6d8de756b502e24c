package commands

import (
	"errors"

	"burgershop/internal/pkg/guard"
)

var ErrDeleteMenuItemCommandIsNotConstructed = errors.New(
	"DeleteMenuItemCommand must be created via NewDeleteMenuItemCommand constructor",
)

// DeleteMenuItemCommand removes a dish from the menu. Placed orders keep
// their frozen copies of the item's name and price.
type DeleteMenuItemCommand struct {
	id string

	guard guard.ConstructorGuard
}

// NewDeleteMenuItemCommand creates a menu item deletion command.
func NewDeleteMenuItemCommand(id string) (DeleteMenuItemCommand, error) {
	if id == "" {
		return DeleteMenuItemCommand{}, ErrMenuItemIDIsRequired
	}

	return DeleteMenuItemCommand{id: id, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteMenuItemCommandIsNotConstructed)
}

// ID returns the identifier of the item to delete.
func (c DeleteMenuItemCommand) ID() string {
	return c.id
}
