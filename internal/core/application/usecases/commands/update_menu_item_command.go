package commands

import (
	"errors"

	"burgershop/internal/pkg/guard"
)

var (
	ErrUpdateMenuItemCommandIsNotConstructed = errors.New(
		"UpdateMenuItemCommand must be created via NewUpdateMenuItemCommand constructor",
	)
	ErrMenuItemIDIsRequired = errors.New("menu item id is required")
)

// UpdateMenuItemCommand edits an existing menu item. The identity never
// changes; orders keep the name and price they froze at checkout.
type UpdateMenuItemCommand struct {
	id     string
	fields MenuItemFields

	guard guard.ConstructorGuard
}

// NewUpdateMenuItemCommand creates a menu item update command.
func NewUpdateMenuItemCommand(id string, fields MenuItemFields) (UpdateMenuItemCommand, error) {
	if id == "" {
		return UpdateMenuItemCommand{}, ErrMenuItemIDIsRequired
	}

	return UpdateMenuItemCommand{id: id, fields: fields, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemCommandIsNotConstructed)
}

// ID returns the identifier of the item to edit.
func (c UpdateMenuItemCommand) ID() string {
	return c.id
}

// Fields returns the new item attributes.
func (c UpdateMenuItemCommand) Fields() MenuItemFields {
	return c.fields
}
