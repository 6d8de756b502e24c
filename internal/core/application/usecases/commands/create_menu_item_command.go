package commands

import (
	"errors"

	"burgershop/internal/core/domain/model/kernel"
	"burgershop/internal/pkg/guard"
)

var ErrCreateMenuItemCommandIsNotConstructed = errors.New(
	"CreateMenuItemCommand must be created via NewCreateMenuItemCommand constructor",
)

// MenuItemFields carries the editable attributes shared by the menu item
// create and update commands.
type MenuItemFields struct {
	Name        string
	Description string
	Price       kernel.Money
	Category    string
	Image       string
	Flavors     []string
	Featured    bool
}

// CreateMenuItemCommand adds a new dish to the menu.
type CreateMenuItemCommand struct {
	fields MenuItemFields

	guard guard.ConstructorGuard
}

// NewCreateMenuItemCommand creates a menu item creation command.
// Field validation happens in the MenuItem constructor.
func NewCreateMenuItemCommand(fields MenuItemFields) CreateMenuItemCommand {
	return CreateMenuItemCommand{fields: fields, guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c CreateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuItemCommandIsNotConstructed)
}

// Fields returns the item attributes.
func (c CreateMenuItemCommand) Fields() MenuItemFields {
	return c.fields
}
