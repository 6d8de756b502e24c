package commands

import (
	"context"
)

// UpdateMenuItemCommandHandler applies a menu item edit inside a transaction.
type UpdateMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewUpdateMenuItemCommandHandler creates a handler for menu item edits.
func NewUpdateMenuItemCommandHandler(uowFactory MenuUoWFactory) UpdateMenuItemCommandHandler {
	return UpdateMenuItemCommandHandler{uowFactory: uowFactory}
}

// Handle edits the menu item.
func (h *UpdateMenuItemCommandHandler) Handle(ctx context.Context, cmd UpdateMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuRepo := uow.MenuItemRepository()
	item, err := menuRepo.Get(ctx, cmd.ID())
	if err != nil {
		return err
	}

	f := cmd.Fields()
	if err := item.Update(f.Name, f.Description, f.Price, f.Category, f.Image, f.Flavors, f.Featured); err != nil {
		return err
	}

	if err := menuRepo.Update(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
