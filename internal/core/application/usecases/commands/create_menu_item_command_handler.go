package commands

import (
	"context"

	"burgershop/internal/core/domain/model/menu"

	"github.com/google/uuid"
)

// CreateMenuItemCommandHandler persists a new menu item.
type CreateMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewCreateMenuItemCommandHandler creates a handler for menu item creation.
func NewCreateMenuItemCommandHandler(uowFactory MenuUoWFactory) CreateMenuItemCommandHandler {
	return CreateMenuItemCommandHandler{uowFactory: uowFactory}
}

// Handle creates the menu item and returns it with its assigned id.
func (h *CreateMenuItemCommandHandler) Handle(ctx context.Context, cmd CreateMenuItemCommand) (*menu.MenuItem, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	f := cmd.Fields()
	item, err := menu.NewMenuItem(uuid.NewString(), f.Name, f.Description, f.Price, f.Category, f.Image, f.Flavors, f.Featured)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.MenuItemRepository().Add(ctx, item); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return item, nil
}
