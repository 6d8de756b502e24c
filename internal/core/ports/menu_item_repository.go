package ports

import (
	"context"

	"burgershop/internal/core/domain/model/menu"
)

// MenuItemRepository defines the persistence contract for menu items.
type MenuItemRepository interface {
	// Add persists a new menu item. The item must not already exist.
	Add(ctx context.Context, item *menu.MenuItem) error

	// Update persists changes to an existing menu item.
	Update(ctx context.Context, item *menu.MenuItem) error

	// Get retrieves a menu item by its identifier.
	Get(ctx context.Context, id string) (*menu.MenuItem, error)

	// GetAll retrieves the full menu.
	GetAll(ctx context.Context) ([]*menu.MenuItem, error)

	// Delete removes a menu item. Orders keep their frozen copies of the
	// item's name and price, so deletion never rewrites order history.
	Delete(ctx context.Context, id string) error
}
