package order

import (
	"errors"

	"burgershop/internal/core/domain/model/kernel"
	"burgershop/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item was not created through NewItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a priced order line captured from the cart at checkout.
// It is a value object: the menu item's identity, display name, and unit price
// are frozen at the moment the order is placed so later menu edits do not
// rewrite order history.
type Item struct {
	// menuItemID references the menu item the line was built from
	menuItemID string

	// name is the display name frozen at checkout
	name string

	// price is the unit price frozen at checkout
	price kernel.Money

	// quantity is the ordered count (at least 1)
	quantity int

	// flavor is the optional chosen variant
	flavor string

	isConstructed bool
}

// NewItem creates a validated order line.
// The menu item id and name are required, the unit price must not be negative,
// and the quantity must be at least 1.
func NewItem(menuItemID, name string, price kernel.Money, quantity int, flavor string) (Item, error) {
	if menuItemID == "" {
		return Item{}, errs.NewValueIsRequiredError("menuItemID")
	}
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("name")
	}
	if price.IsNegative() {
		return Item{}, errs.NewValueIsInvalidError("price")
	}
	if quantity < 1 {
		return Item{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxLineQuantity)
	}
	if quantity > maxLineQuantity {
		return Item{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxLineQuantity)
	}

	return Item{
		menuItemID:    menuItemID,
		name:          name,
		price:         price,
		quantity:      quantity,
		flavor:        flavor,
		isConstructed: true,
	}, nil
}

// maxLineQuantity bounds a single line; larger orders go through staff.
const maxLineQuantity = 99

// Validate ensures the Item was created via NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// MenuItemID returns the id of the menu item the line was built from.
func (i Item) MenuItemID() string {
	return i.menuItemID
}

// Name returns the display name frozen at checkout.
func (i Item) Name() string {
	return i.name
}

// Price returns the unit price frozen at checkout.
func (i Item) Price() kernel.Money {
	return i.price
}

// Quantity returns the ordered count.
func (i Item) Quantity() int {
	return i.quantity
}

// Flavor returns the chosen variant, or "" when none was selected.
func (i Item) Flavor() string {
	return i.flavor
}

// LineTotal returns price multiplied by quantity.
func (i Item) LineTotal() kernel.Money {
	return i.price * kernel.Money(i.quantity)
}
