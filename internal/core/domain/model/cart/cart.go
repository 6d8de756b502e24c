// Package cart provides the shopping cart aggregate owned by a single
// browsing session. Lines merge by menu item and flavor, quantity arithmetic
// removes lines that drop to zero, and checkout consumes the cart whole.
package cart

import (
	"burgershop/internal/core/domain/model/kernel"
	"burgershop/internal/pkg/errs"
)

// Line is one cart entry: a menu item reference with the price and name
// captured when it was added, a quantity of at least one, and an optional
// flavor variant.
type Line struct {
	MenuItemID string       `json:"id"`
	Name       string       `json:"name"`
	Price      kernel.Money `json:"price"`
	Quantity   int          `json:"quantity"`
	Flavor     string       `json:"flavor,omitempty"`
}

// Cart is the session's mutable list of lines. It is not safe for concurrent
// use; each session owns exactly one cart.
type Cart struct {
	lines []Line
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// Restore rebuilds a cart from persisted lines, dropping lines whose
// quantity is no longer positive.
func Restore(lines []Line) *Cart {
	c := &Cart{}
	for _, l := range lines {
		if l.Quantity > 0 {
			c.lines = append(c.lines, l)
		}
	}
	return c
}

// Add puts an item in the cart. If a line for the same menu item and flavor
// already exists its quantity grows instead of creating a duplicate line.
func (c *Cart) Add(menuItemID, name string, price kernel.Money, quantity int, flavor string) error {
	if menuItemID == "" {
		return errs.NewValueIsRequiredError("menuItemID")
	}
	if quantity < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, 99)
	}

	for i := range c.lines {
		if c.lines[i].MenuItemID == menuItemID && c.lines[i].Flavor == flavor {
			c.lines[i].Quantity += quantity
			return nil
		}
	}

	c.lines = append(c.lines, Line{
		MenuItemID: menuItemID,
		Name:       name,
		Price:      price,
		Quantity:   quantity,
		Flavor:     flavor,
	})
	return nil
}

// ChangeQuantity adjusts a line's quantity by delta. A line whose quantity
// drops to zero or below is removed. Unknown ids return a not-found error and
// leave the cart unchanged.
func (c *Cart) ChangeQuantity(menuItemID string, delta int) error {
	for i := range c.lines {
		if c.lines[i].MenuItemID == menuItemID {
			c.lines[i].Quantity += delta
			if c.lines[i].Quantity <= 0 {
				c.lines = append(c.lines[:i], c.lines[i+1:]...)
			}
			return nil
		}
	}
	return errs.NewObjectNotFoundError("menuItemID", menuItemID)
}

// Remove deletes every line for the given menu item.
func (c *Cart) Remove(menuItemID string) {
	kept := c.lines[:0]
	for _, l := range c.lines {
		if l.MenuItemID != menuItemID {
			kept = append(kept, l)
		}
	}
	c.lines = kept
}

// Clear empties the cart. Called on checkout success.
func (c *Cart) Clear() {
	c.lines = nil
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Count returns the total number of units across all lines.
func (c *Cart) Count() int {
	total := 0
	for _, l := range c.lines {
		total += l.Quantity
	}
	return total
}

// Subtotal returns the sum of price times quantity over all lines.
func (c *Cart) Subtotal() kernel.Money {
	var total kernel.Money
	for _, l := range c.lines {
		total += l.Price * kernel.Money(l.Quantity)
	}
	return total
}

// Lines returns a copy of the cart's lines in insertion order.
func (c *Cart) Lines() []Line {
	return append([]Line(nil), c.lines...)
}
