// Package menu provides the MenuItem aggregate managed through admin CRUD.
package menu

import (
	"errors"

	"burgershop/internal/core/domain/model/kernel"
	"burgershop/internal/pkg/errs"
)

// ErrMenuItemIsNotConstructed is returned when a MenuItem was not created
// through NewMenuItem or RestoreMenuItem.
var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem or RestoreMenuItem")

// MenuItem is a dish offered on the menu. Identity is immutable once created;
// everything else is editable by admins. Orders freeze name and price at
// checkout, so edits never rewrite order history.
type MenuItem struct {
	id          string
	name        string
	description string
	price       kernel.Money
	category    string
	image       string
	flavors     []string
	featured    bool

	isConstructed bool
}

// NewMenuItem creates a menu item with a required id, name, category, and a
// non-negative price.
func NewMenuItem(
	id, name, description string,
	price kernel.Money,
	category, image string,
	flavors []string,
	featured bool,
) (*MenuItem, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("id")
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if category == "" {
		return nil, errs.NewValueIsRequiredError("category")
	}
	if price.IsNegative() {
		return nil, errs.NewValueIsInvalidError("price")
	}

	return &MenuItem{
		id:            id,
		name:          name,
		description:   description,
		price:         price,
		category:      category,
		image:         image,
		flavors:       append([]string(nil), flavors...),
		featured:      featured,
		isConstructed: true,
	}, nil
}

// RestoreMenuItem reconstructs a menu item from persistence without re-running
// creation validation beyond the identity check.
func RestoreMenuItem(
	id, name, description string,
	price kernel.Money,
	category, image string,
	flavors []string,
	featured bool,
) (*MenuItem, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("id")
	}

	return &MenuItem{
		id:            id,
		name:          name,
		description:   description,
		price:         price,
		category:      category,
		image:         image,
		flavors:       append([]string(nil), flavors...),
		featured:      featured,
		isConstructed: true,
	}, nil
}

// Validate ensures the MenuItem was created via a constructor.
func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}

// ID returns the item's immutable identifier.
func (m *MenuItem) ID() string { return m.id }

// Name returns the display name.
func (m *MenuItem) Name() string { return m.name }

// Description returns the menu description text.
func (m *MenuItem) Description() string { return m.description }

// Price returns the current unit price.
func (m *MenuItem) Price() kernel.Money { return m.price }

// Category returns the menu section the item belongs to.
func (m *MenuItem) Category() string { return m.category }

// Image returns the item's image reference.
func (m *MenuItem) Image() string { return m.image }

// Flavors returns a copy of the available variants, empty when there are none.
func (m *MenuItem) Flavors() []string { return append([]string(nil), m.flavors...) }

// Featured reports whether the item is highlighted on the home page.
func (m *MenuItem) Featured() bool { return m.featured }

// Update edits every mutable field at once. The identity never changes.
func (m *MenuItem) Update(
	name, description string,
	price kernel.Money,
	category, image string,
	flavors []string,
	featured bool,
) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}
	if price.IsNegative() {
		return errs.NewValueIsInvalidError("price")
	}

	m.name = name
	m.description = description
	m.price = price
	m.category = category
	m.image = image
	m.flavors = append([]string(nil), flavors...)
	m.featured = featured
	return nil
}

// HasFlavor reports whether the given variant is offered.
func (m *MenuItem) HasFlavor(flavor string) bool {
	for _, f := range m.flavors {
		if f == flavor {
			return true
		}
	}
	return false
}
