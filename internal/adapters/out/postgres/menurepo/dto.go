// Package menurepo implements the menu item repository over PostgreSQL with
// GORM. Flavors are a jsonb column so variants stay a simple string list.
package menurepo

import (
	"encoding/json"

	"burgershop/internal/core/domain/model/kernel"
	"burgershop/internal/core/domain/model/menu"
)

// MenuItemDTO represents the database structure of a menu item row.
type MenuItemDTO struct {
	ID          string `gorm:"primaryKey"`
	Name        string
	Description string
	Price       float64
	Category    string `gorm:"index"`
	Image       string
	Flavors     []byte `gorm:"type:jsonb"`
	Featured    bool
}

// TableName overrides the table name used by GORM.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// fromDomain converts a menu item to its database representation.
func fromDomain(item *menu.MenuItem) (MenuItemDTO, error) {
	flavors := item.Flavors()
	if flavors == nil {
		flavors = []string{}
	}
	flavorsJSON, err := json.Marshal(flavors)
	if err != nil {
		return MenuItemDTO{}, err
	}

	return MenuItemDTO{
		ID:          item.ID(),
		Name:        item.Name(),
		Description: item.Description(),
		Price:       float64(item.Price()),
		Category:    item.Category(),
		Image:       item.Image(),
		Flavors:     flavorsJSON,
		Featured:    item.Featured(),
	}, nil
}

// toDomain converts a database row to a menu item.
func toDomain(dto MenuItemDTO) (*menu.MenuItem, error) {
	var flavors []string
	if len(dto.Flavors) > 0 {
		if err := json.Unmarshal(dto.Flavors, &flavors); err != nil {
			return nil, err
		}
	}

	return menu.RestoreMenuItem(
		dto.ID,
		dto.Name,
		dto.Description,
		kernel.Money(dto.Price),
		dto.Category,
		dto.Image,
		flavors,
		dto.Featured,
	)
}
