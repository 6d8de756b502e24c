package queries

import (
	"context"
	"database/sql"
	"encoding/json"

	"gorm.io/gorm"
)

// GetMenuQueryHandler reads the menu straight from the database.
type GetMenuQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuQueryHandler creates a handler for menu listing.
func NewGetMenuQueryHandler(db *gorm.DB) GetMenuQueryHandler {
	return GetMenuQueryHandler{db: db}
}

// Handle returns every menu item ordered by category then name.
func (h GetMenuQueryHandler) Handle(ctx context.Context, query GetMenuQuery) ([]MenuItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, description, price, category, image, flavors, featured
		FROM menu_items
		ORDER BY category, name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]MenuItemResponse, 0)
	for rows.Next() {
		var (
			item        MenuItemResponse
			description sql.NullString
			image       sql.NullString
			flavorsJSON []byte
		)
		if err := rows.Scan(
			&item.ID, &item.Name, &description, &item.Price,
			&item.Category, &image, &flavorsJSON, &item.Featured,
		); err != nil {
			return nil, err
		}
		if len(flavorsJSON) > 0 {
			if err := json.Unmarshal(flavorsJSON, &item.Flavors); err != nil {
				return nil, err
			}
		}
		item.Description = description.String
		item.Image = image.String
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
