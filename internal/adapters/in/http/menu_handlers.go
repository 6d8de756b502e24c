package http

import (
	"net/http"

	"burgershop/internal/core/application/usecases/commands"
	"burgershop/internal/core/application/usecases/queries"
	"burgershop/internal/core/domain/model/kernel"
	"burgershop/internal/core/domain/model/menu"

	"github.com/labstack/echo/v4"
)

// menuItemRequest carries the editable menu item fields for create and
// update.
type menuItemRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Image       string   `json:"image"`
	Flavors     []string `json:"flavors"`
	Featured    bool     `json:"featured"`
}

func (r menuItemRequest) fields() commands.MenuItemFields {
	return commands.MenuItemFields{
		Name:        r.Name,
		Description: r.Description,
		Price:       kernel.Money(r.Price),
		Category:    r.Category,
		Image:       r.Image,
		Flavors:     r.Flavors,
		Featured:    r.Featured,
	}
}

func menuItemResponseFromDomain(item *menu.MenuItem) queries.MenuItemResponse {
	return queries.MenuItemResponse{
		ID:          item.ID(),
		Name:        item.Name(),
		Description: item.Description(),
		Price:       float64(item.Price()),
		Category:    item.Category(),
		Image:       item.Image(),
		Flavors:     item.Flavors(),
		Featured:    item.Featured(),
	}
}

// getMenu handles GET /api/menu - the full menu, grouped for display.
func (s *Server) getMenu(ctx echo.Context) error {
	items, err := s.getMenuHandler.Handle(ctx.Request().Context(), queries.NewGetMenuQuery())
	if err != nil {
		return jsonError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, items)
}

// createMenuItem handles POST /api/menu - adds a dish to the menu.
func (s *Server) createMenuItem(ctx echo.Context) error {
	var req menuItemRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	cmd := commands.NewCreateMenuItemCommand(req.fields())
	item, err := s.createMenuItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, menuItemResponseFromDomain(item))
}

// updateMenuItem handles PUT /api/menu/:id - replaces a dish's editable
// fields.
func (s *Server) updateMenuItem(ctx echo.Context) error {
	var req menuItemRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewUpdateMenuItemCommand(ctx.Param("id"), req.fields())
	if err != nil {
		return jsonError(ctx, err)
	}

	if err := s.updateMenuItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return jsonError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// deleteMenuItem handles DELETE /api/menu/:id - removes a dish. Orders keep
// their frozen item copies.
func (s *Server) deleteMenuItem(ctx echo.Context) error {
	cmd, err := commands.NewDeleteMenuItemCommand(ctx.Param("id"))
	if err != nil {
		return jsonError(ctx, err)
	}

	if err := s.deleteMenuItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return jsonError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
