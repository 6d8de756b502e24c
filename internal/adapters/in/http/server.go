// Package http is the inbound HTTP adapter. It translates echo requests into
// commands and queries, maps domain errors onto status codes, and enforces
// authentication, capability checks, and per-caller rate limits.
package http

import (
	"context"
	"net/http"

	"burgershop/internal/core/application/usecases/commands"
	"burgershop/internal/core/application/usecases/queries"
	"burgershop/internal/core/domain/model/user"
	"burgershop/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

// Deps bundles everything the server needs. Grouping them in a struct keeps
// the composition root readable; every field is required.
type Deps struct {
	PlaceOrderHandler         commands.PlaceOrderCommandHandler
	AdvanceOrderStatusHandler commands.AdvanceOrderStatusCommandHandler
	SetOrderStatusHandler     commands.SetOrderStatusCommandHandler
	BulkSetOrderStatusHandler commands.BulkSetOrderStatusCommandHandler
	CancelOrderHandler        commands.CancelOrderCommandHandler
	ClearAllOrdersHandler     commands.ClearAllOrdersCommandHandler
	CreateMenuItemHandler     commands.CreateMenuItemCommandHandler
	UpdateMenuItemHandler     commands.UpdateMenuItemCommandHandler
	DeleteMenuItemHandler     commands.DeleteMenuItemCommandHandler
	RegisterUserHandler       commands.RegisterUserCommandHandler

	GetAllOrdersHandler      queries.GetAllOrdersQueryHandler
	GetCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler
	TrackOrderHandler        queries.TrackOrderQueryHandler
	GetDashboardHandler      queries.GetDashboardQueryHandler
	GetMenuHandler           queries.GetMenuQueryHandler
	AuthenticateUserHandler  queries.AuthenticateUserQueryHandler

	Checkout services.CheckoutService
	Tokens   TokenIssuer

	// Ping reports whether the database answers. Used by the health endpoint.
	Ping func(ctx context.Context) error
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	placeOrderHandler         commands.PlaceOrderCommandHandler
	advanceOrderStatusHandler commands.AdvanceOrderStatusCommandHandler
	setOrderStatusHandler     commands.SetOrderStatusCommandHandler
	bulkSetOrderStatusHandler commands.BulkSetOrderStatusCommandHandler
	cancelOrderHandler        commands.CancelOrderCommandHandler
	clearAllOrdersHandler     commands.ClearAllOrdersCommandHandler
	createMenuItemHandler     commands.CreateMenuItemCommandHandler
	updateMenuItemHandler     commands.UpdateMenuItemCommandHandler
	deleteMenuItemHandler     commands.DeleteMenuItemCommandHandler
	registerUserHandler       commands.RegisterUserCommandHandler

	getAllOrdersHandler      queries.GetAllOrdersQueryHandler
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler
	trackOrderHandler        queries.TrackOrderQueryHandler
	getDashboardHandler      queries.GetDashboardQueryHandler
	getMenuHandler           queries.GetMenuQueryHandler
	authenticateUserHandler  queries.AuthenticateUserQueryHandler

	checkout services.CheckoutService
	tokens   TokenIssuer
	ping     func(ctx context.Context) error

	limiter     *RateLimiter
	authLimiter *RateLimiter
}

// NewServer creates the HTTP server over the given dependencies.
func NewServer(deps Deps) *Server {
	return &Server{
		placeOrderHandler:         deps.PlaceOrderHandler,
		advanceOrderStatusHandler: deps.AdvanceOrderStatusHandler,
		setOrderStatusHandler:     deps.SetOrderStatusHandler,
		bulkSetOrderStatusHandler: deps.BulkSetOrderStatusHandler,
		cancelOrderHandler:        deps.CancelOrderHandler,
		clearAllOrdersHandler:     deps.ClearAllOrdersHandler,
		createMenuItemHandler:     deps.CreateMenuItemHandler,
		updateMenuItemHandler:     deps.UpdateMenuItemHandler,
		deleteMenuItemHandler:     deps.DeleteMenuItemHandler,
		registerUserHandler:       deps.RegisterUserHandler,

		getAllOrdersHandler:      deps.GetAllOrdersHandler,
		getCustomerOrdersHandler: deps.GetCustomerOrdersHandler,
		trackOrderHandler:        deps.TrackOrderHandler,
		getDashboardHandler:      deps.GetDashboardHandler,
		getMenuHandler:           deps.GetMenuHandler,
		authenticateUserHandler:  deps.AuthenticateUserHandler,

		checkout: deps.Checkout,
		tokens:   deps.Tokens,
		ping:     deps.Ping,

		// General traffic gets a generous budget; credential endpoints a
		// much tighter one to slow down guessing.
		limiter:     NewRateLimiter(20, 40),
		authLimiter: NewRateLimiter(1, 5),
	}
}

func manageOrders(c user.Capabilities) bool  { return c.ManageOrders }
func manageMenu(c user.Capabilities) bool    { return c.ManageMenu }
func manageUsers(c user.Capabilities) bool   { return c.ManageUsers }
func viewDashboard(c user.Capabilities) bool { return c.ViewDashboard }

// RegisterRoutes mounts every endpoint under /api.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api", s.authenticate, s.limiter.Middleware)

	// Public.
	api.GET("/db-test", s.healthCheck)
	api.GET("/menu", s.getMenu)
	api.GET("/shipping-quote", s.shippingQuote)
	api.POST("/save-order", s.placeOrder)
	api.GET("/orders/:id", s.trackOrder)
	api.POST("/orders/:id/cancel", s.cancelOrder)
	api.POST("/users", s.registerUser, s.authLimiter.Middleware)
	api.POST("/login", s.login, s.authLimiter.Middleware)

	// Authenticated customers.
	api.GET("/my-orders", s.myOrders, requireAuth)

	// Staff.
	api.GET("/orders", s.listOrders, requireCapability(manageOrders))
	api.POST("/orders/:id/advance", s.advanceOrderStatus, requireCapability(manageOrders))
	api.PUT("/orders/:id/status", s.setOrderStatus, requireCapability(manageOrders))
	api.PUT("/orders/status", s.bulkSetOrderStatus, requireCapability(manageOrders))
	api.GET("/dashboard", s.dashboard, requireCapability(viewDashboard))

	// Menu management.
	api.POST("/menu", s.createMenuItem, requireCapability(manageMenu))
	api.PUT("/menu/:id", s.updateMenuItem, requireCapability(manageMenu))
	api.DELETE("/menu/:id", s.deleteMenuItem, requireCapability(manageMenu))

	// Admin only.
	api.DELETE("/orders", s.clearAllOrders, requireCapability(manageUsers))
}

// healthCheck handles GET /api/db-test - reports database connectivity.
func (s *Server) healthCheck(ctx echo.Context) error {
	if err := s.ping(ctx.Request().Context()); err != nil {
		return ctx.JSON(http.StatusServiceUnavailable, map[string]any{
			"ok":    false,
			"error": "database unreachable",
		})
	}
	return ctx.JSON(http.StatusOK, map[string]any{"ok": true})
}
