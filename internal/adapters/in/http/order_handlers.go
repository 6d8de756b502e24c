package http

import (
	"net/http"
	"strconv"

	"burgershop/internal/core/application/usecases/commands"
	"burgershop/internal/core/application/usecases/queries"
	"burgershop/internal/core/domain/model/cart"
	"burgershop/internal/core/domain/model/kernel"
	"burgershop/internal/core/domain/model/order"
	"burgershop/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

// placeOrderRequest mirrors the checkout payload submitted by the storefront.
type placeOrderRequest struct {
	Customer      string      `json:"customer"`
	CustomerEmail string      `json:"customerEmail"`
	CustomerPhone string      `json:"customerPhone"`
	Address       string      `json:"address"`
	Barangay      string      `json:"barangay"`
	City          string      `json:"city"`
	Zip           string      `json:"zip"`
	OrderNotes    string      `json:"orderNotes"`
	Items         []cart.Line `json:"items"`

	PaymentMethod     string `json:"paymentMethod"`
	CardName          string `json:"cardName"`
	CardNumber        string `json:"cardNumber"`
	CardExpiry        string `json:"cardExpiry"`
	CardCvc           string `json:"cardCvc"`
	GCashReference    string `json:"gcashReference"`
	GCashProofDataURL string `json:"gcashProofDataUrl"`
}

// placeOrder handles POST /api/save-order - runs checkout and persists the
// resulting order.
func (s *Server) placeOrder(ctx echo.Context) error {
	var req placeOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	form := services.CheckoutForm{
		Name:       req.Customer,
		Email:      req.CustomerEmail,
		Phone:      req.CustomerPhone,
		Address:    req.Address,
		Barangay:   req.Barangay,
		City:       req.City,
		Zip:        req.Zip,
		OrderNotes: req.OrderNotes,
	}
	payment := services.PaymentSelection{
		Method:            req.PaymentMethod,
		CardHolder:        req.CardName,
		CardNumber:        req.CardNumber,
		CardExpiry:        req.CardExpiry,
		CardCVC:           req.CardCvc,
		GCashReference:    req.GCashReference,
		GCashProofDataURL: req.GCashProofDataURL,
	}

	cmd, err := commands.NewPlaceOrderCommand(req.Items, form, payment)
	if err != nil {
		return jsonError(ctx, err)
	}

	placed, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, queries.OrderResponseFromDomain(placed))
}

// listOrders handles GET /api/orders - every order, newest first.
func (s *Server) listOrders(ctx echo.Context) error {
	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return jsonError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orders)
}

// myOrders handles GET /api/my-orders - the authenticated customer's orders.
func (s *Server) myOrders(ctx echo.Context) error {
	id, _ := identityFrom(ctx)

	query, err := queries.NewGetCustomerOrdersQuery(id.Email)
	if err != nil {
		return jsonError(ctx, err)
	}

	orders, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return jsonError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orders)
}

// trackOrder handles GET /api/orders/:id - a single order for the tracking
// page. Authenticated customers can only see their own orders; staff and
// anonymous tracking-number lookups are unrestricted.
func (s *Server) trackOrder(ctx echo.Context) error {
	orderID, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return jsonError(ctx, err)
	}

	requesterEmail := ""
	if id, ok := identityFrom(ctx); ok && !id.Capabilities.ManageOrders {
		requesterEmail = id.Email
	}

	query, err := queries.NewTrackOrderQuery(orderID, requesterEmail)
	if err != nil {
		return jsonError(ctx, err)
	}

	resp, err := s.trackOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return jsonError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, resp)
}

// advanceOrderStatus handles POST /api/orders/:id/advance - one step along
// the kitchen workflow.
func (s *Server) advanceOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return jsonError(ctx, err)
	}

	cmd, err := commands.NewAdvanceOrderStatusCommand(orderID)
	if err != nil {
		return jsonError(ctx, err)
	}

	if err := s.advanceOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return jsonError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

type setStatusRequest struct {
	Status string `json:"status"`
}

// setOrderStatus handles PUT /api/orders/:id/status - a manual status
// correction to any active status.
func (s *Server) setOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return jsonError(ctx, err)
	}

	var req setStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return jsonError(ctx, err)
	}

	cmd, err := commands.NewSetOrderStatusCommand(orderID, status)
	if err != nil {
		return jsonError(ctx, err)
	}

	if err := s.setOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return jsonError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

type bulkSetStatusRequest struct {
	OrderIDs []string `json:"orderIds"`
	Status   string   `json:"status"`
}

// bulkSetOrderStatus handles PUT /api/orders/status - the same transition
// applied to a batch of orders atomically.
func (s *Server) bulkSetOrderStatus(ctx echo.Context) error {
	var req bulkSetStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return jsonError(ctx, err)
	}

	orderIDs := make([]kernel.OrderID, 0, len(req.OrderIDs))
	for _, raw := range req.OrderIDs {
		id, err := kernel.OrderIDFromString(raw)
		if err != nil {
			return jsonError(ctx, err)
		}
		orderIDs = append(orderIDs, id)
	}

	cmd, err := commands.NewBulkSetOrderStatusCommand(orderIDs, status)
	if err != nil {
		return jsonError(ctx, err)
	}

	if err := s.bulkSetOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return jsonError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// cancelOrder handles POST /api/orders/:id/cancel. The cancelling actor is
// derived from the caller's identity, never from the request body.
func (s *Server) cancelOrder(ctx echo.Context) error {
	orderID, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return jsonError(ctx, err)
	}

	cancelledBy := "customer"
	if id, ok := identityFrom(ctx); ok && id.Capabilities.ManageOrders {
		cancelledBy = "staff"
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, cancelledBy)
	if err != nil {
		return jsonError(ctx, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return jsonError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// clearAllOrders handles DELETE /api/orders - wipes the order collection.
func (s *Server) clearAllOrders(ctx echo.Context) error {
	cmd := commands.NewClearAllOrdersCommand()
	if err := s.clearAllOrdersHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return jsonError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// quoteResponse is the shipping quote for an address being typed into the
// checkout form.
type quoteResponse struct {
	Fee   float64 `json:"fee"`
	Known bool    `json:"known"`
}

// shippingQuote handles GET /api/shipping-quote - resolves the shipping fee
// for the given address query parameters. The subtotal matters where a
// municipality tariff waives the fee above a threshold.
func (s *Server) shippingQuote(ctx echo.Context) error {
	subtotal, _ := strconv.ParseFloat(ctx.QueryParam("subtotal"), 64)

	quote := s.checkout.Quote(
		ctx.QueryParam("city"),
		ctx.QueryParam("zip"),
		ctx.QueryParam("barangay"),
		kernel.Money(subtotal),
	)
	return ctx.JSON(http.StatusOK, quoteResponse{
		Fee:   float64(quote.Fee),
		Known: quote.Known,
	})
}
