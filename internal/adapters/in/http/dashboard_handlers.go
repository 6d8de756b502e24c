package http

import (
	"net/http"
	"strconv"

	"burgershop/internal/core/application/usecases/queries"
	"burgershop/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// The dashboard aggregates carry no JSON tags in the domain, so the adapter
// owns their wire shape.

type dashboardMetricsResponse struct {
	TodaySales        float64 `json:"todaySales"`
	MonthSales        float64 `json:"monthSales"`
	TotalOrders       int     `json:"totalOrders"`
	PendingOrders     int     `json:"pendingOrders"`
	CompletedOrders   int     `json:"completedOrders"`
	CancelledOrders   int     `json:"cancelledOrders"`
	RevenueYTD        float64 `json:"revenueYtd"`
	OverallRevenue    float64 `json:"overallRevenue"`
	AverageOrderValue float64 `json:"averageOrderValue"`
}

type seriesPointResponse struct {
	Date      string  `json:"date"`
	Completed float64 `json:"completed"`
	Preparing float64 `json:"preparing"`
	Cancelled float64 `json:"cancelled"`
}

type topItemResponse struct {
	MenuItemID string  `json:"id"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	Revenue    float64 `json:"revenue"`
}

type dashboardResponse struct {
	Metrics  dashboardMetricsResponse `json:"metrics"`
	Series   []seriesPointResponse    `json:"series"`
	TopItems []topItemResponse        `json:"topItems"`
}

func dashboardResponseFrom(resp queries.GetDashboardQueryResponse) dashboardResponse {
	out := dashboardResponse{
		Metrics: dashboardMetricsResponse{
			TodaySales:        float64(resp.Metrics.TodaySales),
			MonthSales:        float64(resp.Metrics.MonthSales),
			TotalOrders:       resp.Metrics.TotalOrders,
			PendingOrders:     resp.Metrics.PendingOrders,
			CompletedOrders:   resp.Metrics.CompletedOrders,
			CancelledOrders:   resp.Metrics.CancelledOrders,
			RevenueYTD:        float64(resp.Metrics.RevenueYTD),
			OverallRevenue:    float64(resp.Metrics.OverallRevenue),
			AverageOrderValue: float64(resp.Metrics.AverageOrderValue),
		},
		Series:   make([]seriesPointResponse, 0, len(resp.Series)),
		TopItems: make([]topItemResponse, 0, len(resp.TopItems)),
	}

	for _, p := range resp.Series {
		out.Series = append(out.Series, seriesPointResponse{
			Date:      p.Date.Format("2006-01-02"),
			Completed: float64(p.Completed),
			Preparing: float64(p.Preparing),
			Cancelled: float64(p.Cancelled),
		})
	}
	for _, item := range resp.TopItems {
		out.TopItems = append(out.TopItems, topItemResponse{
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			Revenue:    float64(item.Revenue),
		})
	}
	return out
}

// dashboard handles GET /api/dashboard?days=&municipality= - headline
// metrics, the sales series, and the top-selling items.
func (s *Server) dashboard(ctx echo.Context) error {
	days := 0
	if raw := ctx.QueryParam("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, errorResponse{
				Code:    http.StatusBadRequest,
				Message: "days must be a number",
			})
		}
		days = parsed
	}

	var municipality kernel.MunicipalitySlug
	if raw := ctx.QueryParam("municipality"); raw != "" {
		municipality = kernel.NewMunicipalitySlug(raw)
	}

	query, err := queries.NewGetDashboardQuery(days, municipality)
	if err != nil {
		return jsonError(ctx, err)
	}

	resp, err := s.getDashboardHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return jsonError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, dashboardResponseFrom(resp))
}
