package queries

import (
	"context"
	"time"

	"burgershop/internal/core/domain/services"
	"burgershop/internal/core/ports"
)

// GetDashboardQueryResponse bundles everything the admin dashboard renders.
type GetDashboardQueryResponse struct {
	Metrics  services.Metrics
	Series   []services.SeriesPoint
	TopItems []services.TopItem
}

// GetDashboardQueryHandler loads the order collection and aggregates it in
// memory. Reading through the order store keeps locally cached fallback
// orders visible on the dashboard.
type GetDashboardQueryHandler struct {
	store ports.OrderStore
	agg   services.DashboardAggregator
	now   func() time.Time
}

// NewGetDashboardQueryHandler creates a handler for dashboard queries.
func NewGetDashboardQueryHandler(store ports.OrderStore, agg services.DashboardAggregator) GetDashboardQueryHandler {
	return GetDashboardQueryHandler{store: store, agg: agg, now: time.Now}
}

// Handle computes the dashboard aggregates as of now.
func (h GetDashboardQueryHandler) Handle(ctx context.Context, query GetDashboardQuery) (GetDashboardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardQueryResponse{}, err
	}

	orders, err := h.store.List(ctx)
	if err != nil {
		return GetDashboardQueryResponse{}, err
	}

	asOf := h.now()
	return GetDashboardQueryResponse{
		Metrics:  h.agg.ComputeMetrics(orders, asOf),
		Series:   h.agg.SalesSeries(orders, query.RangeDays(), asOf, query.Municipality()),
		TopItems: h.agg.TopItems(orders, query.RangeDays(), asOf, query.Municipality()),
	}, nil
}
