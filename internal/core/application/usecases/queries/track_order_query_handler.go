package queries

import (
	"context"
	"strings"

	"burgershop/internal/core/ports"
	"burgershop/internal/pkg/errs"
)

// TrackOrderQueryHandler resolves a tracking lookup through the order store,
// so orders parked in the local fallback cache remain trackable during a
// remote outage.
type TrackOrderQueryHandler struct {
	store ports.OrderStore
}

// NewTrackOrderQueryHandler creates a handler for order tracking lookups.
func NewTrackOrderQueryHandler(store ports.OrderStore) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{store: store}
}

// Handle returns the tracked order, applying the requester access rule.
func (h TrackOrderQueryHandler) Handle(ctx context.Context, query TrackOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	aggregate, err := h.store.Find(ctx, query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}
	if aggregate == nil {
		return OrderResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
	}

	if email := query.RequesterEmail(); email != "" &&
		!strings.EqualFold(aggregate.CustomerEmail(), email) {
		return OrderResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
	}

	return OrderResponseFromDomain(aggregate), nil
}
