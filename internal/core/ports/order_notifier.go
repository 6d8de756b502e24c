package ports

import (
	"context"

	"burgershop/internal/core/domain/model/order"
)

// OrderNotifier dispatches an order-status notification to the customer
// after every transition. Delivery is best-effort: a failed dispatch never
// rolls back the transition.
type OrderNotifier interface {
	NotifyStatusChanged(ctx context.Context, o *order.Order) error
}
