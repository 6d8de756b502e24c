package ports

import (
	"context"

	"burgershop/internal/core/domain/model/kernel"
	"burgershop/internal/core/domain/model/order"
)

// OrderChange describes a mutation of the order collection, delivered to
// change-feed subscribers so other views can refresh their copies.
type OrderChange struct {
	// OrderID identifies the changed order; empty for collection-wide changes.
	OrderID kernel.OrderID

	// Kind is one of "saved", "updated", or "cleared".
	Kind string
}

// OrderStore is the persistence facade the checkout flow writes through.
// Implementations attempt remote persistence first and fall back to a local
// durable cache on any failure, so a placed order is never lost. Reads are
// served from the remote store when it is reachable; the local cache answers
// when it is not. Remote and local copies are best-effort duplicates by id;
// no consistency between them is guaranteed.
type OrderStore interface {
	// Save persists the order, remote first with local fallback.
	// A PersistenceUnavailable error from the remote side is not returned
	// to the caller once the local write succeeds.
	Save(ctx context.Context, o *order.Order) error

	// Find retrieves an order by id, or nil when unknown.
	Find(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// List retrieves all known orders, newest first.
	List(ctx context.Context) ([]*order.Order, error)

	// Clear drops the local cache and publishes a cleared change. Remote
	// deletion is the caller's job; Clear only keeps the fallback copy from
	// resurrecting orders an admin already wiped.
	Clear(ctx context.Context) error

	// Subscribe registers a change-feed listener. The returned function
	// removes the subscription. Notifications are delivered asynchronously
	// and may be dropped if the subscriber is slow.
	Subscribe(fn func(OrderChange)) (unsubscribe func())
}
