// Package ports defines the contracts between the application core and
// infrastructure: repositories, the unit of work, the order change feed,
// and the external payment-proof and notification collaborators.
// These interfaces enable dependency inversion and testability.
package ports

import (
	"context"

	"burgershop/internal/core/domain/model/kernel"
	"burgershop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its identifier.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// GetAll retrieves every persisted order, newest first.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllByCustomerEmail retrieves a customer's orders, newest first.
	// The email is matched case-insensitively.
	GetAllByCustomerEmail(ctx context.Context, email string) ([]*order.Order, error)

	// DeleteAll removes every persisted order. Admin bulk operation only.
	DeleteAll(ctx context.Context) error
}
