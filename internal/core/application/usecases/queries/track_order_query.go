package queries

import (
	"errors"
	"strings"

	"burgershop/internal/core/domain/model/kernel"
	"burgershop/internal/pkg/guard"
)

var ErrTrackOrderQueryIsNotConstructed = errors.New(
	"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
)

// TrackOrderQuery looks up a single order for the tracking page.
//
// A non-empty requester email restricts the lookup to that customer's own
// orders; staff and admin lookups pass an empty email for unrestricted
// access. A restricted miss reports not-found rather than forbidden, so the
// tracking page never leaks whether an order id exists.
type TrackOrderQuery struct {
	orderID        kernel.OrderID
	requesterEmail string

	guard guard.ConstructorGuard
}

// NewTrackOrderQuery creates a tracking query for the given order.
func NewTrackOrderQuery(orderID kernel.OrderID, requesterEmail string) (TrackOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return TrackOrderQuery{}, err
	}

	return TrackOrderQuery{
		orderID:        orderID,
		requesterEmail: strings.ToLower(strings.TrimSpace(requesterEmail)),
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

// OrderID returns the identifier being tracked.
func (q TrackOrderQuery) OrderID() kernel.OrderID {
	return q.orderID
}

// RequesterEmail returns the normalized requester email, or "" for
// unrestricted staff access.
func (q TrackOrderQuery) RequesterEmail() string {
	return q.requesterEmail
}
