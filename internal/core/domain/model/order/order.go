package order

import (
	"errors"
	"time"

	"burgershop/internal/core/domain/model/kernel"
	"burgershop/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a customer order in the system. It is the aggregate root that
// manages the order lifecycle from checkout through delivery or cancellation.
//
// Order follows these invariants:
//   - Must have a valid order identifier; the identifier never changes
//   - Must contain at least one line item
//   - total equals subtotal plus shippingFee at creation
//   - statusTimestamps holds an entry for every status the order passed
//     through; stamps of prior statuses are never removed
//   - Status transitions follow the rules encoded in Status
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	id kernel.OrderID

	customer      string
	customerEmail string
	customerPhone string

	deliveryAddress  string
	deliveryBarangay string
	deliveryCity     string
	zip              string
	municipality     kernel.MunicipalitySlug

	items      []Item
	orderNotes string

	subtotal    kernel.Money
	shippingFee kernel.Money
	total       kernel.Money

	status           Status
	statusTimestamps map[Status]int64

	paymentMethod  PaymentMethod
	paymentDetails PaymentDetails

	deliveryTime string
	placedAt     int64

	cancelledBy string
	cancelledAt int64

	isConstructed bool
}

// NewOrderParams carries the validated checkout output into the constructor.
type NewOrderParams struct {
	ID               kernel.OrderID
	Customer         string
	CustomerEmail    string
	CustomerPhone    string
	DeliveryAddress  string
	DeliveryBarangay string
	DeliveryCity     string
	Zip              string
	Municipality     kernel.MunicipalitySlug
	Items            []Item
	OrderNotes       string
	Subtotal         kernel.Money
	ShippingFee      kernel.Money
	PaymentDetails   PaymentDetails
	DeliveryTime     string
}

// NewOrder creates a new Order in the preparing state with its creation
// timestamp stamped. The total is derived from subtotal and shipping fee, so
// the pricing invariant holds by construction.
//
// Returns a validation error if the identifier is invalid, the customer or
// contact fields are empty, there are no items, or any amount is negative.
func NewOrder(p NewOrderParams) (*Order, error) {
	if err := p.ID.Validate(); err != nil {
		return nil, err
	}
	if p.Customer == "" {
		return nil, errs.NewValueIsRequiredError("customer")
	}
	if p.CustomerEmail == "" {
		return nil, errs.NewValueIsRequiredError("customerEmail")
	}
	if len(p.Items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}
	for _, item := range p.Items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}
	if p.Subtotal.IsNegative() {
		return nil, errs.NewValueIsInvalidError("subtotal")
	}
	if p.ShippingFee.IsNegative() {
		return nil, errs.NewValueIsInvalidError("shippingFee")
	}

	now := time.Now().UnixMilli()
	o := &Order{
		id:               p.ID,
		customer:         p.Customer,
		customerEmail:    p.CustomerEmail,
		customerPhone:    p.CustomerPhone,
		deliveryAddress:  p.DeliveryAddress,
		deliveryBarangay: p.DeliveryBarangay,
		deliveryCity:     p.DeliveryCity,
		zip:              p.Zip,
		municipality:     p.Municipality,
		items:            append([]Item(nil), p.Items...),
		orderNotes:       p.OrderNotes,
		subtotal:         p.Subtotal,
		shippingFee:      p.ShippingFee,
		total:            p.Subtotal + p.ShippingFee,
		status:           Preparing,
		statusTimestamps: map[Status]int64{Preparing: now},
		paymentMethod:    p.PaymentDetails.Method,
		paymentDetails:   p.PaymentDetails,
		deliveryTime:     p.DeliveryTime,
		placedAt:         now,
		isConstructed:    true,
	}
	return o, nil
}

// RestoreOrderParams carries a persisted order row back into the domain.
type RestoreOrderParams struct {
	ID               kernel.OrderID
	Customer         string
	CustomerEmail    string
	CustomerPhone    string
	DeliveryAddress  string
	DeliveryBarangay string
	DeliveryCity     string
	Zip              string
	Municipality     kernel.MunicipalitySlug
	Items            []Item
	OrderNotes       string
	Subtotal         kernel.Money
	ShippingFee      kernel.Money
	Total            kernel.Money
	Status           Status
	StatusTimestamps map[Status]int64
	PaymentMethod    PaymentMethod
	PaymentDetails   PaymentDetails
	DeliveryTime     string
	PlacedAt         int64
	CancelledBy      string
	CancelledAt      int64
}

// RestoreOrder reconstructs an Order from persistence. Unlike NewOrder it
// accepts the persisted total verbatim and any known status, including the
// legacy completed value.
func RestoreOrder(p RestoreOrderParams) (*Order, error) {
	if err := p.ID.Validate(); err != nil {
		return nil, err
	}
	if err := p.Status.Validate(); err != nil {
		return nil, err
	}

	timestamps := make(map[Status]int64, len(p.StatusTimestamps))
	for s, ts := range p.StatusTimestamps {
		timestamps[s] = ts
	}

	return &Order{
		id:               p.ID,
		customer:         p.Customer,
		customerEmail:    p.CustomerEmail,
		customerPhone:    p.CustomerPhone,
		deliveryAddress:  p.DeliveryAddress,
		deliveryBarangay: p.DeliveryBarangay,
		deliveryCity:     p.DeliveryCity,
		zip:              p.Zip,
		municipality:     p.Municipality,
		items:            append([]Item(nil), p.Items...),
		orderNotes:       p.OrderNotes,
		subtotal:         p.Subtotal,
		shippingFee:      p.ShippingFee,
		total:            p.Total,
		status:           p.Status,
		statusTimestamps: timestamps,
		paymentMethod:    p.PaymentMethod,
		paymentDetails:   p.PaymentDetails,
		deliveryTime:     p.DeliveryTime,
		placedAt:         p.PlacedAt,
		cancelledBy:      p.CancelledBy,
		cancelledAt:      p.CancelledAt,
		isConstructed:    true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's immutable identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// Customer returns the customer's display name.
func (o *Order) Customer() string {
	return o.customer
}

// CustomerEmail returns the customer's email address.
func (o *Order) CustomerEmail() string {
	return o.customerEmail
}

// CustomerPhone returns the customer's phone number.
func (o *Order) CustomerPhone() string {
	return o.customerPhone
}

// DeliveryAddress returns the full delivery address line.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// DeliveryBarangay returns the delivery barangay, or "" if not given.
func (o *Order) DeliveryBarangay() string {
	return o.deliveryBarangay
}

// DeliveryCity returns the delivery city as typed by the customer.
func (o *Order) DeliveryCity() string {
	return o.deliveryCity
}

// Zip returns the delivery postal code.
func (o *Order) Zip() string {
	return o.zip
}

// Municipality returns the normalized municipality slug.
func (o *Order) Municipality() kernel.MunicipalitySlug {
	return o.municipality
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// OrderNotes returns the customer's free-form notes.
func (o *Order) OrderNotes() string {
	return o.orderNotes
}

// Subtotal returns the sum of the line totals.
func (o *Order) Subtotal() kernel.Money {
	return o.subtotal
}

// ShippingFee returns the resolved delivery fee.
func (o *Order) ShippingFee() kernel.Money {
	return o.shippingFee
}

// Total returns subtotal plus shipping fee.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// StatusTimestamps returns a copy of the status -> epoch-ms stamp map.
func (o *Order) StatusTimestamps() map[Status]int64 {
	out := make(map[Status]int64, len(o.statusTimestamps))
	for s, ts := range o.statusTimestamps {
		out[s] = ts
	}
	return out
}

// PaymentMethod returns how the customer pays.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// PaymentDetails returns the persisted method-specific payment data.
func (o *Order) PaymentDetails() PaymentDetails {
	return o.paymentDetails
}

// DeliveryTime returns the estimated delivery window shown to the customer.
func (o *Order) DeliveryTime() string {
	return o.deliveryTime
}

// PlacedAt returns the creation time in epoch milliseconds.
func (o *Order) PlacedAt() int64 {
	return o.placedAt
}

// CancelledBy returns who cancelled the order, or "" if it was not cancelled.
func (o *Order) CancelledBy() string {
	return o.cancelledBy
}

// CancelledAt returns the cancellation time in epoch milliseconds, or 0.
func (o *Order) CancelledAt() int64 {
	return o.cancelledAt
}

// Advance moves the order to the next step of the kitchen workflow:
// preparing -> on the way -> delivered. From any other status, including the
// terminal ones, the order resets to preparing. The new status is stamped.
//
// Returns the status the order advanced to.
func (o *Order) Advance() Status {
	o.status = o.status.Advance()
	o.stamp(o.status)
	return o.status
}

// SetStatus sets the order to one of the three active statuses, as selected
// manually by staff, and stamps it. Cancelled and completed are rejected;
// they are reached through Cancel or never produced anew.
func (o *Order) SetStatus(s Status) error {
	if err := s.ValidateActive(); err != nil {
		return err
	}

	o.status = s
	o.stamp(s)
	return nil
}

// Cancel cancels the order on behalf of the given actor.
//
// Cancellation is allowed only while preparing. An order that is on the way,
// delivered, completed, or already cancelled rejects the request with an
// InvalidTransitionError and remains unchanged.
func (o *Order) Cancel(by string) error {
	if err := o.status.ValidateCancel(); err != nil {
		return err
	}

	now := time.Now().UnixMilli()
	o.status = Cancelled
	o.stamp(Cancelled)
	o.cancelledBy = by
	o.cancelledAt = now
	return nil
}

// stamp records the transition time for the given status. Re-entering a status
// overwrites its own stamp; stamps of other statuses are never touched.
func (o *Order) stamp(s Status) {
	if o.statusTimestamps == nil {
		o.statusTimestamps = make(map[Status]int64)
	}
	o.statusTimestamps[s] = time.Now().UnixMilli()
}
