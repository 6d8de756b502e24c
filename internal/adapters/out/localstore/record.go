// Package localstore provides a durable on-disk order cache. It is the
// fallback half of the dual-write order store: orders land here when
// PostgreSQL is unreachable and are re-pushed later by the resync job.
// Records are kept in a single JSON file rewritten atomically on every
// mutation; the volume is one restaurant's orders, so a full rewrite is cheap.
package localstore

import (
	"burgershop/internal/core/domain/model/kernel"
	"burgershop/internal/core/domain/model/order"
)

// itemRecord is one order line in the cache file.
type itemRecord struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Flavor   string  `json:"flavor,omitempty"`
}

// orderRecord is the JSON shape of one cached order. Pending marks orders
// that have not reached PostgreSQL yet.
type orderRecord struct {
	ID               string               `json:"id"`
	Customer         string               `json:"customer"`
	CustomerEmail    string               `json:"customerEmail"`
	CustomerPhone    string               `json:"customerPhone"`
	Address          string               `json:"address"`
	Barangay         string               `json:"barangay,omitempty"`
	City             string               `json:"city"`
	Zip              string               `json:"zip"`
	Municipality     string               `json:"municipality,omitempty"`
	Items            []itemRecord         `json:"items"`
	OrderNotes       string               `json:"orderNotes,omitempty"`
	Subtotal         float64              `json:"subtotal"`
	ShippingFee      float64              `json:"shippingFee"`
	Total            float64              `json:"total"`
	Status           string               `json:"status"`
	StatusTimestamps map[string]int64     `json:"statusTimestamps,omitempty"`
	PaymentMethod    string               `json:"paymentMethod"`
	PaymentDetails   order.PaymentDetails `json:"paymentDetails"`
	DeliveryTime     string               `json:"deliveryTime,omitempty"`
	Timestamp        int64                `json:"timestamp"`
	CancelledBy      string               `json:"cancelledBy,omitempty"`
	CancelledAt      int64                `json:"cancelledAt,omitempty"`

	Pending bool `json:"pending,omitempty"`
}

// recordFromDomain converts an order aggregate to its cache representation.
func recordFromDomain(o *order.Order, pending bool) orderRecord {
	items := make([]itemRecord, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, itemRecord{
			ID:       item.MenuItemID(),
			Name:     item.Name(),
			Price:    float64(item.Price()),
			Quantity: item.Quantity(),
			Flavor:   item.Flavor(),
		})
	}

	timestamps := make(map[string]int64, len(o.StatusTimestamps()))
	for s, ts := range o.StatusTimestamps() {
		timestamps[s.String()] = ts
	}

	return orderRecord{
		ID:               o.ID().String(),
		Customer:         o.Customer(),
		CustomerEmail:    o.CustomerEmail(),
		CustomerPhone:    o.CustomerPhone(),
		Address:          o.DeliveryAddress(),
		Barangay:         o.DeliveryBarangay(),
		City:             o.DeliveryCity(),
		Zip:              o.Zip(),
		Municipality:     o.Municipality().String(),
		Items:            items,
		OrderNotes:       o.OrderNotes(),
		Subtotal:         float64(o.Subtotal()),
		ShippingFee:      float64(o.ShippingFee()),
		Total:            float64(o.Total()),
		Status:           o.Status().String(),
		StatusTimestamps: timestamps,
		PaymentMethod:    string(o.PaymentMethod()),
		PaymentDetails:   o.PaymentDetails(),
		DeliveryTime:     o.DeliveryTime(),
		Timestamp:        o.PlacedAt(),
		CancelledBy:      o.CancelledBy(),
		CancelledAt:      o.CancelledAt(),
		Pending:          pending,
	}
}

// recordToDomain converts a cache record back to an order aggregate.
func recordToDomain(rec orderRecord) (*order.Order, error) {
	id, err := kernel.OrderIDFromString(rec.ID)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(rec.Status)
	if err != nil {
		return nil, err
	}

	method, err := order.PaymentMethodFromString(rec.PaymentMethod)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(rec.Items))
	for _, it := range rec.Items {
		item, err := order.NewItem(it.ID, it.Name, kernel.Money(it.Price), it.Quantity, it.Flavor)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	timestamps := make(map[order.Status]int64, len(rec.StatusTimestamps))
	for key, ts := range rec.StatusTimestamps {
		s, err := order.StatusFromString(key)
		if err != nil {
			continue
		}
		timestamps[s] = ts
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:               id,
		Customer:         rec.Customer,
		CustomerEmail:    rec.CustomerEmail,
		CustomerPhone:    rec.CustomerPhone,
		DeliveryAddress:  rec.Address,
		DeliveryBarangay: rec.Barangay,
		DeliveryCity:     rec.City,
		Zip:              rec.Zip,
		Municipality:     kernel.MunicipalitySlug(rec.Municipality),
		Items:            items,
		OrderNotes:       rec.OrderNotes,
		Subtotal:         kernel.Money(rec.Subtotal),
		ShippingFee:      kernel.Money(rec.ShippingFee),
		Total:            kernel.Money(rec.Total),
		Status:           status,
		StatusTimestamps: timestamps,
		PaymentMethod:    method,
		PaymentDetails:   rec.PaymentDetails,
		DeliveryTime:     rec.DeliveryTime,
		PlacedAt:         rec.Timestamp,
		CancelledBy:      rec.CancelledBy,
		CancelledAt:      rec.CancelledAt,
	})
}
