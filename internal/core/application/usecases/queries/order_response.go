// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the domain model and read projection-shaped rows
// directly, except where an aggregate computation needs full orders.
package queries

import (
	"database/sql"
	"encoding/json"
	"time"

	"burgershop/internal/core/domain/model/order"
)

// ItemResponse is one order line as served to clients.
type ItemResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Flavor   string  `json:"flavor,omitempty"`
}

// OrderResponse is the JSON shape of a persisted order.
type OrderResponse struct {
	ID               string               `json:"id"`
	Customer         string               `json:"customer"`
	CustomerEmail    string               `json:"customerEmail"`
	CustomerPhone    string               `json:"customerPhone"`
	DeliveryAddress  string               `json:"deliveryAddress"`
	DeliveryBarangay string               `json:"deliveryBarangay,omitempty"`
	DeliveryCity     string               `json:"deliveryCity"`
	Zip              string               `json:"zip"`
	Municipality     string               `json:"municipality,omitempty"`
	Items            []ItemResponse       `json:"items"`
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
}

// orderColumns is the select list every order query shares. The order of
// columns must match scanOrderRow.
const orderColumns = `
	id, customer, customer_email, customer_phone,
	address, barangay, city, zip, municipality,
	items, order_notes, payment_method, payment_details,
	subtotal, shipping_fee, total,
	status, status_timestamps, delivery_time,
	cancelled_by, cancelled_at, created_at
`

// scanOrderRow maps one orders row onto the response shape.
func scanOrderRow(rows *sql.Rows) (OrderResponse, error) {
	var (
		resp           OrderResponse
		itemsJSON      []byte
		detailsJSON    []byte
		timestampsJSON []byte
		barangay       sql.NullString
		municipality   sql.NullString
		orderNotes     sql.NullString
		deliveryTime   sql.NullString
		cancelledBy    sql.NullString
		cancelledAt    sql.NullInt64
		createdAt      time.Time
	)

	if err := rows.Scan(
		&resp.ID, &resp.Customer, &resp.CustomerEmail, &resp.CustomerPhone,
		&resp.DeliveryAddress, &barangay, &resp.DeliveryCity, &resp.Zip, &municipality,
		&itemsJSON, &orderNotes, &resp.PaymentMethod, &detailsJSON,
		&resp.Subtotal, &resp.ShippingFee, &resp.Total,
		&resp.Status, &timestampsJSON, &deliveryTime,
		&cancelledBy, &cancelledAt, &createdAt,
	); err != nil {
		return OrderResponse{}, err
	}

	if err := json.Unmarshal(itemsJSON, &resp.Items); err != nil {
		return OrderResponse{}, err
	}
	if len(detailsJSON) > 0 {
		if err := json.Unmarshal(detailsJSON, &resp.PaymentDetails); err != nil {
			return OrderResponse{}, err
		}
	}
	if len(timestampsJSON) > 0 {
		if err := json.Unmarshal(timestampsJSON, &resp.StatusTimestamps); err != nil {
			return OrderResponse{}, err
		}
	}

	resp.DeliveryBarangay = barangay.String
	resp.Municipality = municipality.String
	resp.OrderNotes = orderNotes.String
	resp.DeliveryTime = deliveryTime.String
	resp.CancelledBy = cancelledBy.String
	resp.CancelledAt = cancelledAt.Int64
	resp.Timestamp = createdAt.UnixMilli()
	return resp, nil
}

// OrderResponseFromDomain maps an order aggregate onto the response shape.
// Used by paths that read through the order store instead of the database.
func OrderResponseFromDomain(o *order.Order) OrderResponse {
	items := make([]ItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, ItemResponse{
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

	return OrderResponse{
		ID:               o.ID().String(),
		Customer:         o.Customer(),
		CustomerEmail:    o.CustomerEmail(),
		CustomerPhone:    o.CustomerPhone(),
		DeliveryAddress:  o.DeliveryAddress(),
		DeliveryBarangay: o.DeliveryBarangay(),
		DeliveryCity:     o.DeliveryCity(),
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
	}
}
