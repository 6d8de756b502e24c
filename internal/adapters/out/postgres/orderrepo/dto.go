// Package orderrepo implements the order repository over PostgreSQL with
// GORM. DTOs translate between the domain aggregate and the orders table;
// nested structures (items, payment details, status timestamps) are kept as
// jsonb columns, matching the document shape orders had before the move to
// PostgreSQL.
package orderrepo

import (
	"encoding/json"
	"time"

	"burgershop/internal/core/domain/model/kernel"
	"burgershop/internal/core/domain/model/order"
)

// OrderDTO represents the database structure of an order row.
type OrderDTO struct {
	ID               string `gorm:"primaryKey"`
	Customer         string
	CustomerEmail    string `gorm:"index"`
	CustomerPhone    string
	Address          string
	Barangay         string
	City             string
	Zip              string
	Municipality     string `gorm:"index"`
	Items            []byte `gorm:"type:jsonb"`
	OrderNotes       string
	PaymentMethod    string
	PaymentDetails   []byte `gorm:"type:jsonb"`
	Subtotal         float64
	ShippingFee      float64
	Total            float64
	Status           string `gorm:"index"`
	StatusTimestamps []byte `gorm:"type:jsonb"`
	DeliveryTime     string
	CancelledBy      string
	CancelledAt      int64
	CreatedAt        time.Time `gorm:"type:timestamptz;index"`
}

// TableName overrides the table name used by GORM.
func (OrderDTO) TableName() string {
	return "orders"
}

// itemDTO is one order line inside the items jsonb column. The field names
// match the wire shape served to clients, so rows are readable as-is.
type itemDTO struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Flavor   string  `json:"flavor,omitempty"`
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	items := make([]itemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, itemDTO{
			ID:       item.MenuItemID(),
			Name:     item.Name(),
			Price:    float64(item.Price()),
			Quantity: item.Quantity(),
			Flavor:   item.Flavor(),
		})
	}
	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return OrderDTO{}, err
	}

	detailsJSON, err := json.Marshal(aggregate.PaymentDetails())
	if err != nil {
		return OrderDTO{}, err
	}

	timestamps := make(map[string]int64, len(aggregate.StatusTimestamps()))
	for s, ts := range aggregate.StatusTimestamps() {
		timestamps[s.String()] = ts
	}
	timestampsJSON, err := json.Marshal(timestamps)
	if err != nil {
		return OrderDTO{}, err
	}

	return OrderDTO{
		ID:               aggregate.ID().String(),
		Customer:         aggregate.Customer(),
		CustomerEmail:    aggregate.CustomerEmail(),
		CustomerPhone:    aggregate.CustomerPhone(),
		Address:          aggregate.DeliveryAddress(),
		Barangay:         aggregate.DeliveryBarangay(),
		City:             aggregate.DeliveryCity(),
		Zip:              aggregate.Zip(),
		Municipality:     aggregate.Municipality().String(),
		Items:            itemsJSON,
		OrderNotes:       aggregate.OrderNotes(),
		PaymentMethod:    string(aggregate.PaymentMethod()),
		PaymentDetails:   detailsJSON,
		Subtotal:         float64(aggregate.Subtotal()),
		ShippingFee:      float64(aggregate.ShippingFee()),
		Total:            float64(aggregate.Total()),
		Status:           aggregate.Status().String(),
		StatusTimestamps: timestampsJSON,
		DeliveryTime:     aggregate.DeliveryTime(),
		CancelledBy:      aggregate.CancelledBy(),
		CancelledAt:      aggregate.CancelledAt(),
		CreatedAt:        time.UnixMilli(aggregate.PlacedAt()),
	}, nil
}

// toDomain converts a database row to an order aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.OrderIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var itemDTOs []itemDTO
	if len(dto.Items) > 0 {
		if err := json.Unmarshal(dto.Items, &itemDTOs); err != nil {
			return nil, err
		}
	}
	items := make([]order.Item, 0, len(itemDTOs))
	for _, it := range itemDTOs {
		item, err := order.NewItem(it.ID, it.Name, kernel.Money(it.Price), it.Quantity, it.Flavor)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	var details order.PaymentDetails
	if len(dto.PaymentDetails) > 0 {
		if err := json.Unmarshal(dto.PaymentDetails, &details); err != nil {
			return nil, err
		}
	}

	method, err := order.PaymentMethodFromString(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	// Timestamp keys from older rows may use a legacy status spelling;
	// they normalize the same way statuses do. Unknown keys are dropped.
	var rawTimestamps map[string]int64
	if len(dto.StatusTimestamps) > 0 {
		if err := json.Unmarshal(dto.StatusTimestamps, &rawTimestamps); err != nil {
			return nil, err
		}
	}
	timestamps := make(map[order.Status]int64, len(rawTimestamps))
	for key, ts := range rawTimestamps {
		s, err := order.StatusFromString(key)
		if err != nil {
			continue
		}
		timestamps[s] = ts
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:               id,
		Customer:         dto.Customer,
		CustomerEmail:    dto.CustomerEmail,
		CustomerPhone:    dto.CustomerPhone,
		DeliveryAddress:  dto.Address,
		DeliveryBarangay: dto.Barangay,
		DeliveryCity:     dto.City,
		Zip:              dto.Zip,
		Municipality:     kernel.MunicipalitySlug(dto.Municipality),
		Items:            items,
		OrderNotes:       dto.OrderNotes,
		Subtotal:         kernel.Money(dto.Subtotal),
		ShippingFee:      kernel.Money(dto.ShippingFee),
		Total:            kernel.Money(dto.Total),
		Status:           status,
		StatusTimestamps: timestamps,
		PaymentMethod:    method,
		PaymentDetails:   details,
		DeliveryTime:     dto.DeliveryTime,
		PlacedAt:         dto.CreatedAt.UnixMilli(),
		CancelledBy:      dto.CancelledBy,
		CancelledAt:      dto.CancelledAt,
	})
}
