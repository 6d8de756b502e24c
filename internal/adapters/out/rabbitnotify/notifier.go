// Package rabbitnotify publishes order status events to a RabbitMQ fanout
// exchange. Downstream consumers (mailers, dashboards) bind their own queues;
// the publisher neither knows nor cares who listens.
package rabbitnotify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"burgershop/internal/core/domain/model/order"

	amqp "github.com/rabbitmq/amqp091-go"
)

// statusEvent is the JSON payload of one published status change.
type statusEvent struct {
	OrderID       string  `json:"orderId"`
	Status        string  `json:"status"`
	Customer      string  `json:"customer"`
	CustomerEmail string  `json:"customerEmail"`
	Total         float64 `json:"total"`
	OccurredAt    int64   `json:"occurredAt"`
}

// Notifier implements ports.OrderNotifier over an AMQP fanout exchange.
type Notifier struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	logger   *slog.Logger
}

// NewNotifier connects to the broker and declares the fanout exchange.
func NewNotifier(url, exchange string, logger *slog.Logger) (*Notifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchange,
		amqp.ExchangeFanout,
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = channel.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %q: %w", exchange, err)
	}

	return &Notifier{
		conn:     conn,
		channel:  channel,
		exchange: exchange,
		logger:   logger.With("component", "order_notifier"),
	}, nil
}

// NotifyStatusChanged publishes the order's current status to the exchange.
func (n *Notifier) NotifyStatusChanged(ctx context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	body, err := json.Marshal(statusEvent{
		OrderID:       o.ID().String(),
		Status:        o.Status().String(),
		Customer:      o.Customer(),
		CustomerEmail: o.CustomerEmail(),
		Total:         float64(o.Total()),
		OccurredAt:    time.Now().UnixMilli(),
	})
	if err != nil {
		return err
	}

	err = n.channel.PublishWithContext(ctx,
		n.exchange,
		"",    // routing key is ignored by fanout exchanges
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
			Timestamp:   time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish status event: %w", err)
	}

	n.logger.Debug("status event published",
		"orderId", o.ID().String(), "status", o.Status().String())
	return nil
}

// Close releases the channel and connection.
func (n *Notifier) Close() error {
	if err := n.channel.Close(); err != nil {
		_ = n.conn.Close()
		return err
	}
	return n.conn.Close()
}
