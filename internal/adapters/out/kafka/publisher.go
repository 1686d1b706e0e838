// Package kafka publishes order lifecycle events to the message broker for
// downstream consumers (notifications, marketplace sync).
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"settlement/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

// OrderChangedMessage is the wire shape of one order change event.
type OrderChangedMessage struct {
	Operation   string `json:"operation"`
	OrderID     string `json:"orderId"`
	OrderNumber string `json:"orderNumber"`
	Status      string `json:"status"`
	OccurredAt  string `json:"occurredAt"`
}

// Publisher wraps a Kafka writer configured for reliability:
// Hash balancer keys events of one order to one partition so consumers see a
// single order's transitions in sequence, RequireAll waits for ISR acks, and
// MaxAttempts/timeouts bound retries.
type Publisher struct {
	w   *kafka.Writer
	now func() time.Time
}

// NewPublisher creates a publisher writing to the given brokers and topic.
func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		w: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			MaxAttempts:  5,
			WriteTimeout: 5 * time.Second,
			ReadTimeout:  5 * time.Second,
			BatchTimeout: 50 * time.Millisecond,
		},
		now: time.Now,
	}
}

// Close releases the writer resources.
func (p *Publisher) Close() error { return p.w.Close() }

// PublishChanged announces that the operation moved the given orders to their
// current status. All messages of one call are written in a single batch.
func (p *Publisher) PublishChanged(ctx context.Context, operation string, orders []*order.Order) error {
	if len(orders) == 0 {
		return nil
	}

	occurredAt := p.now().UTC().Format(time.RFC3339)
	messages := make([]kafka.Message, 0, len(orders))
	for _, o := range orders {
		value, err := json.Marshal(OrderChangedMessage{
			Operation:   operation,
			OrderID:     o.ID().String(),
			OrderNumber: o.Number().String(),
			Status:      o.Status().String(),
			OccurredAt:  occurredAt,
		})
		if err != nil {
			return err
		}

		messages = append(messages, kafka.Message{
			Key:   []byte(o.ID().String()),
			Value: value,
		})
	}

	return p.w.WriteMessages(ctx, messages...)
}
