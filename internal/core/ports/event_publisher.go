package ports

import (
	"context"

	"settlement/internal/core/domain/model/order"
)

// OrderEventPublisher publishes order lifecycle changes to the message broker
// for downstream consumers (notifications, marketplace sync). Publishing is
// fire-after-commit: handlers publish only after the unit of work committed,
// and a publish failure is logged, never rolled into the command result.
type OrderEventPublisher interface {
	// PublishChanged announces that the operation moved the given orders to
	// their current status.
	PublishChanged(ctx context.Context, operation string, orders []*order.Order) error
}
