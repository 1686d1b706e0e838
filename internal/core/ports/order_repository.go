// Package ports defines the contracts between the settlement core and its
// infrastructure collaborators: repositories, the unit of work, the outbound
// event publisher and the statistics cache. The core owns these interfaces;
// the adapters implement them.
package ports

import (
	"context"
	"time"

	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/core/domain/model/order"
)

// OrderFilter narrows an organization-scoped order fetch. Zero values mean
// "no constraint".
type OrderFilter struct {
	// Statuses keeps only orders in one of the given statuses.
	Statuses []order.Status

	// ConfirmedFrom/ConfirmedTo bound the confirmation timestamp, inclusive
	// on both ends.
	ConfirmedFrom *time.Time
	ConfirmedTo   *time.Time
}

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateAll persists changes to a set of order aggregates as one write.
	// Bulk lifecycle operations rely on this being a single call so a failed
	// all-or-nothing operation never leaves a partial update behind.
	UpdateAll(ctx context.Context, aggregates []*order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByIDs retrieves the current snapshot of the given orders. Returns an
	// error if any id is missing: lifecycle operations must validate against
	// a complete snapshot.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error)

	// GetByNumber retrieves an order by its business-visible number.
	GetByNumber(ctx context.Context, number order.Number) (*order.Order, error)

	// GetByOrganization retrieves all orders owned by the organization that
	// match the filter.
	GetByOrganization(ctx context.Context, organizationID kernel.UUID, filter OrderFilter) ([]*order.Order, error)

	// NextNumberSequence returns the next value of the order-number sequence
	// for the given channel.
	NextNumberSequence(ctx context.Context, channel order.Channel) (int, error)

	// ListOrganizations returns the distinct owning organizations that have
	// at least one order. Background sweeps iterate this set.
	ListOrganizations(ctx context.Context) ([]kernel.UUID, error)
}
