package ports

import (
	"context"
	"time"

	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/core/domain/model/order"
	"settlement/internal/core/domain/services"
)

// StatsCache caches computed statistics reports per organization. Reports are
// derived read models, so a miss or a cache failure only costs a
// recomputation; implementations must return (zero, false, nil) on a miss.
type StatsCache interface {
	// Get returns the cached report for the organization and display variant,
	// if present.
	Get(ctx context.Context, organizationID kernel.UUID, variant order.Variant) (services.StatsReport, bool, error)

	// Set stores the report with the given time-to-live.
	Set(ctx context.Context, organizationID kernel.UUID, variant order.Variant, report services.StatsReport, ttl time.Duration) error

	// Invalidate drops every cached report for the organization, all variants.
	// Called after every committed lifecycle change.
	Invalidate(ctx context.Context, organizationID kernel.UUID) error
}
