package queries

import (
	"context"
	"log/slog"
	"time"

	"settlement/internal/core/domain/services"
	"settlement/internal/core/ports"
)

// statsCacheTTL bounds staleness between a missed invalidation and the next
// recomputation.
const statsCacheTTL = 5 * time.Minute

// GetOrderStatsQueryHandler computes the statistics report for an
// organization, cache-first. The report is a derived read model: a cache
// failure only costs a recomputation, so cache errors are logged and the
// query falls through to the database.
type GetOrderStatsQueryHandler struct {
	orderRepo  ports.OrderRepository
	statsCache ports.StatsCache
	logger     *slog.Logger
}

// NewGetOrderStatsQueryHandler creates a handler for statistics queries.
func NewGetOrderStatsQueryHandler(
	orderRepo ports.OrderRepository,
	statsCache ports.StatsCache,
	logger *slog.Logger,
) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{
		orderRepo:  orderRepo,
		statsCache: statsCache,
		logger:     logger.With("component", "order_stats"),
	}
}

// Handle returns the statistics report, from cache when fresh.
func (h GetOrderStatsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatsQuery,
) (services.StatsReport, error) {
	if err := query.Validate(); err != nil {
		return services.StatsReport{}, err
	}

	if h.statsCache != nil {
		report, ok, err := h.statsCache.Get(ctx, query.OrganizationID(), query.Variant())
		if err != nil {
			h.logger.WarnContext(ctx, "stats cache read failed, recomputing",
				"organizationId", query.OrganizationID().String(), "error", err)
		} else if ok {
			return report, nil
		}
	}

	orders, err := h.orderRepo.GetByOrganization(ctx, query.OrganizationID(), ports.OrderFilter{})
	if err != nil {
		return services.StatsReport{}, err
	}

	report := services.NewAggregator(query.Variant()).Aggregate(orders)

	if h.statsCache != nil {
		if err = h.statsCache.Set(ctx, query.OrganizationID(), query.Variant(), report, statsCacheTTL); err != nil {
			h.logger.WarnContext(ctx, "stats cache write failed",
				"organizationId", query.OrganizationID().String(), "error", err)
		}
	}

	return report, nil
}
