package commands

import (
	"context"
	"log/slog"
	"time"

	"settlement/internal/core/domain/model/order"
	"settlement/internal/core/domain/services"
	"settlement/internal/core/ports"
)

// statsWarmTTL outlives the warm interval so a skipped pass degrades to a
// cache miss, never to a stale-forever entry.
const statsWarmTTL = 10 * time.Minute

// RefreshStatsCommandHandler recomputes the statistics reports of every
// organization under both settlement variants and writes them to the cache.
// Cache write failures are logged and skipped: the next read recomputes.
type RefreshStatsCommandHandler struct {
	orderRepo  ports.OrderRepository
	statsCache ports.StatsCache
	logger     *slog.Logger
}

// NewRefreshStatsCommandHandler creates a handler for cache-warming passes.
func NewRefreshStatsCommandHandler(
	orderRepo ports.OrderRepository,
	statsCache ports.StatsCache,
	logger *slog.Logger,
) RefreshStatsCommandHandler {
	return RefreshStatsCommandHandler{
		orderRepo:  orderRepo,
		statsCache: statsCache,
		logger:     logger.With("component", "refresh_stats"),
	}
}

// Handle runs one warming pass and reports how many reports were cached.
func (h *RefreshStatsCommandHandler) Handle(
	ctx context.Context,
	cmd RefreshStatsCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	organizations, err := h.orderRepo.ListOrganizations(ctx)
	if err != nil {
		return 0, err
	}

	warmed := 0
	for _, organizationID := range organizations {
		orders, err := h.orderRepo.GetByOrganization(ctx, organizationID, ports.OrderFilter{})
		if err != nil {
			return warmed, err
		}

		for _, variant := range []order.Variant{order.VariantMarketplace, order.VariantPlatform} {
			report := services.NewAggregator(variant).Aggregate(orders)
			if err = h.statsCache.Set(ctx, organizationID, variant, report, statsWarmTTL); err != nil {
				h.logger.WarnContext(ctx, "stats cache write failed during warm pass",
					"organizationId", organizationID.String(), "variant", variant.String(), "error", err)
				continue
			}
			warmed++
		}
	}

	return warmed, nil
}
