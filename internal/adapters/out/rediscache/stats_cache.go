// Package rediscache caches computed statistics reports in Redis. Reports are
// derived read models: a miss only costs a recomputation, so every cache
// failure degrades to a miss rather than an error the caller must handle.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/core/domain/model/order"
	"settlement/internal/core/domain/services"

	"github.com/redis/go-redis/v9"
)

// StatsCache implements ports.StatsCache on a Redis client.
type StatsCache struct {
	rdb *redis.Client
}

// NewStatsCache creates a Redis-backed statistics cache.
func NewStatsCache(rdb *redis.Client) *StatsCache {
	return &StatsCache{rdb: rdb}
}

// statsKey builds the cache key for one organization and display variant.
func statsKey(organizationID kernel.UUID, variant order.Variant) string {
	return fmt.Sprintf("stats:%s:%s", organizationID.String(), variant.String())
}

// Get returns the cached report for the organization and variant, if present.
func (c *StatsCache) Get(
	ctx context.Context, organizationID kernel.UUID, variant order.Variant,
) (services.StatsReport, bool, error) {
	payload, err := c.rdb.Get(ctx, statsKey(organizationID, variant)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return services.StatsReport{}, false, nil
		}
		return services.StatsReport{}, false, err
	}

	var report services.StatsReport
	if err := json.Unmarshal(payload, &report); err != nil {
		// A corrupt entry is as good as a miss; the caller recomputes and
		// overwrites it.
		return services.StatsReport{}, false, nil
	}

	return report, true, nil
}

// Set stores the report with the given time-to-live.
func (c *StatsCache) Set(
	ctx context.Context, organizationID kernel.UUID, variant order.Variant,
	report services.StatsReport, ttl time.Duration,
) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return err
	}

	return c.rdb.Set(ctx, statsKey(organizationID, variant), payload, ttl).Err()
}

// Invalidate drops every cached report for the organization, all variants.
func (c *StatsCache) Invalidate(ctx context.Context, organizationID kernel.UUID) error {
	return c.rdb.Del(ctx,
		statsKey(organizationID, order.VariantMarketplace),
		statsKey(organizationID, order.VariantPlatform),
	).Err()
}
