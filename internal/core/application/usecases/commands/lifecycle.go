package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/core/domain/model/order"
	"settlement/internal/core/domain/services"
	"settlement/internal/core/ports"
)

// ErrOrderIDsAreRequired is returned when a bulk lifecycle command carries no
// target orders.
var ErrOrderIDsAreRequired = errors.New("at least one order id is required")

func validateOrderIDs(ids []kernel.UUID) error {
	if len(ids) == 0 {
		return ErrOrderIDsAreRequired
	}
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// lifecycleExecutor is the shared execution path of every bulk lifecycle
// command: fetch the current snapshot of the target orders, run the operation
// through the domain engine, persist the update set in one transaction, then
// publish the change event and invalidate cached statistics.
//
// Post-commit side effects are best-effort: the database is the source of
// truth, so a failed publish or cache invalidation is logged and never turns
// a committed command into an error.
type lifecycleExecutor struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	statsCache ports.StatsCache
	lifecycle  services.Lifecycle
	logger     *slog.Logger
	now        func() time.Time
}

func newLifecycleExecutor(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	statsCache ports.StatsCache,
	logger *slog.Logger,
) lifecycleExecutor {
	return lifecycleExecutor{
		uowFactory: uowFactory,
		publisher:  publisher,
		statsCache: statsCache,
		lifecycle:  services.NewLifecycle(),
		logger:     logger.With("component", "lifecycle"),
		now:        time.Now,
	}
}

func (e lifecycleExecutor) execute(
	ctx context.Context,
	op services.BatchOperation,
	orderIDs []kernel.UUID,
) (services.OperationResult, error) {
	uow := e.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.OperationResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	orders, err := orderRepo.GetByIDs(ctx, orderIDs)
	if err != nil {
		return services.OperationResult{}, err
	}

	result := e.lifecycle.Execute(op, orders)
	if !result.Applied {
		return result, nil
	}

	if len(result.UpdatedOrders) > 0 {
		if err = orderRepo.UpdateAll(ctx, result.UpdatedOrders); err != nil {
			return services.OperationResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return services.OperationResult{}, err
	}

	notifyOrderChanges(ctx, e.publisher, e.statsCache, e.logger, op.Name, result.UpdatedOrders)
	return result, nil
}

// notifyOrderChanges runs the post-commit side effects of a lifecycle change:
// the order-changed event and the per-organization stats cache invalidation.
// Failures are logged, never returned.
func notifyOrderChanges(
	ctx context.Context,
	publisher ports.OrderEventPublisher,
	statsCache ports.StatsCache,
	logger *slog.Logger,
	operation string,
	updated []*order.Order,
) {
	if len(updated) == 0 {
		return
	}

	if publisher != nil {
		if err := publisher.PublishChanged(ctx, operation, updated); err != nil {
			logger.WarnContext(ctx, "failed to publish order changed event",
				"operation", operation, "error", err)
		}
	}

	if statsCache == nil {
		return
	}
	invalidated := map[kernel.UUID]struct{}{}
	for _, o := range updated {
		orgID := o.OrganizationID()
		if orgID == nil {
			continue
		}
		if _, done := invalidated[*orgID]; done {
			continue
		}
		invalidated[*orgID] = struct{}{}
		if err := statsCache.Invalidate(ctx, *orgID); err != nil {
			logger.WarnContext(ctx, "failed to invalidate stats cache",
				"organizationId", orgID.String(), "error", err)
		}
	}
}
