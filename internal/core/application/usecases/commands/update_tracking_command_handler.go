package commands

import (
	"context"
	"log/slog"

	"settlement/internal/core/domain/services"
	"settlement/internal/core/ports"
)

// UpdateTrackingCommandHandler re-stamps tracking on shipped orders under the
// same all-or-nothing field requirements as registration.
type UpdateTrackingCommandHandler struct {
	executor lifecycleExecutor
}

// NewUpdateTrackingCommandHandler creates a handler for tracking updates.
func NewUpdateTrackingCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	statsCache ports.StatsCache,
	logger *slog.Logger,
) UpdateTrackingCommandHandler {
	return UpdateTrackingCommandHandler{
		executor: newLifecycleExecutor(uowFactory, publisher, statsCache, logger),
	}
}

// Handle processes the tracking update command.
func (h *UpdateTrackingCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateTrackingCommand,
) (services.OperationResult, error) {
	if err := cmd.Validate(); err != nil {
		return services.OperationResult{}, err
	}

	op := services.UpdateTrackingOperation(h.executor.now(), cmd.Tracking())
	return h.executor.execute(ctx, op, cmd.OrderIDs())
}
