package commands

import (
	"context"
	"log/slog"

	"settlement/internal/core/domain/services"
	"settlement/internal/core/ports"
)

// RecallTrackingCommandHandler reverses shipments. Best-effort.
type RecallTrackingCommandHandler struct {
	executor lifecycleExecutor
}

// NewRecallTrackingCommandHandler creates a handler for shipment recalls.
func NewRecallTrackingCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	statsCache ports.StatsCache,
	logger *slog.Logger,
) RecallTrackingCommandHandler {
	return RecallTrackingCommandHandler{
		executor: newLifecycleExecutor(uowFactory, publisher, statsCache, logger),
	}
}

// Handle processes the recall command.
func (h *RecallTrackingCommandHandler) Handle(
	ctx context.Context,
	cmd RecallTrackingCommand,
) (services.OperationResult, error) {
	if err := cmd.Validate(); err != nil {
		return services.OperationResult{}, err
	}

	return h.executor.execute(ctx, services.RecallTrackingOperation(), cmd.OrderIDs())
}
