package commands

import (
	"context"
	"log/slog"

	"settlement/internal/core/domain/services"
	"settlement/internal/core/ports"
)

// RegisterTrackingCommandHandler ships prepared orders. All-or-nothing: one
// order with a missing fulfillment field rejects the whole set, naming the
// field, so the operator's spreadsheet upload is corrected in one round.
type RegisterTrackingCommandHandler struct {
	executor lifecycleExecutor
}

// NewRegisterTrackingCommandHandler creates a handler for tracking registration.
func NewRegisterTrackingCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	statsCache ports.StatsCache,
	logger *slog.Logger,
) RegisterTrackingCommandHandler {
	return RegisterTrackingCommandHandler{
		executor: newLifecycleExecutor(uowFactory, publisher, statsCache, logger),
	}
}

// Handle processes the tracking registration command.
func (h *RegisterTrackingCommandHandler) Handle(
	ctx context.Context,
	cmd RegisterTrackingCommand,
) (services.OperationResult, error) {
	if err := cmd.Validate(); err != nil {
		return services.OperationResult{}, err
	}

	op := services.RegisterTrackingOperation(h.executor.now(), cmd.Tracking())
	return h.executor.execute(ctx, op, cmd.OrderIDs())
}
