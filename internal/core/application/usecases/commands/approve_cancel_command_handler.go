package commands

import (
	"context"
	"log/slog"

	"settlement/internal/core/domain/services"
	"settlement/internal/core/ports"
)

// ApproveCancelCommandHandler approves pending cancellation requests.
// Best-effort.
type ApproveCancelCommandHandler struct {
	executor lifecycleExecutor
}

// NewApproveCancelCommandHandler creates a handler for cancellation approval.
func NewApproveCancelCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	statsCache ports.StatsCache,
	logger *slog.Logger,
) ApproveCancelCommandHandler {
	return ApproveCancelCommandHandler{
		executor: newLifecycleExecutor(uowFactory, publisher, statsCache, logger),
	}
}

// Handle processes the cancellation approval command.
func (h *ApproveCancelCommandHandler) Handle(
	ctx context.Context,
	cmd ApproveCancelCommand,
) (services.OperationResult, error) {
	if err := cmd.Validate(); err != nil {
		return services.OperationResult{}, err
	}

	return h.executor.execute(ctx, services.ApproveCancelOperation(h.executor.now()), cmd.OrderIDs())
}
