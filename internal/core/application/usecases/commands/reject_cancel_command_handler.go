package commands

import (
	"context"
	"log/slog"

	"settlement/internal/core/domain/services"
	"settlement/internal/core/ports"
)

// RejectCancelCommandHandler rejects pending cancellation requests.
// Best-effort.
type RejectCancelCommandHandler struct {
	executor lifecycleExecutor
}

// NewRejectCancelCommandHandler creates a handler for cancellation rejection.
func NewRejectCancelCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	statsCache ports.StatsCache,
	logger *slog.Logger,
) RejectCancelCommandHandler {
	return RejectCancelCommandHandler{
		executor: newLifecycleExecutor(uowFactory, publisher, statsCache, logger),
	}
}

// Handle processes the cancellation rejection command.
func (h *RejectCancelCommandHandler) Handle(
	ctx context.Context,
	cmd RejectCancelCommand,
) (services.OperationResult, error) {
	if err := cmd.Validate(); err != nil {
		return services.OperationResult{}, err
	}

	return h.executor.execute(ctx, services.RejectCancelOperation(), cmd.OrderIDs())
}
