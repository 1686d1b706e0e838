package commands

import (
	"context"
	"log/slog"

	"settlement/internal/core/domain/services"
	"settlement/internal/core/ports"
)

// RequestCancelCommandHandler records cancellation requests. Best-effort.
type RequestCancelCommandHandler struct {
	executor lifecycleExecutor
}

// NewRequestCancelCommandHandler creates a handler for cancellation requests.
func NewRequestCancelCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	statsCache ports.StatsCache,
	logger *slog.Logger,
) RequestCancelCommandHandler {
	return RequestCancelCommandHandler{
		executor: newLifecycleExecutor(uowFactory, publisher, statsCache, logger),
	}
}

// Handle processes the cancellation request command.
func (h *RequestCancelCommandHandler) Handle(
	ctx context.Context,
	cmd RequestCancelCommand,
) (services.OperationResult, error) {
	if err := cmd.Validate(); err != nil {
		return services.OperationResult{}, err
	}

	return h.executor.execute(ctx, services.RequestCancelOperation(h.executor.now()), cmd.OrderIDs())
}
