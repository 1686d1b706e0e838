package commands

import (
	"context"
	"log/slog"

	"settlement/internal/core/domain/services"
	"settlement/internal/core/ports"
)

// CompleteRefundCommandHandler completes refunds for cancelled orders.
// All-or-nothing: a double refund in the set aborts the whole operation.
type CompleteRefundCommandHandler struct {
	executor lifecycleExecutor
}

// NewCompleteRefundCommandHandler creates a handler for refund completion.
func NewCompleteRefundCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	statsCache ports.StatsCache,
	logger *slog.Logger,
) CompleteRefundCommandHandler {
	return CompleteRefundCommandHandler{
		executor: newLifecycleExecutor(uowFactory, publisher, statsCache, logger),
	}
}

// Handle processes the refund completion command.
func (h *CompleteRefundCommandHandler) Handle(
	ctx context.Context,
	cmd CompleteRefundCommand,
) (services.OperationResult, error) {
	if err := cmd.Validate(); err != nil {
		return services.OperationResult{}, err
	}

	op := services.CompleteRefundOperation(h.executor.now(), cmd.Variant())
	return h.executor.execute(ctx, op, cmd.OrderIDs())
}
