package commands

import (
	"context"
	"log/slog"

	"settlement/internal/core/domain/services"
	"settlement/internal/core/ports"
)

// ConfirmOrdersCommandHandler confirms uploaded platform orders. Best-effort:
// orders no longer awaiting confirmation are reported as rejected while the
// rest proceed.
type ConfirmOrdersCommandHandler struct {
	executor lifecycleExecutor
}

// NewConfirmOrdersCommandHandler creates a handler for order confirmation.
func NewConfirmOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	statsCache ports.StatsCache,
	logger *slog.Logger,
) ConfirmOrdersCommandHandler {
	return ConfirmOrdersCommandHandler{
		executor: newLifecycleExecutor(uowFactory, publisher, statsCache, logger),
	}
}

// Handle processes the confirmation command and reports the update set.
func (h *ConfirmOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd ConfirmOrdersCommand,
) (services.OperationResult, error) {
	if err := cmd.Validate(); err != nil {
		return services.OperationResult{}, err
	}

	return h.executor.execute(ctx, services.ConfirmOrdersOperation(h.executor.now()), cmd.OrderIDs())
}
