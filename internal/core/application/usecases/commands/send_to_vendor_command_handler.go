package commands

import (
	"context"
	"log/slog"

	"settlement/internal/core/domain/services"
	"settlement/internal/core/ports"
)

// SendToVendorCommandHandler hands paid orders to fulfillment. All-or-nothing:
// one order missing its vendor rejects the whole set so the operator can fix
// the data and retry.
type SendToVendorCommandHandler struct {
	executor lifecycleExecutor
}

// NewSendToVendorCommandHandler creates a handler for vendor handoff.
func NewSendToVendorCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	statsCache ports.StatsCache,
	logger *slog.Logger,
) SendToVendorCommandHandler {
	return SendToVendorCommandHandler{
		executor: newLifecycleExecutor(uowFactory, publisher, statsCache, logger),
	}
}

// Handle processes the vendor handoff command.
func (h *SendToVendorCommandHandler) Handle(
	ctx context.Context,
	cmd SendToVendorCommand,
) (services.OperationResult, error) {
	if err := cmd.Validate(); err != nil {
		return services.OperationResult{}, err
	}

	return h.executor.execute(ctx, services.SendToVendorOperation(cmd.VendorNameIfMissing()), cmd.OrderIDs())
}
