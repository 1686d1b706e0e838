package commands

import (
	"context"
	"log/slog"
	"time"

	"settlement/internal/core/domain/model/batch"
	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/core/domain/services"
	"settlement/internal/core/ports"
)

// ConfirmPaymentCommandHandler verifies settlement deposits. Best-effort over
// the order set; for every batch touched by an updated order it recomputes the
// batch totals and pins them as a snapshot carrying the depositor name and the
// confirming operator, so later order edits cannot move an agreed total.
type ConfirmPaymentCommandHandler struct {
	uowFactory   SettlementUoWFactory
	publisher    ports.OrderEventPublisher
	statsCache   ports.StatsCache
	lifecycle    services.Lifecycle
	batchBuilder services.BatchBuilder
	logger       *slog.Logger
	now          func() time.Time
}

// NewConfirmPaymentCommandHandler creates a handler for payment confirmation.
func NewConfirmPaymentCommandHandler(
	uowFactory SettlementUoWFactory,
	publisher ports.OrderEventPublisher,
	statsCache ports.StatsCache,
	logger *slog.Logger,
) ConfirmPaymentCommandHandler {
	return ConfirmPaymentCommandHandler{
		uowFactory:   uowFactory,
		publisher:    publisher,
		statsCache:   statsCache,
		lifecycle:    services.NewLifecycle(),
		batchBuilder: services.NewBatchBuilder(),
		logger:       logger.With("component", "confirm_payment"),
		now:          time.Now,
	}
}

// Handle processes the payment confirmation command.
func (h *ConfirmPaymentCommandHandler) Handle(
	ctx context.Context,
	cmd ConfirmPaymentCommand,
) (services.OperationResult, error) {
	if err := cmd.Validate(); err != nil {
		return services.OperationResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.OperationResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	orders, err := orderRepo.GetByIDs(ctx, cmd.OrderIDs())
	if err != nil {
		return services.OperationResult{}, err
	}

	result := h.lifecycle.Execute(services.ConfirmPaymentOperation(h.now()), orders)
	if len(result.UpdatedOrders) == 0 {
		return result, nil
	}

	if err = orderRepo.UpdateAll(ctx, result.UpdatedOrders); err != nil {
		return services.OperationResult{}, err
	}

	if err = h.pinBatchSnapshots(ctx, uow, cmd, result); err != nil {
		return services.OperationResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return services.OperationResult{}, err
	}

	notifyOrderChanges(ctx, h.publisher, h.statsCache, h.logger, "confirm_payment", result.UpdatedOrders)
	return result, nil
}

// pinBatchSnapshots recomputes every batch touched by the update set from the
// organization's full order list and stores the totals, attributed to the
// deposit being confirmed.
func (h *ConfirmPaymentCommandHandler) pinBatchSnapshots(
	ctx context.Context,
	uow SettlementUoW,
	cmd ConfirmPaymentCommand,
	result services.OperationResult,
) error {
	affected := map[batch.Key]struct{}{}
	organizations := map[kernel.UUID]struct{}{}
	for _, o := range result.UpdatedOrders {
		if o.ConfirmedAt() == nil || o.OrganizationID() == nil {
			continue
		}
		affected[batch.NewKey(*o.OrganizationID(), *o.ConfirmedAt())] = struct{}{}
		organizations[*o.OrganizationID()] = struct{}{}
	}
	if len(affected) == 0 {
		return nil
	}

	orderRepo := uow.OrderRepository()
	snapshotRepo := uow.BatchSnapshotRepository()
	executorID := cmd.ExecutorID()

	for orgID := range organizations {
		members, err := orderRepo.GetByOrganization(ctx, orgID, ports.OrderFilter{})
		if err != nil {
			return err
		}
		existing, err := snapshotRepo.GetByOrganization(ctx, orgID)
		if err != nil {
			return err
		}

		batches, warnings := h.batchBuilder.Build(members, existing)
		for _, w := range warnings {
			h.logger.WarnContext(ctx, "batch deposit clamped during snapshot pinning",
				"batchKey", w.Key.String(), "detail", w.Message)
		}

		for _, b := range batches {
			if _, ok := affected[b.Key]; !ok {
				continue
			}
			snapshot := batch.Snapshot{
				Key:                b.Key,
				TotalAmount:        b.TotalAmount,
				CashUsed:           b.CashUsed,
				FinalDepositAmount: b.FinalDepositAmount,
				DepositorName:      cmd.DepositorName(),
				ExecutorID:         &executorID,
			}
			if err = snapshotRepo.Upsert(ctx, snapshot); err != nil {
				return err
			}
		}
	}

	return nil
}
