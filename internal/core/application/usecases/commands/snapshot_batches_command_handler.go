package commands

import (
	"context"
	"log/slog"

	"settlement/internal/core/domain/model/batch"
	"settlement/internal/core/domain/services"
	"settlement/internal/core/ports"
)

// SnapshotBatchesCommandHandler pins the totals of batches whose every member
// order is past payment confirmation but that never got a snapshot, for
// example batches confirmed before snapshotting was introduced. Depositor
// attribution stays empty: the sweep records totals, not who verified them.
type SnapshotBatchesCommandHandler struct {
	uowFactory   SettlementUoWFactory
	batchBuilder services.BatchBuilder
	logger       *slog.Logger
}

// NewSnapshotBatchesCommandHandler creates a handler for snapshot sweeps.
func NewSnapshotBatchesCommandHandler(
	uowFactory SettlementUoWFactory,
	logger *slog.Logger,
) SnapshotBatchesCommandHandler {
	return SnapshotBatchesCommandHandler{
		uowFactory:   uowFactory,
		batchBuilder: services.NewBatchBuilder(),
		logger:       logger.With("component", "snapshot_batches"),
	}
}

// Handle runs one sweep over every organization and reports how many
// snapshots were pinned.
func (h *SnapshotBatchesCommandHandler) Handle(
	ctx context.Context,
	cmd SnapshotBatchesCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	snapshotRepo := uow.BatchSnapshotRepository()

	organizations, err := orderRepo.ListOrganizations(ctx)
	if err != nil {
		return 0, err
	}

	pinned := 0
	for _, organizationID := range organizations {
		orders, err := orderRepo.GetByOrganization(ctx, organizationID, ports.OrderFilter{})
		if err != nil {
			return 0, err
		}
		existing, err := snapshotRepo.GetByOrganization(ctx, organizationID)
		if err != nil {
			return 0, err
		}

		batches, warnings := h.batchBuilder.Build(orders, existing)
		for _, w := range warnings {
			h.logger.WarnContext(ctx, "batch deposit clamped during snapshot sweep",
				"batchKey", w.Key.String(), "detail", w.Message)
		}

		for _, b := range batches {
			if !b.PaymentConfirmed {
				continue
			}
			if _, ok := existing[b.Key]; ok {
				continue
			}

			snapshot := batch.Snapshot{
				Key:                b.Key,
				TotalAmount:        b.TotalAmount,
				CashUsed:           b.CashUsed,
				FinalDepositAmount: b.FinalDepositAmount,
			}
			if err = snapshotRepo.Upsert(ctx, snapshot); err != nil {
				return 0, err
			}
			pinned++
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return pinned, nil
}
