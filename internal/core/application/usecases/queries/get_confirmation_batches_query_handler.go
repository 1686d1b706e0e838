package queries

import (
	"context"
	"log/slog"

	"settlement/internal/core/domain/model/batch"
	"settlement/internal/core/domain/services"
	"settlement/internal/core/ports"
)

// GetConfirmationBatchesQueryResponse carries the recomputed batches together
// with any data-integrity warnings the recomputation surfaced. Warnings are
// informational: a batch with a clamped deposit is still displayable.
type GetConfirmationBatchesQueryResponse struct {
	Batches  []batch.ConfirmationBatch
	Warnings []services.Warning
}

// GetConfirmationBatchesQueryHandler recomputes the organization's
// confirmation batches on every call. Batches are never read from storage
// directly; only snapshot totals are, for precedence.
type GetConfirmationBatchesQueryHandler struct {
	orderRepo    ports.OrderRepository
	snapshotRepo ports.BatchSnapshotRepository
	builder      services.BatchBuilder
	logger       *slog.Logger
}

// NewGetConfirmationBatchesQueryHandler creates a handler for batch listing
// queries.
func NewGetConfirmationBatchesQueryHandler(
	orderRepo ports.OrderRepository,
	snapshotRepo ports.BatchSnapshotRepository,
	logger *slog.Logger,
) GetConfirmationBatchesQueryHandler {
	return GetConfirmationBatchesQueryHandler{
		orderRepo:    orderRepo,
		snapshotRepo: snapshotRepo,
		builder:      services.NewBatchBuilder(),
		logger:       logger.With("component", "confirmation_batches"),
	}
}

// Handle recomputes and returns the organization's batches, oldest first.
func (h GetConfirmationBatchesQueryHandler) Handle(
	ctx context.Context,
	query GetConfirmationBatchesQuery,
) (GetConfirmationBatchesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetConfirmationBatchesQueryResponse{}, err
	}

	orders, err := h.orderRepo.GetByOrganization(ctx, query.OrganizationID(), ports.OrderFilter{})
	if err != nil {
		return GetConfirmationBatchesQueryResponse{}, err
	}

	snapshots, err := h.snapshotRepo.GetByOrganization(ctx, query.OrganizationID())
	if err != nil {
		return GetConfirmationBatchesQueryResponse{}, err
	}

	batches, warnings := h.builder.Build(orders, snapshots)
	for _, w := range warnings {
		h.logger.WarnContext(ctx, "batch deposit clamped",
			"batchKey", w.Key.String(), "detail", w.Message)
	}

	return GetConfirmationBatchesQueryResponse{Batches: batches, Warnings: warnings}, nil
}
