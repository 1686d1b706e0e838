package commands

import (
	"context"
	"log/slog"
	"time"

	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/core/domain/model/order"
	"settlement/internal/core/domain/services"
	"settlement/internal/core/ports"
)

// SubmitCSResolutionResult reports the effect of an accepted customer-service
// submission. DuplicateCaseIDs lists the cases already open for the same order
// number; the submission proceeds regardless, the list is a warning for the
// operator, not a rejection.
type SubmitCSResolutionResult struct {
	RecordID          kernel.UUID
	ResendOrderID     *kernel.UUID
	ResendOrderNumber order.Number
	DuplicateCaseIDs  []kernel.UUID
}

// SubmitCSResolutionCommandHandler handles customer-service submissions:
// creates the case record, computes the refund payload or emits the shadow
// resend order, and surfaces duplicate-case warnings. The original order is
// never mutated.
type SubmitCSResolutionCommandHandler struct {
	uowFactory CSUoWFactory
	publisher  ports.OrderEventPublisher
	statsCache ports.StatsCache
	resolver   services.CSResolver
	logger     *slog.Logger
	now        func() time.Time
}

// NewSubmitCSResolutionCommandHandler creates a handler for customer-service
// submissions.
func NewSubmitCSResolutionCommandHandler(
	uowFactory CSUoWFactory,
	publisher ports.OrderEventPublisher,
	statsCache ports.StatsCache,
	logger *slog.Logger,
) SubmitCSResolutionCommandHandler {
	return SubmitCSResolutionCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		statsCache: statsCache,
		resolver:   services.NewCSResolver(),
		logger:     logger.With("component", "cs_resolution"),
		now:        time.Now,
	}
}

// Handle processes the submission. The case record and the optional resend
// order are persisted in one transaction.
func (h *SubmitCSResolutionCommandHandler) Handle(
	ctx context.Context,
	cmd SubmitCSResolutionCommand,
) (SubmitCSResolutionResult, error) {
	if err := cmd.Validate(); err != nil {
		return SubmitCSResolutionResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return SubmitCSResolutionResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	original, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return SubmitCSResolutionResult{}, err
	}

	recordRepo := uow.CSRecordRepository()
	existing, err := recordRepo.GetByOrderNumber(ctx, original.Number())
	if err != nil {
		return SubmitCSResolutionResult{}, err
	}
	duplicates := make([]kernel.UUID, 0, len(existing))
	for _, r := range existing {
		duplicates = append(duplicates, r.ID())
	}

	request := services.ResolutionRequest{
		Category:      cmd.Category(),
		Content:       cmd.Content(),
		Type:          cmd.ResolutionType(),
		RefundAccount: cmd.RefundAccount(),
		RefundPercent: cmd.RefundPercent(),
		Resend:        cmd.Resend(),
	}
	if request.Type.CreatesResendOrder() {
		seq, seqErr := orderRepo.NextNumberSequence(ctx, order.ChannelCustomerService)
		if seqErr != nil {
			return SubmitCSResolutionResult{}, seqErr
		}
		request.ResendNumber, err = order.GenerateNumber(order.ChannelCustomerService, h.now(), seq)
		if err != nil {
			return SubmitCSResolutionResult{}, err
		}
	}

	outcome, err := h.resolver.Resolve(original, request, h.now())
	if err != nil {
		return SubmitCSResolutionResult{}, err
	}

	if err = recordRepo.Add(ctx, outcome.Record); err != nil {
		return SubmitCSResolutionResult{}, err
	}
	if outcome.ResendOrder != nil {
		if err = orderRepo.Add(ctx, outcome.ResendOrder); err != nil {
			return SubmitCSResolutionResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return SubmitCSResolutionResult{}, err
	}

	result := SubmitCSResolutionResult{
		RecordID:         outcome.Record.ID(),
		DuplicateCaseIDs: duplicates,
	}
	if len(duplicates) > 0 {
		h.logger.InfoContext(ctx, "submission for an order with existing cases",
			"orderNumber", original.Number().String(), "existingCases", len(duplicates))
	}
	if outcome.ResendOrder != nil {
		resendID := outcome.ResendOrder.ID()
		result.ResendOrderID = &resendID
		result.ResendOrderNumber = outcome.ResendOrder.Number()
		notifyOrderChanges(ctx, h.publisher, h.statsCache, h.logger, "cs_resend",
			[]*order.Order{outcome.ResendOrder})
	}

	return result, nil
}
