package commands

import (
	"context"
	"time"

	"settlement/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles order intake. Generates the
// channel-prefixed order number from the channel's persistent sequence and
// creates the aggregate in the channel's initial status.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for order intake operations.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the order intake command and returns the generated
// business-visible order number. Number generation and the insert share one
// transaction so a rolled-back intake never burns a number gap visible to the
// aggregate.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (order.Number, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	seq, err := orderRepo.NextNumberSequence(ctx, cmd.Channel())
	if err != nil {
		return "", err
	}

	number, err := order.GenerateNumber(cmd.Channel(), h.now(), seq)
	if err != nil {
		return "", err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		number,
		cmd.Channel(),
		cmd.MarketName(),
		cmd.OptionName(),
		cmd.Recipient(),
		cmd.Quantity(),
		cmd.SettlementAmount(),
		cmd.CashUsed(),
		cmd.OrganizationID(),
	)
	if err != nil {
		return "", err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return number, nil
}
