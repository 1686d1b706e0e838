package commands

import (
	"errors"

	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/core/domain/model/order"
	"settlement/internal/pkg/guard"
)

var ErrCompleteRefundCommandIsNotConstructed = errors.New(
	"CompleteRefundCommand must be created via NewCompleteRefundCommand constructor",
)

// CompleteRefundCommand represents finishing the refund for cancelled orders.
// The variant decides how the completed refund is represented: a timestamp on
// the cancelled status, or a promotion to the terminal refund status.
type CompleteRefundCommand struct { //nolint:recvcheck //using for validation
	orderIDs []kernel.UUID
	variant  order.Variant

	guard guard.ConstructorGuard
}

// NewCompleteRefundCommand creates a command to complete refunds under the
// given variant.
func NewCompleteRefundCommand(orderIDs []kernel.UUID, variant order.Variant) (CompleteRefundCommand, error) {
	if err := errors.Join(validateOrderIDs(orderIDs), variant.Validate()); err != nil {
		return CompleteRefundCommand{}, err
	}

	return CompleteRefundCommand{
		orderIDs: orderIDs,
		variant:  variant,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteRefundCommand) Validate() error {
	return c.guard.Validate(ErrCompleteRefundCommandIsNotConstructed)
}

// OrderIDs returns the target order identifiers.
func (c CompleteRefundCommand) OrderIDs() []kernel.UUID { return c.orderIDs }

// Variant returns the refund representation variant.
func (c CompleteRefundCommand) Variant() order.Variant { return c.variant }
