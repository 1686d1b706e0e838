package commands

import (
	"errors"

	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/pkg/guard"
)

var ErrRejectCancelCommandIsNotConstructed = errors.New(
	"RejectCancelCommand must be created via NewRejectCancelCommand constructor",
)

// RejectCancelCommand represents rejecting pending cancellation requests,
// returning the orders to preparation without clearing anything.
type RejectCancelCommand struct { //nolint:recvcheck //using for validation
	orderIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewRejectCancelCommand creates a command to reject cancellation requests.
func NewRejectCancelCommand(orderIDs []kernel.UUID) (RejectCancelCommand, error) {
	if err := validateOrderIDs(orderIDs); err != nil {
		return RejectCancelCommand{}, err
	}

	return RejectCancelCommand{
		orderIDs: orderIDs,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectCancelCommand) Validate() error {
	return c.guard.Validate(ErrRejectCancelCommandIsNotConstructed)
}

// OrderIDs returns the target order identifiers.
func (c RejectCancelCommand) OrderIDs() []kernel.UUID { return c.orderIDs }
