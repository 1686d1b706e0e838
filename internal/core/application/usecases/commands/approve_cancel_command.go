package commands

import (
	"errors"

	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/pkg/guard"
)

var ErrApproveCancelCommandIsNotConstructed = errors.New(
	"ApproveCancelCommand must be created via NewApproveCancelCommand constructor",
)

// ApproveCancelCommand represents approving pending cancellation requests.
type ApproveCancelCommand struct { //nolint:recvcheck //using for validation
	orderIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewApproveCancelCommand creates a command to approve cancellation requests.
func NewApproveCancelCommand(orderIDs []kernel.UUID) (ApproveCancelCommand, error) {
	if err := validateOrderIDs(orderIDs); err != nil {
		return ApproveCancelCommand{}, err
	}

	return ApproveCancelCommand{
		orderIDs: orderIDs,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveCancelCommand) Validate() error {
	return c.guard.Validate(ErrApproveCancelCommandIsNotConstructed)
}

// OrderIDs returns the target order identifiers.
func (c ApproveCancelCommand) OrderIDs() []kernel.UUID { return c.orderIDs }
