package commands

import (
	"errors"

	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/pkg/guard"
)

var ErrRequestCancelCommandIsNotConstructed = errors.New(
	"RequestCancelCommand must be created via NewRequestCancelCommand constructor",
)

// RequestCancelCommand represents customers asking to cancel in-fulfillment
// orders.
type RequestCancelCommand struct { //nolint:recvcheck //using for validation
	orderIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewRequestCancelCommand creates a command to record cancellation requests.
func NewRequestCancelCommand(orderIDs []kernel.UUID) (RequestCancelCommand, error) {
	if err := validateOrderIDs(orderIDs); err != nil {
		return RequestCancelCommand{}, err
	}

	return RequestCancelCommand{
		orderIDs: orderIDs,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestCancelCommand) Validate() error {
	return c.guard.Validate(ErrRequestCancelCommandIsNotConstructed)
}

// OrderIDs returns the target order identifiers.
func (c RequestCancelCommand) OrderIDs() []kernel.UUID { return c.orderIDs }
