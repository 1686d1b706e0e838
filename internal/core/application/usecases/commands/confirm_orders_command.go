package commands

import (
	"errors"

	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/pkg/guard"
)

var ErrConfirmOrdersCommandIsNotConstructed = errors.New(
	"ConfirmOrdersCommand must be created via NewConfirmOrdersCommand constructor",
)

// ConfirmOrdersCommand represents a seller confirming a set of uploaded
// orders. Confirmation stamps the timestamp that keys each order into its
// confirmation batch and snapshots the settlement amount as the final payment
// amount.
type ConfirmOrdersCommand struct { //nolint:recvcheck //using for validation
	orderIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmOrdersCommand creates a command to confirm the given orders.
func NewConfirmOrdersCommand(orderIDs []kernel.UUID) (ConfirmOrdersCommand, error) {
	if err := validateOrderIDs(orderIDs); err != nil {
		return ConfirmOrdersCommand{}, err
	}

	return ConfirmOrdersCommand{
		orderIDs: orderIDs,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmOrdersCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrdersCommandIsNotConstructed)
}

// OrderIDs returns the target order identifiers.
func (c ConfirmOrdersCommand) OrderIDs() []kernel.UUID { return c.orderIDs }
