package commands

import (
	"errors"

	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/pkg/guard"
)

var ErrRecallTrackingCommandIsNotConstructed = errors.New(
	"RecallTrackingCommand must be created via NewRecallTrackingCommand constructor",
)

// RecallTrackingCommand represents reversing shipments: tracking fields and
// the shipment timestamp are cleared and the orders return to preparation.
type RecallTrackingCommand struct { //nolint:recvcheck //using for validation
	orderIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewRecallTrackingCommand creates a command to recall the given shipments.
func NewRecallTrackingCommand(orderIDs []kernel.UUID) (RecallTrackingCommand, error) {
	if err := validateOrderIDs(orderIDs); err != nil {
		return RecallTrackingCommand{}, err
	}

	return RecallTrackingCommand{
		orderIDs: orderIDs,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RecallTrackingCommand) Validate() error {
	return c.guard.Validate(ErrRecallTrackingCommandIsNotConstructed)
}

// OrderIDs returns the target order identifiers.
func (c RecallTrackingCommand) OrderIDs() []kernel.UUID { return c.orderIDs }
