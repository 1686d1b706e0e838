package commands

import (
	"errors"

	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/core/domain/services"
	"settlement/internal/pkg/guard"
)

var ErrUpdateTrackingCommandIsNotConstructed = errors.New(
	"UpdateTrackingCommand must be created via NewUpdateTrackingCommand constructor",
)

// UpdateTrackingCommand represents re-stamping tracking on already shipped
// orders, typically after a courier relabel.
type UpdateTrackingCommand struct { //nolint:recvcheck //using for validation
	orderIDs []kernel.UUID
	tracking map[kernel.UUID]services.Tracking

	guard guard.ConstructorGuard
}

// NewUpdateTrackingCommand creates a command to update tracking for the given
// orders.
func NewUpdateTrackingCommand(
	orderIDs []kernel.UUID,
	tracking map[kernel.UUID]services.Tracking,
) (UpdateTrackingCommand, error) {
	if err := validateOrderIDs(orderIDs); err != nil {
		return UpdateTrackingCommand{}, err
	}

	return UpdateTrackingCommand{
		orderIDs: orderIDs,
		tracking: tracking,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateTrackingCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTrackingCommandIsNotConstructed)
}

// OrderIDs returns the target order identifiers.
func (c UpdateTrackingCommand) OrderIDs() []kernel.UUID { return c.orderIDs }

// Tracking returns the staged fulfillment values per order.
func (c UpdateTrackingCommand) Tracking() map[kernel.UUID]services.Tracking { return c.tracking }
