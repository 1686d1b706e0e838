package commands

import (
	"errors"

	"settlement/internal/pkg/guard"
)

var ErrRefreshStatsCommandIsNotConstructed = errors.New(
	"RefreshStatsCommand must be created via NewRefreshStatsCommand constructor",
)

// RefreshStatsCommand represents one cache-warming pass that recomputes the
// statistics reports of every organization.
type RefreshStatsCommand struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

// NewRefreshStatsCommand creates a command to run one cache-warming pass.
func NewRefreshStatsCommand() RefreshStatsCommand {
	return RefreshStatsCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c RefreshStatsCommand) Validate() error {
	return c.guard.Validate(ErrRefreshStatsCommandIsNotConstructed)
}
