package commands

import (
	"errors"

	"settlement/internal/pkg/guard"
)

var ErrSnapshotBatchesCommandIsNotConstructed = errors.New(
	"SnapshotBatchesCommand must be created via NewSnapshotBatchesCommand constructor",
)

// SnapshotBatchesCommand represents one reconciliation sweep that pins totals
// of fully payment-confirmed batches that have no snapshot yet.
type SnapshotBatchesCommand struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

// NewSnapshotBatchesCommand creates a command to run one snapshot sweep.
func NewSnapshotBatchesCommand() SnapshotBatchesCommand {
	return SnapshotBatchesCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c SnapshotBatchesCommand) Validate() error {
	return c.guard.Validate(ErrSnapshotBatchesCommandIsNotConstructed)
}
