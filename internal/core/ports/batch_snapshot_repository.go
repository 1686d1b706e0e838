package ports

import (
	"context"

	"settlement/internal/core/domain/model/batch"
	"settlement/internal/core/domain/model/kernel"
)

// BatchSnapshotRepository defines the persistence contract for confirmation
// batch snapshots: the pinned totals of already-agreed batches.
type BatchSnapshotRepository interface {
	// Upsert stores the snapshot, replacing any existing one for the same key.
	Upsert(ctx context.Context, snapshot batch.Snapshot) error

	// GetByOrganization retrieves all snapshots for the organization, keyed
	// for precedence lookups during batch recomputation.
	GetByOrganization(ctx context.Context, organizationID kernel.UUID) (map[batch.Key]batch.Snapshot, error)
}
