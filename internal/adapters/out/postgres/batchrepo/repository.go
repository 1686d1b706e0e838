package batchrepo

import (
	"context"

	"settlement/internal/core/domain/model/batch"
	"settlement/internal/core/domain/model/kernel"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormBatchSnapshotRepository implements BatchSnapshotRepository using GORM.
// Snapshots are value rows, not tracked aggregates, so the repository writes
// them directly without an aggregate tracker.
type GormBatchSnapshotRepository struct {
	db *gorm.DB
}

// NewGormBatchSnapshotRepository creates a new GORM batch snapshot repository.
func NewGormBatchSnapshotRepository(db *gorm.DB) *GormBatchSnapshotRepository {
	return &GormBatchSnapshotRepository{db: db}
}

// Upsert stores the snapshot, replacing any existing row for the same key.
func (r *GormBatchSnapshotRepository) Upsert(ctx context.Context, snapshot batch.Snapshot) error {
	if err := snapshot.Key.OrganizationID.Validate(); err != nil {
		return err
	}

	dto := fromDomain(snapshot)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "organization_id"}, {Name: "confirmed_at"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_amount", "cash_used", "final_deposit_amount", "depositor_name", "executor_id",
		}),
	}).Create(&dto).Error
}

// GetByOrganization retrieves all snapshots for the organization, keyed for
// precedence lookups during batch recomputation.
func (r *GormBatchSnapshotRepository) GetByOrganization(
	ctx context.Context, organizationID kernel.UUID,
) (map[batch.Key]batch.Snapshot, error) {
	if err := organizationID.Validate(); err != nil {
		return nil, err
	}

	var dtos []SnapshotDTO
	err := r.db.WithContext(ctx).Find(&dtos, "organization_id = ?", organizationID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	snapshots := make(map[batch.Key]batch.Snapshot, len(dtos))
	for _, dto := range dtos {
		snapshot, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		snapshots[snapshot.Key] = snapshot
	}

	return snapshots, nil
}
