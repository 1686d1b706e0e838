// Package batchrepo persists confirmation-batch snapshots: the pinned totals
// of batches whose deposit has already been agreed or verified.
package batchrepo

import (
	"time"

	"settlement/internal/core/domain/model/batch"
	"settlement/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// SnapshotDTO represents the database structure for persisting batch
// snapshots. The composite primary key mirrors the batch key: one row per
// organization per confirmation minute.
type SnapshotDTO struct {
	OrganizationID uuid.UUID `gorm:"type:uuid;primaryKey"`
	ConfirmedAt    time.Time `gorm:"primaryKey"`

	TotalAmount        int64 `gorm:"column:total_amount"`
	CashUsed           int64 `gorm:"column:cash_used"`
	FinalDepositAmount int64 `gorm:"column:final_deposit_amount"`

	DepositorName string     `gorm:"column:depositor_name"`
	ExecutorID    *uuid.UUID `gorm:"type:uuid"`
}

// TableName specifies the database table name for batch snapshots.
func (SnapshotDTO) TableName() string {
	return "batch_snapshots"
}

// fromDomain converts a batch snapshot to its database representation.
func fromDomain(snapshot batch.Snapshot) SnapshotDTO {
	var executorID *uuid.UUID
	if id := snapshot.ExecutorID; id != nil {
		raw := id.Bytes()
		executorID = &raw
	}

	return SnapshotDTO{
		OrganizationID:     snapshot.Key.OrganizationID.Bytes(),
		ConfirmedAt:        snapshot.Key.ConfirmedAt,
		TotalAmount:        snapshot.TotalAmount.Int64(),
		CashUsed:           snapshot.CashUsed.Int64(),
		FinalDepositAmount: snapshot.FinalDepositAmount.Int64(),
		DepositorName:      snapshot.DepositorName,
		ExecutorID:         executorID,
	}
}

// toDomain converts a database DTO to a batch snapshot. The key is rebuilt
// through NewKey so the stored timestamp is re-normalized to a UTC minute.
func toDomain(dto SnapshotDTO) (batch.Snapshot, error) {
	organizationID, err := kernel.UUIDFromBytes(dto.OrganizationID[:])
	if err != nil {
		return batch.Snapshot{}, err
	}

	var executorID *kernel.UUID
	if dto.ExecutorID != nil {
		id, execErr := kernel.UUIDFromBytes((*dto.ExecutorID)[:])
		if execErr != nil {
			return batch.Snapshot{}, execErr
		}

		executorID = &id
	}

	return batch.Snapshot{
		Key:                batch.NewKey(organizationID, dto.ConfirmedAt),
		TotalAmount:        kernel.Money(dto.TotalAmount),
		CashUsed:           kernel.Money(dto.CashUsed),
		FinalDepositAmount: kernel.Money(dto.FinalDepositAmount),
		DepositorName:      dto.DepositorName,
		ExecutorID:         executorID,
	}, nil
}
