// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. A unit of work owns one database transaction, hands out
// repositories bound to it, and tracks every aggregate those repositories
// write so post-commit activities (event publishing, cache invalidation) know
// what changed.
//
// Basic usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package postgres

import (
	"context"

	"settlement/internal/adapters/out/postgres/batchrepo"
	"settlement/internal/adapters/out/postgres/csrepo"
	"settlement/internal/adapters/out/postgres/orderrepo"
	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances using a shared GORM
// database connection. Each business operation gets a fresh unit of work with
// its own transaction state, isolated from concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for transaction management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and tracks aggregate
// changes made through its repositories. Repositories obtained from the unit
// of work execute within the active transaction when one exists; otherwise
// they run against the main connection.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Calling Begin on an instance with an active transaction is a no-op, so
// handlers can layer Begin/defer-Rollback without nesting transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is active.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository provides access to order persistence within the unit of work.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return orderrepo.NewGormOrderRepository(db, uow)
}

// CSRecordRepository provides access to CS case persistence within the unit of work.
func (uow *GormUnitOfWork) CSRecordRepository() ports.CSRecordRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return csrepo.NewGormCSRecordRepository(db, uow)
}

// BatchSnapshotRepository provides access to batch snapshot persistence within
// the unit of work. Snapshots are plain rows and are not tracked.
func (uow *GormUnitOfWork) BatchSnapshotRepository() ports.BatchSnapshotRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return batchrepo.NewGormBatchSnapshotRepository(db)
}

// TrackAggregate registers a domain aggregate as modified within this unit of
// work. Repository implementations call it on every successful write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
