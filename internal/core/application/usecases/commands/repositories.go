// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// and persistence; lifecycle commands additionally publish change events and
// invalidate the statistics cache after commit.
package commands

import (
	"context"

	"settlement/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CSRecordRepoFactory provides access to the case-record repository within a transaction.
	CSRecordRepoFactory interface {
		CSRecordRepository() ports.CSRecordRepository
	}

	// BatchSnapshotRepoFactory provides access to the batch-snapshot repository within a transaction.
	BatchSnapshotRepoFactory interface {
		BatchSnapshotRepository() ports.BatchSnapshotRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CSUoW manages transactions for customer-service submissions, which touch
	// both the case record and (for resends) a new order.
	CSUoW interface {
		TxManager
		OrderRepoFactory
		CSRecordRepoFactory
	}

	// CSUoWFactory creates new customer-service unit of work instances.
	CSUoWFactory interface {
		Create() CSUoW
	}

	// SettlementUoW manages transactions that update orders and pin batch
	// snapshot totals together.
	SettlementUoW interface {
		TxManager
		OrderRepoFactory
		BatchSnapshotRepoFactory
	}

	// SettlementUoWFactory creates new settlement unit of work instances.
	SettlementUoWFactory interface {
		Create() SettlementUoW
	}
)
