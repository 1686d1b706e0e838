package ports

import (
	"context"

	"settlement/internal/core/domain/model/cs"
	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/core/domain/model/order"
)

// CSRecordRepository defines the persistence contract for customer-service
// case records.
type CSRecordRepository interface {
	// Add persists a new case record to storage.
	Add(ctx context.Context, record *cs.Record) error

	// Update persists changes to an existing case record (open/closed only;
	// everything else on a record is write-once).
	Update(ctx context.Context, record *cs.Record) error

	// Get retrieves a case record by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*cs.Record, error)

	// GetByOrderNumber retrieves every case record tied to the order number,
	// newest first. Used for duplicate-case warnings before a new submission.
	GetByOrderNumber(ctx context.Context, number order.Number) ([]*cs.Record, error)
}
