package csrepo

import (
	"context"
	"errors"

	"settlement/internal/core/domain/model/cs"
	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/core/domain/model/order"
	"settlement/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCSRecordRepository implements CSRecordRepository using GORM.
type GormCSRecordRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCSRecordRepository creates a new GORM CS record repository.
func NewGormCSRecordRepository(db *gorm.DB, tracker aggregateTracker) *GormCSRecordRepository {
	return &GormCSRecordRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new case record to the database.
func (r *GormCSRecordRepository) Add(ctx context.Context, record *cs.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

// Update saves an existing case record to the database.
func (r *GormCSRecordRepository) Update(ctx context.Context, record *cs.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	result := r.db.WithContext(ctx).Model(&RecordDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

// Get retrieves a case record by ID.
func (r *GormCSRecordRepository) Get(ctx context.Context, id kernel.UUID) (*cs.Record, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RecordDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cs record", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrderNumber retrieves every case record tied to the order, newest first.
func (r *GormCSRecordRepository) GetByOrderNumber(ctx context.Context, number order.Number) ([]*cs.Record, error) {
	if err := number.Validate(); err != nil {
		return nil, err
	}

	var dtos []RecordDTO
	err := r.db.WithContext(ctx).
		Where("order_number = ?", number.String()).
		Order("created_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	records := make([]*cs.Record, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}
