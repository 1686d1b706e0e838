package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/core/domain/model/order"
	"settlement/internal/core/ports"
	"settlement/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateAll saves a set of orders in a single call. The unit of work supplies
// the surrounding transaction, so either every row is written or none is.
func (r *GormOrderRepository) UpdateAll(ctx context.Context, aggregates []*order.Order) error {
	for _, aggregate := range aggregates {
		if err := r.Update(ctx, aggregate); err != nil {
			return fmt.Errorf("update order %s: %w", aggregate.ID().String(), err)
		}
	}

	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByIDs retrieves the current snapshot of the given orders. Errors when any
// id is absent so callers always validate against a complete set.
func (r *GormOrderRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error) {
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", raw).Error; err != nil {
		return nil, err
	}

	found := make(map[uuid.UUID]OrderDTO, len(dtos))
	for _, dto := range dtos {
		found[dto.ID] = dto
	}

	orders := make([]*order.Order, 0, len(ids))
	for _, id := range ids {
		dto, ok := found[id.Bytes()]
		if !ok {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}

		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// GetByNumber retrieves an order by its business-visible number.
func (r *GormOrderRepository) GetByNumber(ctx context.Context, number order.Number) (*order.Order, error) {
	if err := number.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "number = ?", number.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", number.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrganization retrieves all orders owned by the organization that match
// the filter, oldest confirmation first.
func (r *GormOrderRepository) GetByOrganization(
	ctx context.Context, organizationID kernel.UUID, filter ports.OrderFilter,
) ([]*order.Order, error) {
	if err := organizationID.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).Where("organization_id = ?", organizationID.Bytes())
	if len(filter.Statuses) > 0 {
		statuses := make([]int, 0, len(filter.Statuses))
		for _, status := range filter.Statuses {
			statuses = append(statuses, int(status))
		}
		query = query.Where("status IN ?", statuses)
	}
	if filter.ConfirmedFrom != nil {
		query = query.Where("confirmed_at >= ?", *filter.ConfirmedFrom)
	}
	if filter.ConfirmedTo != nil {
		query = query.Where("confirmed_at <= ?", *filter.ConfirmedTo)
	}

	var dtos []OrderDTO
	if err := query.Order("confirmed_at, number").Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// NextNumberSequence returns the next value of the per-channel order-number
// sequence. The upsert keeps concurrent callers from handing out duplicates.
func (r *GormOrderRepository) NextNumberSequence(ctx context.Context, channel order.Channel) (int, error) {
	if err := channel.Validate(); err != nil {
		return 0, err
	}

	var next int
	err := r.db.WithContext(ctx).Raw(
		`INSERT INTO order_number_sequences (channel, value) VALUES (?, 1)
		 ON CONFLICT (channel) DO UPDATE SET value = order_number_sequences.value + 1
		 RETURNING value`,
		int(channel),
	).Scan(&next).Error
	if err != nil {
		return 0, err
	}

	return next, nil
}

// ListOrganizations returns the distinct organizations owning at least one
// order. Orders without an owner are invisible to organization sweeps.
func (r *GormOrderRepository) ListOrganizations(ctx context.Context) ([]kernel.UUID, error) {
	var raw []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Distinct("organization_id").
		Where("organization_id IS NOT NULL").
		Order("organization_id").
		Pluck("organization_id", &raw).Error
	if err != nil {
		return nil, err
	}

	organizations := make([]kernel.UUID, 0, len(raw))
	for _, id := range raw {
		organizationID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		organizations = append(organizations, organizationID)
	}

	return organizations, nil
}
