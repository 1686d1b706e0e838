package queries

import (
	"errors"

	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/core/domain/model/order"
	"settlement/internal/pkg/guard"
)

var ErrGetOrderStatsQueryIsNotConstructed = errors.New(
	"GetOrderStatsQuery must be created via NewGetOrderStatsQuery constructor",
)

// GetOrderStatsQuery retrieves the per-dimension statistics report for one
// organization, displayed under the given variant's status labels.
type GetOrderStatsQuery struct {
	organizationID kernel.UUID
	variant        order.Variant

	guard guard.ConstructorGuard
}

// NewGetOrderStatsQuery creates a statistics query.
func NewGetOrderStatsQuery(organizationID kernel.UUID, variant order.Variant) (GetOrderStatsQuery, error) {
	if err := errors.Join(organizationID.Validate(), variant.Validate()); err != nil {
		return GetOrderStatsQuery{}, err
	}

	return GetOrderStatsQuery{
		organizationID: organizationID,
		variant:        variant,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatsQueryIsNotConstructed)
}

// OrganizationID returns the owning organization.
func (q GetOrderStatsQuery) OrganizationID() kernel.UUID { return q.organizationID }

// Variant returns the display variant for status labels.
func (q GetOrderStatsQuery) Variant() order.Variant { return q.variant }
