// Package queries contains read-only operations over the settlement store.
// Query handlers bypass the aggregate layer: list views read projection rows
// with raw SQL, while the statistics and batch views recompute their derived
// read models through the domain services.
package queries

import (
	"errors"
	"time"

	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/core/domain/model/order"
	"settlement/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves the order list view for one organization,
// optionally narrowed by status and confirmation date range.
type GetOrdersQuery struct {
	organizationID kernel.UUID
	statuses       []order.Status
	confirmedFrom  *time.Time
	confirmedTo    *time.Time

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for the organization's order list.
// Status names must be canonical; an unknown name fails construction.
func NewGetOrdersQuery(
	organizationID kernel.UUID,
	statuses []string,
	confirmedFrom *time.Time,
	confirmedTo *time.Time,
) (GetOrdersQuery, error) {
	if err := organizationID.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}

	parsed := make([]order.Status, 0, len(statuses))
	for _, name := range statuses {
		status, err := order.ParseStatus(name)
		if err != nil {
			return GetOrdersQuery{}, err
		}
		parsed = append(parsed, status)
	}

	return GetOrdersQuery{
		organizationID: organizationID,
		statuses:       parsed,
		confirmedFrom:  confirmedFrom,
		confirmedTo:    confirmedTo,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// OrganizationID returns the owning organization.
func (q GetOrdersQuery) OrganizationID() kernel.UUID { return q.organizationID }

// Statuses returns the status filter, empty for all.
func (q GetOrdersQuery) Statuses() []order.Status { return q.statuses }

// ConfirmedFrom returns the inclusive lower bound on confirmation time.
func (q GetOrdersQuery) ConfirmedFrom() *time.Time { return q.confirmedFrom }

// ConfirmedTo returns the inclusive upper bound on confirmation time.
func (q GetOrdersQuery) ConfirmedTo() *time.Time { return q.confirmedTo }

// GetOrdersQueryResponse is one row of the order list view.
type GetOrdersQueryResponse struct {
	ID               kernel.UUID
	Number           string
	Channel          string
	Status           string
	MarketName       string
	VendorName       string
	OptionName       string
	RecipientName    string
	Quantity         int
	SettlementAmount int64
	CashUsed         int64
	CourierCompany   string
	TrackingNumber   string
	ConfirmedAt      *time.Time
	ShippedAt        *time.Time
}
