package queries

import (
	"errors"

	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/pkg/guard"
)

var ErrGetConfirmationBatchesQueryIsNotConstructed = errors.New(
	"GetConfirmationBatchesQuery must be created via NewGetConfirmationBatchesQuery constructor",
)

// GetConfirmationBatchesQuery retrieves the confirmation batches of one
// organization, recomputed from the current orders with persisted snapshot
// totals taking precedence.
type GetConfirmationBatchesQuery struct {
	organizationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetConfirmationBatchesQuery creates a batch listing query.
func NewGetConfirmationBatchesQuery(organizationID kernel.UUID) (GetConfirmationBatchesQuery, error) {
	if err := organizationID.Validate(); err != nil {
		return GetConfirmationBatchesQuery{}, err
	}

	return GetConfirmationBatchesQuery{
		organizationID: organizationID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetConfirmationBatchesQuery) Validate() error {
	return q.guard.Validate(ErrGetConfirmationBatchesQueryIsNotConstructed)
}

// OrganizationID returns the owning organization.
func (q GetConfirmationBatchesQuery) OrganizationID() kernel.UUID { return q.organizationID }
