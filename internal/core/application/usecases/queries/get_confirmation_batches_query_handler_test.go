package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"settlement/internal/core/application/usecases/queries"
	"settlement/internal/core/domain/model/batch"
	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/core/domain/model/order"
	"settlement/internal/core/ports"
)

type MockBatchSnapshotRepository struct{ mock.Mock }

func (m *MockBatchSnapshotRepository) Upsert(ctx context.Context, snapshot batch.Snapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}
func (m *MockBatchSnapshotRepository) GetByOrganization(
	ctx context.Context,
	organizationID kernel.UUID,
) (map[batch.Key]batch.Snapshot, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[batch.Key]batch.Snapshot), args.Error(1)
}

func confirmedFixtureOrder(t *testing.T, organizationID kernel.UUID, confirmedAt time.Time) *order.Order {
	t.Helper()

	o := fixtureOrder(t, organizationID)
	require.NoError(t, o.Confirm(confirmedAt))
	return o
}

func TestGetConfirmationBatchesQueryHandler_Handle_RecomputesFromOrders(t *testing.T) {
	ctx := t.Context()
	orgID := kernel.NewUUID()
	minute := time.Date(2024, 3, 2, 9, 30, 0, 0, time.UTC)

	orders := []*order.Order{
		confirmedFixtureOrder(t, orgID, minute.Add(10*time.Second)),
		confirmedFixtureOrder(t, orgID, minute.Add(30*time.Second)),
	}

	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetByOrganization", ctx, orgID, ports.OrderFilter{}).Return(orders, nil).Once()
	snapshotRepo := new(MockBatchSnapshotRepository)
	snapshotRepo.On("GetByOrganization", ctx, orgID).
		Return(map[batch.Key]batch.Snapshot{}, nil).Once()

	query, err := queries.NewGetConfirmationBatchesQuery(orgID)
	require.NoError(t, err)

	h := queries.NewGetConfirmationBatchesQueryHandler(orderRepo, snapshotRepo, discardLogger())
	resp, err := h.Handle(ctx, query)
	require.NoError(t, err)

	require.Len(t, resp.Batches, 1)
	b := resp.Batches[0]
	assert.Equal(t, batch.NewKey(orgID, minute), b.Key)
	assert.Equal(t, kernel.Money(20000), b.TotalAmount)
	assert.Equal(t, kernel.Money(20000), b.FinalDepositAmount)
	assert.Equal(t, 2, b.OrderCount)
	assert.False(t, b.PaymentConfirmed)
	assert.Empty(t, resp.Warnings)
}

func TestGetConfirmationBatchesQueryHandler_Handle_SnapshotPrecedence(t *testing.T) {
	ctx := t.Context()
	orgID := kernel.NewUUID()
	minute := time.Date(2024, 3, 2, 9, 30, 0, 0, time.UTC)
	key := batch.NewKey(orgID, minute)

	orders := []*order.Order{confirmedFixtureOrder(t, orgID, minute)}
	snapshots := map[batch.Key]batch.Snapshot{
		key: {Key: key, TotalAmount: 7777, CashUsed: 0, FinalDepositAmount: 7777, DepositorName: "Hong Gildong"},
	}

	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetByOrganization", ctx, orgID, ports.OrderFilter{}).Return(orders, nil).Once()
	snapshotRepo := new(MockBatchSnapshotRepository)
	snapshotRepo.On("GetByOrganization", ctx, orgID).Return(snapshots, nil).Once()

	query, err := queries.NewGetConfirmationBatchesQuery(orgID)
	require.NoError(t, err)

	h := queries.NewGetConfirmationBatchesQueryHandler(orderRepo, snapshotRepo, discardLogger())
	resp, err := h.Handle(ctx, query)
	require.NoError(t, err)

	require.Len(t, resp.Batches, 1)
	assert.Equal(t, kernel.Money(7777), resp.Batches[0].TotalAmount)
	assert.Equal(t, "Hong Gildong", resp.Batches[0].DepositorName)
}
