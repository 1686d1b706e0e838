package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"settlement/internal/core/application/usecases/commands"
	"settlement/internal/core/domain/model/batch"
	"settlement/internal/core/domain/model/cs"
	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/core/domain/model/order"
	"settlement/internal/core/domain/services"
	"settlement/internal/core/ports"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(_ context.Context, _ *order.Order) error { return nil }
func (m *MockOrderRepository) UpdateAll(ctx context.Context, orders []*order.Order) error {
	args := m.Called(ctx, orders)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetByNumber(_ context.Context, _ order.Number) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockOrderRepository) GetByOrganization(
	ctx context.Context,
	organizationID kernel.UUID,
	filter ports.OrderFilter,
) ([]*order.Order, error) {
	args := m.Called(ctx, organizationID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}
func (m *MockOrderRepository) NextNumberSequence(ctx context.Context, channel order.Channel) (int, error) {
	args := m.Called(ctx, channel)
	return args.Int(0), args.Error(1)
}
func (m *MockOrderRepository) ListOrganizations(ctx context.Context) ([]kernel.UUID, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

type MockCSRecordRepository struct{ mock.Mock }

func (m *MockCSRecordRepository) Add(ctx context.Context, record *cs.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}
func (m *MockCSRecordRepository) Update(_ context.Context, _ *cs.Record) error {
	return errors.New("not implemented in mock")
}
func (m *MockCSRecordRepository) Get(_ context.Context, _ kernel.UUID) (*cs.Record, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockCSRecordRepository) GetByOrderNumber(
	ctx context.Context,
	number order.Number,
) ([]*cs.Record, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cs.Record), args.Error(1)
}

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

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCSUoW struct{ MockOrderUoW }

func (m *MockCSUoW) CSRecordRepository() ports.CSRecordRepository {
	args := m.Called()
	return args.Get(0).(ports.CSRecordRepository)
}

type MockCSUoWFactory struct{ mock.Mock }

func (m *MockCSUoWFactory) Create() commands.CSUoW {
	args := m.Called()
	return args.Get(0).(commands.CSUoW)
}

type MockSettlementUoW struct{ MockOrderUoW }

func (m *MockSettlementUoW) BatchSnapshotRepository() ports.BatchSnapshotRepository {
	args := m.Called()
	return args.Get(0).(ports.BatchSnapshotRepository)
}

type MockSettlementUoWFactory struct{ mock.Mock }

func (m *MockSettlementUoWFactory) Create() commands.SettlementUoW {
	args := m.Called()
	return args.Get(0).(commands.SettlementUoW)
}

type MockOrderEventPublisher struct{ mock.Mock }

func (m *MockOrderEventPublisher) PublishChanged(
	ctx context.Context,
	operation string,
	orders []*order.Order,
) error {
	args := m.Called(ctx, operation, orders)
	return args.Error(0)
}

type MockStatsCache struct{ mock.Mock }

func (m *MockStatsCache) Get(
	_ context.Context,
	_ kernel.UUID,
	_ order.Variant,
) (services.StatsReport, bool, error) {
	return services.StatsReport{}, false, errors.New("not implemented in mock")
}
func (m *MockStatsCache) Set(
	ctx context.Context,
	organizationID kernel.UUID,
	variant order.Variant,
	report services.StatsReport,
	ttl time.Duration,
) error {
	args := m.Called(ctx, organizationID, variant, report, ttl)
	return args.Error(0)
}
func (m *MockStatsCache) Invalidate(ctx context.Context, organizationID kernel.UUID) error {
	args := m.Called(ctx, organizationID)
	return args.Error(0)
}

// Test fixture helpers shared by the handler tests.

func fixtureUploadedOrder(t *testing.T, organizationID *kernel.UUID) *order.Order {
	t.Helper()

	number, err := order.GenerateNumber(order.ChannelPlatform, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), 1)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		number,
		order.ChannelPlatform,
		"smartstore",
		"black / XL",
		order.Recipient{Name: "Kim Jiwoo", Phone: "010-1234-5678", Address: "12 Teheran-ro, Seoul"},
		1,
		10000,
		0,
		organizationID,
	)
	require.NoError(t, err)
	return o
}

func fixturePreparingOrder(t *testing.T, organizationID *kernel.UUID) *order.Order {
	t.Helper()

	o := fixtureUploadedOrder(t, organizationID)
	now := time.Date(2024, 3, 2, 9, 30, 0, 0, time.UTC)
	require.NoError(t, o.Confirm(now))
	require.NoError(t, o.ConfirmPayment(now))
	require.NoError(t, o.SendToVendor("Hanjin Fulfillment"))
	return o
}

func fixtureShippedOrder(t *testing.T, organizationID *kernel.UUID) *order.Order {
	t.Helper()

	o := fixturePreparingOrder(t, organizationID)
	require.NoError(t, o.StageTracking("CJ Logistics", "6882134970"))
	require.NoError(t, o.RegisterTracking(time.Date(2024, 3, 3, 11, 0, 0, 0, time.UTC)))
	return o
}
