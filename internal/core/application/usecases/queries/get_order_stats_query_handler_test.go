package queries_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"settlement/internal/core/application/usecases/queries"
	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/core/domain/model/order"
	"settlement/internal/core/domain/services"
	"settlement/internal/core/ports"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(_ context.Context, _ *order.Order) error {
	return errors.New("not implemented in mock")
}
func (m *MockOrderRepository) Update(_ context.Context, _ *order.Order) error {
	return errors.New("not implemented in mock")
}
func (m *MockOrderRepository) UpdateAll(_ context.Context, _ []*order.Order) error {
	return errors.New("not implemented in mock")
}
func (m *MockOrderRepository) Get(_ context.Context, _ kernel.UUID) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockOrderRepository) GetByIDs(_ context.Context, _ []kernel.UUID) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
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
func (m *MockOrderRepository) NextNumberSequence(_ context.Context, _ order.Channel) (int, error) {
	return 0, errors.New("not implemented in mock")
}
func (m *MockOrderRepository) ListOrganizations(_ context.Context) ([]kernel.UUID, error) {
	return nil, errors.New("not implemented in mock")
}

type MockStatsCache struct{ mock.Mock }

func (m *MockStatsCache) Get(
	ctx context.Context,
	organizationID kernel.UUID,
	variant order.Variant,
) (services.StatsReport, bool, error) {
	args := m.Called(ctx, organizationID, variant)
	return args.Get(0).(services.StatsReport), args.Bool(1), args.Error(2)
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
func (m *MockStatsCache) Invalidate(_ context.Context, _ kernel.UUID) error {
	return errors.New("not implemented in mock")
}

func fixtureOrder(t *testing.T, organizationID kernel.UUID) *order.Order {
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
		2,
		10000,
		0,
		&organizationID,
	)
	require.NoError(t, err)
	return o
}

func TestGetOrderStatsQueryHandler_Handle_CacheHit(t *testing.T) {
	ctx := t.Context()
	orgID := kernel.NewUUID()
	query, err := queries.NewGetOrderStatsQuery(orgID, order.VariantPlatform)
	require.NoError(t, err)

	cached := services.NewAggregator(order.VariantPlatform).
		Aggregate([]*order.Order{fixtureOrder(t, orgID)})

	statsCache := new(MockStatsCache)
	statsCache.On("Get", ctx, orgID, order.VariantPlatform).Return(cached, true, nil).Once()
	orderRepo := new(MockOrderRepository)

	h := queries.NewGetOrderStatsQueryHandler(orderRepo, statsCache, discardLogger())
	report, err := h.Handle(ctx, query)
	require.NoError(t, err)

	assert.Equal(t, cached, report)
	orderRepo.AssertNotCalled(t, "GetByOrganization", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetOrderStatsQueryHandler_Handle_CacheMissComputesAndStores(t *testing.T) {
	ctx := t.Context()
	orgID := kernel.NewUUID()
	query, err := queries.NewGetOrderStatsQuery(orgID, order.VariantPlatform)
	require.NoError(t, err)

	orders := []*order.Order{fixtureOrder(t, orgID), fixtureOrder(t, orgID)}

	statsCache := new(MockStatsCache)
	statsCache.On("Get", ctx, orgID, order.VariantPlatform).
		Return(services.StatsReport{}, false, nil).Once()
	statsCache.On("Set", ctx, orgID, order.VariantPlatform,
		mock.AnythingOfType("services.StatsReport"), mock.AnythingOfType("time.Duration")).
		Return(nil).Once()

	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetByOrganization", ctx, orgID, ports.OrderFilter{}).Return(orders, nil).Once()

	h := queries.NewGetOrderStatsQueryHandler(orderRepo, statsCache, discardLogger())
	report, err := h.Handle(ctx, query)
	require.NoError(t, err)

	uploaded := order.Uploaded.String()
	assert.Equal(t, 2, report.Total.ByStatus[uploaded].Count)
	assert.Equal(t, 4, report.Total.ByStatus[uploaded].Quantity)
	assert.Equal(t, kernel.Money(20000), report.Total.TotalAmount)

	statsCache.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestGetOrderStatsQueryHandler_Handle_CacheFailureFallsThrough(t *testing.T) {
	ctx := t.Context()
	orgID := kernel.NewUUID()
	query, err := queries.NewGetOrderStatsQuery(orgID, order.VariantMarketplace)
	require.NoError(t, err)

	statsCache := new(MockStatsCache)
	statsCache.On("Get", ctx, orgID, order.VariantMarketplace).
		Return(services.StatsReport{}, false, errors.New("redis down")).Once()
	statsCache.On("Set", ctx, orgID, order.VariantMarketplace,
		mock.AnythingOfType("services.StatsReport"), mock.AnythingOfType("time.Duration")).
		Return(errors.New("redis down")).Once()

	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetByOrganization", ctx, orgID, ports.OrderFilter{}).
		Return([]*order.Order{fixtureOrder(t, orgID)}, nil).Once()

	h := queries.NewGetOrderStatsQueryHandler(orderRepo, statsCache, discardLogger())
	report, err := h.Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, kernel.Money(10000), report.Total.TotalAmount)
}
