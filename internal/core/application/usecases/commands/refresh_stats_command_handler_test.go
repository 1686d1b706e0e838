package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"settlement/internal/core/application/usecases/commands"
	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/core/domain/model/order"
	"settlement/internal/core/domain/services"
	"settlement/internal/core/ports"
)

func TestRefreshStatsCommandHandler_Handle_WarmsBothVariants(t *testing.T) {
	ctx := t.Context()
	orgID := kernel.NewUUID()
	orders := []*order.Order{fixtureShippedOrder(t, &orgID)}

	orderRepo := new(MockOrderRepository)
	orderRepo.On("ListOrganizations", ctx).Return([]kernel.UUID{orgID}, nil).Once()
	orderRepo.On("GetByOrganization", ctx, orgID, ports.OrderFilter{}).Return(orders, nil).Once()

	statsCache := new(MockStatsCache)
	statsCache.On("Set", ctx, orgID, mock.AnythingOfType("order.Variant"),
		mock.AnythingOfType("services.StatsReport"), mock.AnythingOfType("time.Duration")).
		Return(nil).Twice()

	h := commands.NewRefreshStatsCommandHandler(orderRepo, statsCache, discardLogger())
	warmed, err := h.Handle(ctx, commands.NewRefreshStatsCommand())
	require.NoError(t, err)
	assert.Equal(t, 2, warmed)

	variants := map[order.Variant]services.StatsReport{}
	for _, call := range statsCache.Calls {
		if call.Method != "Set" {
			continue
		}
		variants[call.Arguments.Get(2).(order.Variant)] = call.Arguments.Get(3).(services.StatsReport)
	}
	require.Len(t, variants, 2)
	assert.Equal(t, services.NewAggregator(order.VariantMarketplace).Aggregate(orders),
		variants[order.VariantMarketplace])
	assert.Equal(t, services.NewAggregator(order.VariantPlatform).Aggregate(orders),
		variants[order.VariantPlatform])

	orderRepo.AssertExpectations(t)
	statsCache.AssertExpectations(t)
}

func TestRefreshStatsCommandHandler_Handle_CacheWriteFailureIsSkipped(t *testing.T) {
	ctx := t.Context()
	orgID := kernel.NewUUID()

	orderRepo := new(MockOrderRepository)
	orderRepo.On("ListOrganizations", ctx).Return([]kernel.UUID{orgID}, nil).Once()
	orderRepo.On("GetByOrganization", ctx, orgID, ports.OrderFilter{}).
		Return([]*order.Order{}, nil).Once()

	statsCache := new(MockStatsCache)
	statsCache.On("Set", ctx, orgID, mock.AnythingOfType("order.Variant"),
		mock.AnythingOfType("services.StatsReport"), mock.AnythingOfType("time.Duration")).
		Return(errors.New("connection refused")).Twice()

	h := commands.NewRefreshStatsCommandHandler(orderRepo, statsCache, discardLogger())
	warmed, err := h.Handle(ctx, commands.NewRefreshStatsCommand())
	require.NoError(t, err)
	assert.Zero(t, warmed)
}
