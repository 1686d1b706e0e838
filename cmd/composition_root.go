package cmd

import (
	"log/slog"

	"settlement/internal/adapters/out/kafka"
	"settlement/internal/adapters/out/postgres"
	"settlement/internal/adapters/out/rediscache"
	"settlement/internal/core/application/usecases/commands"
	"settlement/internal/core/application/usecases/queries"
	"settlement/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  *kafka.Publisher
	statsCache *rediscache.StatsCache
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  kafka.NewPublisher([]string{config.KafkaHost}, config.KafkaOrderChangedTopic),
		statsCache: rediscache.NewStatsCache(redis.NewClient(&redis.Options{Addr: config.RedisAddr})),
		logger:     logger,
	}
}

// Close releases the outbound connections held by the root.
func (c *CompositionRoot) Close() error {
	return c.publisher.Close()
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateConfirmOrdersCommandHandler() commands.ConfirmOrdersCommandHandler {
	return commands.NewConfirmOrdersCommandHandler(c.orderUoWFactory(), c.publisher, c.statsCache, c.logger)
}

func (c *CompositionRoot) CreateConfirmPaymentCommandHandler() commands.ConfirmPaymentCommandHandler {
	return commands.NewConfirmPaymentCommandHandler(c.settlementUoWFactory(), c.publisher, c.statsCache, c.logger)
}

func (c *CompositionRoot) CreateSendToVendorCommandHandler() commands.SendToVendorCommandHandler {
	return commands.NewSendToVendorCommandHandler(c.orderUoWFactory(), c.publisher, c.statsCache, c.logger)
}

func (c *CompositionRoot) CreateRegisterTrackingCommandHandler() commands.RegisterTrackingCommandHandler {
	return commands.NewRegisterTrackingCommandHandler(c.orderUoWFactory(), c.publisher, c.statsCache, c.logger)
}

func (c *CompositionRoot) CreateUpdateTrackingCommandHandler() commands.UpdateTrackingCommandHandler {
	return commands.NewUpdateTrackingCommandHandler(c.orderUoWFactory(), c.publisher, c.statsCache, c.logger)
}

func (c *CompositionRoot) CreateRecallTrackingCommandHandler() commands.RecallTrackingCommandHandler {
	return commands.NewRecallTrackingCommandHandler(c.orderUoWFactory(), c.publisher, c.statsCache, c.logger)
}

func (c *CompositionRoot) CreateRequestCancelCommandHandler() commands.RequestCancelCommandHandler {
	return commands.NewRequestCancelCommandHandler(c.orderUoWFactory(), c.publisher, c.statsCache, c.logger)
}

func (c *CompositionRoot) CreateApproveCancelCommandHandler() commands.ApproveCancelCommandHandler {
	return commands.NewApproveCancelCommandHandler(c.orderUoWFactory(), c.publisher, c.statsCache, c.logger)
}

func (c *CompositionRoot) CreateRejectCancelCommandHandler() commands.RejectCancelCommandHandler {
	return commands.NewRejectCancelCommandHandler(c.orderUoWFactory(), c.publisher, c.statsCache, c.logger)
}

func (c *CompositionRoot) CreateCompleteRefundCommandHandler() commands.CompleteRefundCommandHandler {
	return commands.NewCompleteRefundCommandHandler(c.orderUoWFactory(), c.publisher, c.statsCache, c.logger)
}

func (c *CompositionRoot) CreateSubmitCSResolutionCommandHandler() commands.SubmitCSResolutionCommandHandler {
	return commands.NewSubmitCSResolutionCommandHandler(c.csUoWFactory(), c.publisher, c.statsCache, c.logger)
}

func (c *CompositionRoot) CreateSnapshotBatchesCommandHandler() commands.SnapshotBatchesCommandHandler {
	return commands.NewSnapshotBatchesCommandHandler(c.settlementUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateRefreshStatsCommandHandler() commands.RefreshStatsCommandHandler {
	return commands.NewRefreshStatsCommandHandler(c.readOnlyOrderRepository(), c.statsCache, c.logger)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatsQueryHandler() queries.GetOrderStatsQueryHandler {
	return queries.NewGetOrderStatsQueryHandler(c.readOnlyOrderRepository(), c.statsCache, c.logger)
}

func (c *CompositionRoot) CreateGetConfirmationBatchesQueryHandler() queries.GetConfirmationBatchesQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewGetConfirmationBatchesQueryHandler(
		uow.OrderRepository(), uow.BatchSnapshotRepository(), c.logger)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) csUoWFactory() commands.CSUoWFactory {
	return FuncCSUoWFactory(func() commands.CSUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) settlementUoWFactory() commands.SettlementUoWFactory {
	return FuncSettlementUoWFactory(func() commands.SettlementUoW {
		return c.uowFactory.Create()
	})
}

// readOnlyOrderRepository hands out an order repository bound straight to the
// connection. A unit of work that never begins a transaction reads from the
// database directly.
func (c *CompositionRoot) readOnlyOrderRepository() ports.OrderRepository {
	return c.uowFactory.Create().OrderRepository()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCSUoWFactory func() commands.CSUoW

func (f FuncCSUoWFactory) Create() commands.CSUoW {
	return f()
}

type FuncSettlementUoWFactory func() commands.SettlementUoW

func (f FuncSettlementUoWFactory) Create() commands.SettlementUoW {
	return f()
}
