package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	postgres_adapter "settlement/internal/adapters/out/postgres"
	"settlement/internal/adapters/out/postgres/batchrepo"
	"settlement/internal/adapters/out/postgres/csrepo"
	"settlement/internal/adapters/out/postgres/orderrepo"
	"settlement/internal/core/domain/model/batch"
	"settlement/internal/core/domain/model/cs"
	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/core/domain/model/order"
	"settlement/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
	seq       int
}

// SetupSuite initializes the PostgreSQL container and database connection,
// then migrates the schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.NumberSequenceDTO{},
		&csrepo.RecordDTO{},
		&batchrepo.SnapshotDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_number_sequences, cs_records, batch_snapshots").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up the PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies the factory creates isolated unit of
// work instances that each expose all three repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.CSRecordRepository())
	suite.NotNil(uow1.BatchSnapshotRepository())
	suite.NotNil(uow2.OrderRepository())
}

// TestUnitOfWork_TransactionLifecycle verifies begin, commit, and rollback
// behavior including the idempotent Begin.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)
}

// TestUnitOfWork_CommitWithoutBegin verifies commit and rollback fail when no
// transaction is active.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitWithoutBegin() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

// TestUnitOfWork_RollbackDiscardsWrites verifies that writes made through the
// unit of work's repositories vanish on rollback.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsWrites() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	testOrder := suite.createTestOrder()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	suite.Require().NoError(uow.Rollback(ctx))

	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(0), count)
}

// TestUnitOfWork_CrossRepositoryTransaction verifies that an order, its CS
// record and a batch snapshot commit atomically through one unit of work.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CrossRepositoryTransaction() {
	ctx := context.Background()
	now := time.Date(2024, 3, 4, 10, 15, 0, 0, time.UTC)
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	testOrder := suite.createTestOrder()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	record, err := cs.NewAnnotationRecord(
		kernel.NewUUID(), testOrder.Number(), "wrong item", "customer wants an exchange", cs.Exchange, now,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.CSRecordRepository().Add(ctx, record))

	organizationID := kernel.NewUUID()
	snapshot := batch.Snapshot{
		Key:                batch.NewKey(organizationID, now),
		TotalAmount:        kernel.Money(10000),
		CashUsed:           kernel.Money(500),
		FinalDepositAmount: kernel.Money(9500),
		DepositorName:      "Hong Gildong",
	}
	suite.Require().NoError(uow.BatchSnapshotRepository().Upsert(ctx, snapshot))

	suite.Require().NoError(uow.Commit(ctx))

	retrieved, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.Number(), retrieved.Number())

	records, err := suite.factory.Create().CSRecordRepository().GetByOrderNumber(ctx, testOrder.Number())
	suite.Require().NoError(err)
	suite.Require().Len(records, 1)
	suite.Equal(cs.Exchange, records[0].Resolution())

	snapshots, err := suite.factory.Create().BatchSnapshotRepository().GetByOrganization(ctx, organizationID)
	suite.Require().NoError(err)
	suite.Require().Len(snapshots, 1)
	suite.Equal(kernel.Money(9500), snapshots[snapshot.Key].FinalDepositAmount)
}

// TestUnitOfWork_SnapshotUpsertReplacesTotals verifies that upserting the same
// key replaces the pinned totals instead of inserting a second row.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SnapshotUpsertReplacesTotals() {
	ctx := context.Background()
	organizationID := kernel.NewUUID()
	key := batch.NewKey(organizationID, time.Date(2024, 3, 4, 10, 15, 0, 0, time.UTC))

	repo := suite.factory.Create().BatchSnapshotRepository()

	suite.Require().NoError(repo.Upsert(ctx, batch.Snapshot{
		Key: key, TotalAmount: 1000, FinalDepositAmount: 1000, DepositorName: "Hong Gildong",
	}))
	suite.Require().NoError(repo.Upsert(ctx, batch.Snapshot{
		Key: key, TotalAmount: 2000, FinalDepositAmount: 1500, CashUsed: 500, DepositorName: "Hong Gildong",
	}))

	snapshots, err := repo.GetByOrganization(ctx, organizationID)
	suite.Require().NoError(err)
	suite.Require().Len(snapshots, 1)
	suite.Equal(kernel.Money(2000), snapshots[key].TotalAmount)
	suite.Equal(kernel.Money(1500), snapshots[key].FinalDepositAmount)
}

// createTestOrder creates a basic order with a run-unique business number.
func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder() *order.Order {
	suite.seq++
	number := order.Number(fmt.Sprintf("MK-20240304100000-%04d", suite.seq))

	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		number,
		order.ChannelMarketplace,
		"Coupang",
		"Black / M",
		order.Recipient{Name: "Lee Seojun", Phone: "010-9876-5432", Address: "77 Haeundae-ro, Busan"},
		1,
		kernel.Money(10000),
		kernel.Money(500),
		nil,
	)
	suite.Require().NoError(err)
	return testOrder
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
