package queries_test

import (
	"context"
	"testing"
	"time"

	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker is a no-op tracker for seeding test data.
type mockAggregateTracker struct{}

func (mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type OrderQueriesTestSuite struct {
	suite.Suite
	container       *postgres.PostgresContainer
	db              *gorm.DB
	byStatusHandler queries.GetOrdersByStatusQueryHandler
	byIDHandler     queries.GetOrderByIDQueryHandler
	orderRepo       *orderrepo.GormOrderRepository
}

func (suite *OrderQueriesTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderLineDTO{})
	suite.Require().NoError(err)

	suite.byStatusHandler = queries.NewGetOrdersByStatusQueryHandler(db)
	suite.byIDHandler = queries.NewGetOrderByIDQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, mockAggregateTracker{})
}

func (suite *OrderQueriesTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderQueriesTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
}

func (suite *OrderQueriesTestSuite) seedOrder(externalID int64, createdAt time.Time) *order.Order {
	price, err := kernel.NewMoney(5000)
	suite.Require().NoError(err)

	line, err := order.NewLine(500, 2, price)
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(kernel.NewUUID(), externalID, 1001, []order.Line{line}, createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(aggregate.ComputeTax(true))

	suite.Require().NoError(suite.orderRepo.Add(context.Background(), aggregate))

	return aggregate
}

func (suite *OrderQueriesTestSuite) TestGetOrdersByStatus_EmptyDatabase() {
	query, err := queries.NewGetOrdersByStatusQuery(order.Created)
	suite.Require().NoError(err)

	result, err := suite.byStatusHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *OrderQueriesTestSuite) TestGetOrdersByStatus_FiltersByStatus() {
	baseTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	created := suite.seedOrder(101, baseTime)

	sent := suite.seedOrder(102, baseTime)
	suite.Require().NoError(sent.MarkSent(baseTime.Add(time.Minute)))
	suite.Require().NoError(suite.orderRepo.Update(context.Background(), sent))

	query, err := queries.NewGetOrdersByStatusQuery(order.Created)
	suite.Require().NoError(err)

	result, err := suite.byStatusHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(created.ID()))
	suite.Equal(order.Created.String(), result[0].Status)
}

func (suite *OrderQueriesTestSuite) TestGetOrdersByStatus_SortsByCreationTime() {
	baseTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	suite.seedOrder(102, baseTime.Add(time.Hour))
	suite.seedOrder(101, baseTime)

	query, err := queries.NewGetOrdersByStatusQuery(order.Created)
	suite.Require().NoError(err)

	result, err := suite.byStatusHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(int64(101), result[0].ExternalID)
	suite.Equal(int64(102), result[1].ExternalID)
}

func (suite *OrderQueriesTestSuite) TestGetOrdersByStatus_IncludesLines() {
	baseTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	suite.seedOrder(101, baseTime)

	query, err := queries.NewGetOrdersByStatusQuery(order.Created)
	suite.Require().NoError(err)

	result, err := suite.byStatusHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Require().Len(result[0].Lines, 1)
	suite.Equal(int64(500), result[0].Lines[0].ProductID)
	suite.Equal(2, result[0].Lines[0].Quantity)
	suite.Equal(int64(5000), result[0].Lines[0].Price.Cents())
	suite.Equal(int64(2000), result[0].Tax.Cents())
}

func (suite *OrderQueriesTestSuite) TestGetOrdersByStatus_InvalidQuery() {
	invalidQuery := queries.GetOrdersByStatusQuery{}

	result, err := suite.byStatusHandler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetOrdersByStatusQuery constructor")
}

func (suite *OrderQueriesTestSuite) TestGetOrderByID_ReturnsOrder() {
	baseTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	aggregate := suite.seedOrder(101, baseTime)

	query, err := queries.NewGetOrderByIDQuery(aggregate.ID())
	suite.Require().NoError(err)

	result, err := suite.byIDHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(result.ID.IsEqual(aggregate.ID()))
	suite.Equal(int64(101), result.ExternalID)
	suite.Equal(order.Created.String(), result.Status)
	suite.Require().Len(result.Lines, 1)
	suite.Equal(int64(500), result.Lines[0].ProductID)
}

func (suite *OrderQueriesTestSuite) TestGetOrderByID_CancelledOrderCarriesReason() {
	baseTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	aggregate := suite.seedOrder(101, baseTime)
	suite.Require().NoError(aggregate.Cancel("customer changed their mind"))
	suite.Require().NoError(suite.orderRepo.Update(context.Background(), aggregate))

	query, err := queries.NewGetOrderByIDQuery(aggregate.ID())
	suite.Require().NoError(err)

	result, err := suite.byIDHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(order.Cancelled.String(), result.Status)
	suite.Equal("customer changed their mind", result.CancellationReason)
}

func (suite *OrderQueriesTestSuite) TestGetOrderByID_NotFound() {
	query, err := queries.NewGetOrderByIDQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.byIDHandler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderQueriesTestSuite) TestGetOrderByID_InvalidQuery() {
	invalidQuery := queries.GetOrderByIDQuery{}

	_, err := suite.byIDHandler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetOrderByIDQuery constructor")
}

func TestOrderQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(OrderQueriesTestSuite))
}
