package menurepo_test

import (
	"context"
	"testing"
	"time"

	"burgershop/internal/adapters/out/postgres/menurepo"
	"burgershop/internal/core/domain/model/menu"
	"burgershop/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id string, aggregate interface{}) {
	m.Called(id, aggregate)
}

// MenuItemRepositoryIntegrationTestSuite provides integration tests for the
// menu item repository using PostgreSQL containers.
type MenuItemRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *menurepo.GormMenuItemRepository
	tracker    *MockAggregateTracker
}

func (suite *MenuItemRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&menurepo.MenuItemDTO{}))
}

func (suite *MenuItemRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE menu_items").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = menurepo.NewGormMenuItemRepository(suite.db, suite.tracker)
}

func (suite *MenuItemRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *MenuItemRepositoryIntegrationTestSuite) TestAddAndGet_RoundTripsFlavors() {
	ctx := context.Background()

	item := suite.createTestItem("b1", "Classic Burger", "burgers")
	suite.tracker.On("TrackAggregate", "b1", item).Once()
	suite.Require().NoError(suite.repository.Add(ctx, item))

	retrieved, err := suite.repository.Get(ctx, "b1")
	suite.Require().NoError(err)
	suite.Equal("Classic Burger", retrieved.Name())
	suite.Equal("burgers", retrieved.Category())
	suite.Equal([]string{"Regular", "Spicy"}, retrieved.Flavors())
	suite.True(retrieved.Featured())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *MenuItemRepositoryIntegrationTestSuite) TestUpdate_EditsPersist() {
	ctx := context.Background()

	item := suite.createTestItem("b1", "Classic Burger", "burgers")
	suite.tracker.On("TrackAggregate", "b1", item).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, item))

	err := item.Update("Double Burger", "two patties", 189, "burgers", "double.jpg", nil, false)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, item))

	retrieved, err := suite.repository.Get(ctx, "b1")
	suite.Require().NoError(err)
	suite.Equal("Double Burger", retrieved.Name())
	suite.Equal(189.0, float64(retrieved.Price()))
	suite.Empty(retrieved.Flavors())
	suite.False(retrieved.Featured())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *MenuItemRepositoryIntegrationTestSuite) TestGetAll_OrdersByCategoryThenName() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("string"), mock.Anything).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestItem("d1", "Iced Tea", "drinks")))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestItem("b2", "Cheese Burger", "burgers")))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestItem("b1", "Aloha Burger", "burgers")))

	items, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(items, 3)
	suite.Equal("Aloha Burger", items[0].Name())
	suite.Equal("Cheese Burger", items[1].Name())
	suite.Equal("Iced Tea", items[2].Name())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *MenuItemRepositoryIntegrationTestSuite) TestDelete_RemovesItem() {
	ctx := context.Background()

	item := suite.createTestItem("b1", "Classic Burger", "burgers")
	suite.tracker.On("TrackAggregate", "b1", item).Once()
	suite.Require().NoError(suite.repository.Add(ctx, item))

	suite.Require().NoError(suite.repository.Delete(ctx, "b1"))

	_, err := suite.repository.Get(ctx, "b1")
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *MenuItemRepositoryIntegrationTestSuite) TestDelete_NonExistentItem_ReturnsNotFoundError() {
	err := suite.repository.Delete(context.Background(), "missing")

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

// createTestItem creates a featured menu item with two flavor variants.
func (suite *MenuItemRepositoryIntegrationTestSuite) createTestItem(id, name, category string) *menu.MenuItem {
	item, err := menu.NewMenuItem(id, name, "a test dish", 149, category, "item.jpg",
		[]string{"Regular", "Spicy"}, true)
	suite.Require().NoError(err)
	return item
}

func TestMenuItemRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(MenuItemRepositoryIntegrationTestSuite))
}
