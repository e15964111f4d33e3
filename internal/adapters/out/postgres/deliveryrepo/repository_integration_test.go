package deliveryrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"grameego/internal/adapters/out/postgres/deliveryrepo"
	"grameego/internal/core/domain/model/delivery"
	"grameego/internal/core/domain/model/kernel"
	"grameego/internal/pkg/errs"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// noopTracker is used where tracking calls are not the point of the test.
type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

// DeliveryRepositoryIntegrationTestSuite verifies persistence behavior
// against a real PostgreSQL container, in particular the conditional update
// that guards driver assignment.
type DeliveryRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *deliveryrepo.GormDeliveryRepository
	tracker    *MockAggregateTracker
}

func (suite *DeliveryRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&deliveryrepo.DeliveryDTO{}, &deliveryrepo.DeliveryItemDTO{}))
}

func (suite *DeliveryRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE deliveries, delivery_items").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = deliveryrepo.NewGormDeliveryRepository(suite.db, suite.tracker)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DeliveryRepositoryIntegrationTestSuite) createTestDelivery() *delivery.Delivery {
	distance := 5.0
	d, err := delivery.NewDelivery(
		kernel.NewUUID(),
		kernel.NewUUID(),
		delivery.ShopRef{ID: kernel.NewUUID(), Name: "Village Store", Address: "1 Main Road"},
		[]delivery.ItemSnapshot{
			{ProductID: kernel.NewUUID(), Name: "Rice", Quantity: 2, UnitPrice: kernel.NewMoneyFromFloat(10.00)},
			{ProductID: kernel.NewUUID(), Name: "Lentils", Quantity: 1, UnitPrice: kernel.NewMoneyFromFloat(5.00)},
		},
		"Rice x2, Lentils x1",
		"07700900001",
		"Greenfield",
		&distance,
		nil,
		kernel.NewMoneyFromFloat(25.00),
		kernel.NewMoneyFromFloat(5.00),
		time.Now().UTC().Truncate(time.Millisecond),
	)
	suite.Require().NoError(err)
	return d
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()

	d := suite.createTestDelivery()
	suite.tracker.On("TrackAggregate", d.ID(), d).Once()
	suite.Require().NoError(suite.repository.Add(ctx, d))

	loaded, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)

	suite.Equal(d.ID().String(), loaded.ID().String())
	suite.Equal("25.00", loaded.ProductTotal().String())
	suite.Equal("5.00", loaded.DeliveryFee().String())
	suite.Equal("30.00", loaded.GrandTotal().String())
	suite.Equal(delivery.StatusPending, loaded.Status())
	suite.Equal(delivery.ConfirmationPending, loaded.Confirmation().Status)
	suite.False(loaded.IsAssigned())

	items := loaded.Items()
	suite.Require().Len(items, 2)
	suite.Equal("Rice", items[0].Name)
	suite.Equal(2, items[0].Quantity)
	suite.Equal("Lentils", items[1].Name)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestAssign_BindsFirstDriverOnly() {
	ctx := context.Background()
	repo := deliveryrepo.NewGormDeliveryRepository(suite.db, noopTracker{})

	d := suite.createTestDelivery()
	suite.Require().NoError(repo.Add(ctx, d))

	first := kernel.NewUUID()
	assigned, err := repo.Assign(ctx, d.ID(), first)
	suite.Require().NoError(err)
	suite.Require().True(assigned.AssignedDriver().IsEqual(first))

	_, err = repo.Assign(ctx, d.ID(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrAlreadyAssigned)

	loaded, err := repo.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.True(loaded.AssignedDriver().IsEqual(first))
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestAssign_ConcurrentDrivers_OneWinner() {
	ctx := context.Background()
	repo := deliveryrepo.NewGormDeliveryRepository(suite.db, noopTracker{})

	d := suite.createTestDelivery()
	suite.Require().NoError(repo.Add(ctx, d))

	const drivers = 8
	results := make([]error, drivers)

	var wg sync.WaitGroup
	for i := range drivers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, results[i] = repo.Assign(ctx, d.ID(), kernel.NewUUID())
		}()
	}
	wg.Wait()

	winners := 0
	for _, err := range results {
		if err == nil {
			winners++
		} else {
			suite.Require().ErrorIs(err, errs.ErrAlreadyAssigned)
		}
	}
	suite.Equal(1, winners)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestAssign_RejectedDelivery_Refused() {
	ctx := context.Background()
	repo := deliveryrepo.NewGormDeliveryRepository(suite.db, noopTracker{})

	d := suite.createTestDelivery()
	suite.Require().NoError(repo.Add(ctx, d))

	suite.Require().NoError(d.Confirm(d.Shop().ID, delivery.ConfirmationActionReject, "out of stock", time.Now()))
	suite.Require().NoError(repo.Update(ctx, d))

	_, err := repo.Assign(ctx, d.ID(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrInvalidState)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestUpdate_ClearsDriverOnUnassign() {
	ctx := context.Background()
	repo := deliveryrepo.NewGormDeliveryRepository(suite.db, noopTracker{})

	d := suite.createTestDelivery()
	suite.Require().NoError(repo.Add(ctx, d))

	driverID := kernel.NewUUID()
	assigned, err := repo.Assign(ctx, d.ID(), driverID)
	suite.Require().NoError(err)

	suite.Require().NoError(assigned.Unassign(driverID))
	suite.Require().NoError(repo.Update(ctx, assigned))

	loaded, err := repo.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.False(loaded.IsAssigned())

	// released rows are assignable again
	_, err = repo.Assign(ctx, d.ID(), kernel.NewUUID())
	suite.Require().NoError(err)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestUpdate_StaleAggregate_DoesNotOverwriteRejection() {
	ctx := context.Background()
	shopRepo := deliveryrepo.NewGormDeliveryRepository(suite.db, noopTracker{})
	driverRepo := deliveryrepo.NewGormDeliveryRepository(suite.db, noopTracker{})

	d := suite.createTestDelivery()
	suite.Require().NoError(shopRepo.Add(ctx, d))

	driverID := kernel.NewUUID()
	_, err := shopRepo.Assign(ctx, d.ID(), driverID)
	suite.Require().NoError(err)

	// The driver reads the assigned row before the shop decides.
	driverCopy, err := driverRepo.Get(ctx, d.ID())
	suite.Require().NoError(err)

	// Shop rejects, which also releases the driver.
	shopCopy, err := shopRepo.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(shopCopy.Confirm(shopCopy.Shop().ID, delivery.ConfirmationActionReject, "out of stock", time.Now()))
	suite.Require().NoError(shopRepo.Update(ctx, shopCopy))

	// The driver's pickup was prepared against the pre-rejection row and
	// must lose instead of resurrecting the assignment.
	suite.Require().NoError(driverCopy.MarkPicked(driverID))
	err = driverRepo.Update(ctx, driverCopy)
	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)

	loaded, err := shopRepo.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.Equal(delivery.ConfirmationRejected, loaded.Confirmation().Status)
	suite.Equal(delivery.StatusPending, loaded.Status())
	suite.False(loaded.IsAssigned())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestUpdate_SweepLosesToConcurrentAccept() {
	ctx := context.Background()
	sweepRepo := deliveryrepo.NewGormDeliveryRepository(suite.db, noopTracker{})
	driverRepo := deliveryrepo.NewGormDeliveryRepository(suite.db, noopTracker{})

	past := time.Now().Add(-time.Hour)
	d := suite.createTestDeliveryWithNeedBy(&past)
	suite.Require().NoError(sweepRepo.Add(ctx, d))

	overdue, err := sweepRepo.GetAllPendingUnassignedBefore(ctx, time.Now())
	suite.Require().NoError(err)
	suite.Require().Len(overdue, 1)

	// A driver grabs the delivery between the sweep's listing and its write.
	driverID := kernel.NewUUID()
	_, err = driverRepo.Assign(ctx, d.ID(), driverID)
	suite.Require().NoError(err)

	suite.Require().NoError(overdue[0].CancelByPolicy())
	err = sweepRepo.Update(ctx, overdue[0])
	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)

	loaded, err := driverRepo.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.Equal(delivery.StatusPending, loaded.Status())
	suite.Require().True(loaded.AssignedDriver().IsEqual(driverID))
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestUpdate_MissingRow_NotFound() {
	ctx := context.Background()
	repo := deliveryrepo.NewGormDeliveryRepository(suite.db, noopTracker{})

	err := repo.Update(ctx, suite.createTestDelivery())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGetAllPendingUnassignedBefore() {
	ctx := context.Background()
	repo := deliveryrepo.NewGormDeliveryRepository(suite.db, noopTracker{})

	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	expired := suite.createTestDeliveryWithNeedBy(&past)
	fresh := suite.createTestDeliveryWithNeedBy(&future)
	noDeadline := suite.createTestDelivery()

	suite.Require().NoError(repo.Add(ctx, expired))
	suite.Require().NoError(repo.Add(ctx, fresh))
	suite.Require().NoError(repo.Add(ctx, noDeadline))

	found, err := repo.GetAllPendingUnassignedBefore(ctx, time.Now())
	suite.Require().NoError(err)

	suite.Require().Len(found, 1)
	suite.Equal(expired.ID().String(), found[0].ID().String())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) createTestDeliveryWithNeedBy(needBy *time.Time) *delivery.Delivery {
	d, err := delivery.NewDelivery(
		kernel.NewUUID(),
		kernel.NewUUID(),
		delivery.ShopRef{ID: kernel.NewUUID(), Name: "Village Store", Address: "1 Main Road"},
		[]delivery.ItemSnapshot{
			{ProductID: kernel.NewUUID(), Name: "Rice", Quantity: 1, UnitPrice: kernel.NewMoneyFromFloat(10.00)},
		},
		"Rice x1",
		"07700900001",
		"Greenfield",
		nil,
		needBy,
		kernel.NewMoneyFromFloat(10.00),
		kernel.NewMoneyFromFloat(4.00),
		time.Now().UTC().Truncate(time.Millisecond),
	)
	suite.Require().NoError(err)
	return d
}

func TestDeliveryRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}

	suite.Run(t, new(DeliveryRepositoryIntegrationTestSuite))
}
