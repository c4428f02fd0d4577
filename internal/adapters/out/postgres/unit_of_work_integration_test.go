package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/adapters/out/postgres"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/adapters/out/postgres/driverrepo"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/adapters/out/postgres/historyrepo"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/adapters/out/postgres/requestrepo"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/domain/model/driver"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/domain/model/history"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/domain/model/kernel"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/domain/model/request"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transactional behavior across the
// request, driver and history repositories: atomicity of multi-aggregate
// writes and serialization of concurrent transitions through row locks.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgrescontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgrescontainer.Run(ctx,
		"postgres:15-alpine",
		postgrescontainer.WithDatabase("testdb"),
		postgrescontainer.WithUsername("testuser"),
		postgrescontainer.WithPassword("testpass"),
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

	suite.Require().NoError(db.AutoMigrate(
		&requestrepo.RequestDTO{},
		&driverrepo.DriverDTO{},
		&historyrepo.RecordDTO{},
	))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE requests, drivers, request_history RESTART IDENTITY").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) seedPendingRequest(requesterID int64) *request.Request {
	ctx := context.Background()

	pickup, err := kernel.NewLocation(30.0444, 31.2357)
	suite.Require().NoError(err)
	req, err := request.NewRequest(requesterID, request.KindEmergency, pickup, nil)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.RequestRepository().Add(ctx, req))
	suite.Require().NoError(uow.Commit(ctx))
	return req
}

func (suite *UnitOfWorkIntegrationTestSuite) seedAvailableDriver() *driver.Driver {
	ctx := context.Background()

	vehicleID := int64(7)
	drv, err := driver.NewDriver(&vehicleID)
	suite.Require().NoError(err)
	drv.MarkAvailable()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.DriverRepository().Add(ctx, drv))
	suite.Require().NoError(uow.DriverRepository().Update(ctx, drv))
	suite.Require().NoError(uow.Commit(ctx))
	return drv
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAllWrites() {
	ctx := context.Background()

	pickup, err := kernel.NewLocation(30.0444, 31.2357)
	suite.Require().NoError(err)
	req, err := request.NewRequest(1, request.KindEmergency, pickup, nil)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.RequestRepository().Add(ctx, req))

	record, err := history.NewRecord(req.ID(), history.ActionRequestCreated, history.ActorRequester, nil)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.HistoryRepository().Add(ctx, record))

	suite.Require().NoError(uow.Rollback(ctx))

	var requestCount, historyCount int64
	suite.Require().NoError(suite.db.Table("requests").Count(&requestCount).Error)
	suite.Require().NoError(suite.db.Table("request_history").Count(&historyCount).Error)
	suite.Assert().Zero(requestCount)
	suite.Assert().Zero(historyCount)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()

	req := suite.seedPendingRequest(1)
	drv := suite.seedAvailableDriver()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	locked, err := uow.RequestRepository().GetForUpdate(ctx, req.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(locked.AssignDriver(drv.ID()))
	suite.Require().NoError(locked.Accept(drv.Vehicle()))

	lockedDriver, err := uow.DriverRepository().GetForUpdate(ctx, drv.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(lockedDriver.MarkBusy())

	suite.Require().NoError(uow.RequestRepository().Update(ctx, locked))
	suite.Require().NoError(uow.DriverRepository().Update(ctx, lockedDriver))

	driverID := drv.ID()
	record, err := history.NewRecord(req.ID(), history.ActionDriverAccepted, history.ActorDriver, &driverID)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.HistoryRepository().Add(ctx, record))

	suite.Require().NoError(uow.Commit(ctx))

	reloaded, err := suite.factory.Create().RequestRepository().Get(ctx, req.ID())
	suite.Require().NoError(err)
	suite.Assert().Equal(request.StatusAccepted, reloaded.Status())
	suite.Require().NotNil(reloaded.Driver())
	suite.Assert().Equal(drv.ID(), *reloaded.Driver())

	reloadedDriver, err := suite.factory.Create().DriverRepository().Get(ctx, drv.ID())
	suite.Require().NoError(err)
	suite.Assert().Equal(driver.StatusBusy, reloadedDriver.Status())

	records, err := suite.factory.Create().HistoryRepository().ListByRequest(ctx, req.ID())
	suite.Require().NoError(err)
	suite.Require().Len(records, 1)
	suite.Assert().Equal(history.ActionDriverAccepted, records[0].Action())
}

// Two transactions race to accept the same pending request. The row lock
// serializes them: the loser re-reads state the winner committed and its
// domain transition fails with a conflict, never a double accept.
func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentAccept_SecondTransitionConflicts() {
	ctx := context.Background()

	req := suite.seedPendingRequest(1)
	drv := suite.seedAvailableDriver()

	bindDriver := func() error {
		uow := suite.factory.Create()
		if err := uow.Begin(ctx); err != nil {
			return err
		}
		locked, err := uow.RequestRepository().GetForUpdate(ctx, req.ID())
		if err != nil {
			return err
		}
		if err = locked.AssignDriver(drv.ID()); err != nil {
			return err
		}
		if err = uow.RequestRepository().Update(ctx, locked); err != nil {
			return err
		}
		return uow.Commit(ctx)
	}
	suite.Require().NoError(bindDriver())

	accept := func() error {
		uow := suite.factory.Create()
		if err := uow.Begin(ctx); err != nil {
			return err
		}
		defer func() {
			_ = uow.Rollback(ctx)
		}()

		locked, err := uow.RequestRepository().GetForUpdate(ctx, req.ID())
		if err != nil {
			return err
		}
		vehicleID := int64(7)
		if err = locked.Accept(&vehicleID); err != nil {
			return err
		}
		if err = uow.RequestRepository().UpdateWithStatusGuard(ctx, locked, request.StatusPending); err != nil {
			return err
		}
		return uow.Commit(ctx)
	}

	firstDone := make(chan error, 1)
	secondDone := make(chan error, 1)
	go func() { firstDone <- accept() }()
	go func() { secondDone <- accept() }()

	errFirst := <-firstDone
	errSecond := <-secondDone

	// Exactly one accept wins; the other observes the committed accepted
	// state and fails its precondition.
	if errFirst == nil {
		suite.Require().Error(errSecond)
		suite.Assert().ErrorIs(errSecond, errs.ErrConflict)
	} else {
		suite.Require().NoError(errSecond)
		suite.Assert().ErrorIs(errFirst, errs.ErrConflict)
	}

	reloaded, err := suite.factory.Create().RequestRepository().Get(ctx, req.ID())
	suite.Require().NoError(err)
	suite.Assert().Equal(request.StatusAccepted, reloaded.Status())
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
