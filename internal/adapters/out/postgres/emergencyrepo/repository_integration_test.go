package emergencyrepo_test

import (
	"context"
	"testing"

	"marketplace/internal/adapters/out/postgres/emergencyrepo"
	"marketplace/internal/adapters/out/postgres/jobrepo"
	"marketplace/internal/adapters/out/postgres/pgtest"
	"marketplace/internal/core/domain/model/emergency"
	"marketplace/internal/core/domain/model/job"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type EmergencyRepositoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	centers   *emergencyrepo.GormCenterRepository
	alerts    *emergencyrepo.GormAlertRepository
	tracker   *MockAggregateTracker
}

func (suite *EmergencyRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *EmergencyRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))

	suite.tracker = new(MockAggregateTracker)
	suite.centers = emergencyrepo.NewGormCenterRepository(suite.db)
	suite.alerts = emergencyrepo.NewGormAlertRepository(suite.db, suite.tracker)
}

func (suite *EmergencyRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *EmergencyRepositoryIntegrationTestSuite) center(name string, active bool) *emergency.Center {
	c, err := emergency.NewCenter(kernel.NewUUID(), name, kernel.MustNewGeoPoint(12.97, 77.59), 25, active,
		emergency.CenterContact{Phone: "+91-100", Email: "ops@example.com"})
	suite.Require().NoError(err)
	return c
}

func (suite *EmergencyRepositoryIntegrationTestSuite) TestUpsert_InsertThenOverwrite() {
	ctx := suite.T().Context()
	c := suite.center("Central", true)
	suite.Require().NoError(suite.centers.Upsert(ctx, c))

	moved, err := emergency.NewCenter(c.ID(), "Central (moved)", kernel.MustNewGeoPoint(13.0, 77.6), 40, true,
		emergency.CenterContact{})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.centers.Upsert(ctx, moved))

	active, err := suite.centers.GetAllActive(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(active, 1)
	suite.Equal("Central (moved)", active[0].Name())
	suite.InDelta(40.0, active[0].ServiceRadiusKm(), 1e-9)
	suite.Empty(active[0].Contact().Phone)
}

func (suite *EmergencyRepositoryIntegrationTestSuite) TestGetAllActive_SkipsInactiveAndOrdersByID() {
	ctx := suite.T().Context()
	for _, c := range []*emergency.Center{
		suite.center("A", true), suite.center("B", false), suite.center("C", true), suite.center("D", true),
	} {
		suite.Require().NoError(suite.centers.Upsert(ctx, c))
	}

	active, err := suite.centers.GetAllActive(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(active, 3)
	for i := 1; i < len(active); i++ {
		suite.Less(active[i-1].ID().String(), active[i].ID().String())
	}
	for _, c := range active {
		suite.True(c.IsActive())
	}
}

func (suite *EmergencyRepositoryIntegrationTestSuite) TestGetByIDs_FiltersUnknownAndInactive() {
	ctx := suite.T().Context()
	on := suite.center("On", true)
	off := suite.center("Off", false)
	suite.Require().NoError(suite.centers.Upsert(ctx, on))
	suite.Require().NoError(suite.centers.Upsert(ctx, off))

	got, err := suite.centers.GetByIDs(ctx, []kernel.UUID{on.ID(), off.ID(), kernel.NewUUID()})
	suite.Require().NoError(err)
	suite.Require().Len(got, 1)
	suite.Equal(on.ID(), got[0].ID())

	empty, err := suite.centers.GetByIDs(ctx, nil)
	suite.Require().NoError(err)
	suite.Empty(empty)
}

func (suite *EmergencyRepositoryIntegrationTestSuite) TestAlert_AddAndGet() {
	ctx := suite.T().Context()

	j, err := job.NewJob(kernel.NewUUID(), kernel.NewUUID(), job.Details{
		ServiceType:   "electrician",
		Price:         kernel.MustMoneyFromCents(5000),
		WorkersNeeded: 1,
		Location:      kernel.MustNewGeoPoint(12.97, 77.59),
		Address:       "5 Park St",
	})
	suite.Require().NoError(err)
	jobTracker := new(MockAggregateTracker)
	jobTracker.On("TrackAggregate", j.ID(), j).Once()
	suite.Require().NoError(jobrepo.NewGormJobRepository(suite.db, jobTracker).Add(ctx, j))

	alert, err := emergency.TriggerAlert(kernel.NewUUID(), j, j.CustomerID(), nil, "door locked")
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", alert.ID(), alert).Once()
	suite.Require().NoError(suite.alerts.Add(ctx, alert))

	stored, err := suite.alerts.Get(ctx, alert.ID())
	suite.Require().NoError(err)
	suite.Equal(j.ID(), stored.JobID())
	suite.Equal(job.ParticipantCustomer, stored.RoleAtTime())
	suite.Equal(emergency.AlertOpen, stored.Status())
	suite.True(stored.Location().IsEqual(j.Location()))
	suite.Equal("door locked", stored.Notes())
	suite.Nil(stored.ResolvedAt())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *EmergencyRepositoryIntegrationTestSuite) TestAlert_GetMissing() {
	_, err := suite.alerts.Get(suite.T().Context(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestEmergencyRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(EmergencyRepositoryIntegrationTestSuite))
}
