package queries_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/jobrepo"
	"marketplace/internal/adapters/out/postgres/pgtest"
	"marketplace/internal/adapters/out/postgres/walletrepo"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/job"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/wallet"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

type QueriesIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

// seedJob stores a job created at the given time. When worker is set the job
// is accepted by it.
func (suite *QueriesIntegrationTestSuite) seedJob(
	customerID kernel.UUID,
	worker *kernel.Caller,
	createdAt time.Time,
) *job.Job {
	ctx := suite.T().Context()
	repo := jobrepo.NewGormJobRepository(suite.db, noopTracker{})

	j, err := job.NewJob(kernel.NewUUID(), customerID, job.Details{
		ServiceType:   "electrician",
		Description:   "replace two sockets",
		Price:         kernel.MustMoneyFromCents(2550),
		WorkersNeeded: 2,
		Location:      kernel.MustNewGeoPoint(19.076, 72.8777),
		Address:       "4 Marine Drive",
	})
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Add(ctx, j))

	if worker != nil {
		suite.Require().NoError(j.Accept(*worker))
		suite.Require().NoError(repo.Update(ctx, j))
	}

	suite.Require().NoError(suite.db.Exec("UPDATE jobs SET created_at = ? WHERE id = ?",
		createdAt, j.ID().Bytes()).Error)
	return j
}

func (suite *QueriesIntegrationTestSuite) caller(role kernel.Role) kernel.Caller {
	c, err := kernel.NewCaller(kernel.NewUUID(), role)
	suite.Require().NoError(err)
	return c
}

func ids(views []queries.JobView) []kernel.UUID {
	out := make([]kernel.UUID, 0, len(views))
	for _, v := range views {
		out = append(out, v.ID)
	}
	return out
}

func (suite *QueriesIntegrationTestSuite) TestGetCustomerJobs_NewestFirstWithOtp() {
	ctx := suite.T().Context()
	customer := suite.caller(kernel.RoleCustomer)
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	older := suite.seedJob(customer.ID(), nil, base)
	newer := suite.seedJob(customer.ID(), nil, base.Add(time.Hour))
	suite.seedJob(kernel.NewUUID(), nil, base.Add(2*time.Hour))

	query, err := queries.NewGetCustomerJobsQuery(customer.ID())
	suite.Require().NoError(err)

	views, err := queries.NewGetCustomerJobsQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal([]kernel.UUID{newer.ID(), older.ID()}, ids(views))
	suite.Equal(newer.OTP().String(), views[0].OTP)
	suite.Equal(job.Searching, views[0].Status)
	suite.Nil(views[0].WorkerID)
	suite.Equal(int64(2550), views[0].Price.Cents())
	suite.Equal(2, views[0].WorkersNeeded)
	suite.InDelta(19.076, views[0].Location.Latitude(), 1e-9)
	suite.Equal("replace two sockets", views[0].Description)
}

func (suite *QueriesIntegrationTestSuite) TestGetWorkerJobs_HidesOtp() {
	ctx := suite.T().Context()
	worker := suite.caller(kernel.RoleWorker)
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	assigned := suite.seedJob(kernel.NewUUID(), &worker, base)
	suite.seedJob(kernel.NewUUID(), nil, base)

	query, err := queries.NewGetWorkerJobsQuery(worker.ID())
	suite.Require().NoError(err)

	views, err := queries.NewGetWorkerJobsQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(views, 1)
	suite.Equal(assigned.ID(), views[0].ID)
	suite.Equal(job.Accepted, views[0].Status)
	suite.Require().NotNil(views[0].WorkerID)
	suite.Equal(worker.ID(), *views[0].WorkerID)
	suite.NotNil(views[0].AcceptedAt)
	suite.Empty(views[0].OTP)
}

func (suite *QueriesIntegrationTestSuite) TestGetAvailableJobs_OnlySearching() {
	ctx := suite.T().Context()
	worker := suite.caller(kernel.RoleWorker)
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	first := suite.seedJob(kernel.NewUUID(), nil, base)
	second := suite.seedJob(kernel.NewUUID(), nil, base.Add(time.Minute))
	suite.seedJob(kernel.NewUUID(), &worker, base.Add(2*time.Minute))

	for _, role := range []kernel.Role{kernel.RoleWorker, kernel.RoleAgencyPartner, kernel.RoleAdmin} {
		query, err := queries.NewGetAvailableJobsQuery(suite.caller(role))
		suite.Require().NoError(err)

		views, err := queries.NewGetAvailableJobsQueryHandler(suite.db).Handle(ctx, query)
		suite.Require().NoError(err)

		suite.Equal([]kernel.UUID{second.ID(), first.ID()}, ids(views), role.String())
		for _, v := range views {
			suite.Empty(v.OTP)
		}
	}
}

func (suite *QueriesIntegrationTestSuite) TestGetAvailableJobs_CustomerIsForbidden() {
	query, err := queries.NewGetAvailableJobsQuery(suite.caller(kernel.RoleCustomer))
	suite.Require().NoError(err)

	_, err = queries.NewGetAvailableJobsQueryHandler(suite.db).Handle(suite.T().Context(), query)
	suite.Require().ErrorIs(err, errs.ErrForbidden)
}

func (suite *QueriesIntegrationTestSuite) TestGetWalletBalance_ZeroWithoutWallet() {
	query, err := queries.NewGetWalletBalanceQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	balance, err := queries.NewGetWalletBalanceQueryHandler(suite.db).Handle(suite.T().Context(), query)
	suite.Require().NoError(err)

	suite.True(balance.Balance.IsZero())
	suite.True(balance.TotalEarnings.IsZero())
}

func (suite *QueriesIntegrationTestSuite) TestWalletQueries_AfterCredits() {
	ctx := suite.T().Context()
	worker := suite.caller(kernel.RoleWorker)
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	first := suite.seedJob(kernel.NewUUID(), &worker, base)
	second := suite.seedJob(kernel.NewUUID(), &worker, base)

	wallets := walletrepo.NewGormWalletRepository(suite.db, noopTracker{})
	entries := walletrepo.NewGormTransactionRepository(suite.db)

	suite.Require().NoError(wallets.Ensure(ctx, worker.ID()))
	w, err := wallets.GetByUserIDForUpdate(ctx, worker.ID())
	suite.Require().NoError(err)

	workerID := worker.ID()
	for i, j := range []*job.Job{first, second} {
		share := kernel.MustMoneyFromCents(2168)
		suite.Require().NoError(w.Credit(share, j.ID()))

		earning, txErr := wallet.NewTransaction(kernel.NewUUID(), &workerID, wallet.Earning,
			share, j.ID(), "Job earnings")
		suite.Require().NoError(txErr)
		suite.Require().NoError(entries.Add(ctx, earning))

		fee, txErr := wallet.NewTransaction(kernel.NewUUID(), nil,
			wallet.Commission, kernel.MustMoneyFromCents(382), j.ID(), "Platform commission")
		suite.Require().NoError(txErr)
		suite.Require().NoError(entries.Add(ctx, fee))

		suite.Require().NoError(suite.db.Exec("UPDATE transactions SET created_at = ? WHERE id = ?",
			base.Add(time.Duration(i)*time.Hour), earning.ID().Bytes()).Error)
	}
	suite.Require().NoError(wallets.Update(ctx, w))

	balanceQuery, err := queries.NewGetWalletBalanceQuery(worker.ID())
	suite.Require().NoError(err)
	balance, err := queries.NewGetWalletBalanceQueryHandler(suite.db).Handle(ctx, balanceQuery)
	suite.Require().NoError(err)
	suite.Equal(int64(4336), balance.Balance.Cents())
	suite.Equal(int64(4336), balance.TotalEarnings.Cents())

	txQuery, err := queries.NewGetWalletTransactionsQuery(worker.ID())
	suite.Require().NoError(err)
	list, err := queries.NewGetWalletTransactionsQueryHandler(suite.db).Handle(ctx, txQuery)
	suite.Require().NoError(err)

	suite.Require().Len(list, 2, "commission rows belong to the platform")
	suite.Equal(second.ID(), list[0].JobID)
	suite.Equal(first.ID(), list[1].JobID)
	suite.Equal(wallet.Earning, list[0].Type)
	suite.Equal("Job earnings", list[0].Description)
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesIntegrationTestSuite))
}
