package walletrepo_test

import (
	"context"
	"testing"

	"marketplace/internal/adapters/out/postgres/jobrepo"
	"marketplace/internal/adapters/out/postgres/pgtest"
	"marketplace/internal/adapters/out/postgres/walletrepo"
	"marketplace/internal/core/domain/model/job"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/wallet"
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

type WalletRepositoryIntegrationTestSuite struct {
	suite.Suite
	container    *postgres.PostgresContainer
	db           *gorm.DB
	wallets      *walletrepo.GormWalletRepository
	transactions *walletrepo.GormTransactionRepository
	tracker      *MockAggregateTracker
}

func (suite *WalletRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *WalletRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))

	suite.tracker = new(MockAggregateTracker)
	suite.wallets = walletrepo.NewGormWalletRepository(suite.db, suite.tracker)
	suite.transactions = walletrepo.NewGormTransactionRepository(suite.db)
}

func (suite *WalletRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *WalletRepositoryIntegrationTestSuite) TestEnsure_CreatesEmptyWalletOnce() {
	ctx := suite.T().Context()
	userID := kernel.NewUUID()

	suite.Require().NoError(suite.wallets.Ensure(ctx, userID))
	suite.Require().NoError(suite.wallets.Ensure(ctx, userID))

	var count int64
	suite.Require().NoError(suite.db.Model(&walletrepo.WalletDTO{}).Where("user_id = ?", userID.Bytes()).Count(&count).Error)
	suite.Equal(int64(1), count)

	w, err := suite.wallets.GetByUserIDForUpdate(ctx, userID)
	suite.Require().NoError(err)
	suite.True(w.Balance().IsZero())
	suite.True(w.TotalEarnings().IsZero())
}

func (suite *WalletRepositoryIntegrationTestSuite) TestEnsure_KeepsExistingBalance() {
	ctx := suite.T().Context()
	userID := kernel.NewUUID()
	suite.Require().NoError(suite.wallets.Ensure(ctx, userID))

	w, err := suite.wallets.GetByUserIDForUpdate(ctx, userID)
	suite.Require().NoError(err)
	suite.Require().NoError(w.Credit(kernel.MustMoneyFromCents(8500), kernel.NewUUID()))
	suite.tracker.On("TrackAggregate", w.ID(), w).Once()
	suite.Require().NoError(suite.wallets.Update(ctx, w))

	suite.Require().NoError(suite.wallets.Ensure(ctx, userID))

	stored, err := suite.wallets.GetByUserIDForUpdate(ctx, userID)
	suite.Require().NoError(err)
	suite.Equal(int64(8500), stored.Balance().Cents())
	suite.Equal(int64(8500), stored.TotalEarnings().Cents())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *WalletRepositoryIntegrationTestSuite) TestGetByUserIDForUpdate_Missing_ReturnsNotFound() {
	w, err := suite.wallets.GetByUserIDForUpdate(suite.T().Context(), kernel.NewUUID())

	suite.Nil(w)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *WalletRepositoryIntegrationTestSuite) TestUpdate_UnknownWallet_ReturnsNotFound() {
	w, err := wallet.NewWallet(kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)

	err = suite.wallets.Update(suite.T().Context(), w)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything, mock.Anything)
}

func (suite *WalletRepositoryIntegrationTestSuite) TestTransactions_AppendAndSettleOnce() {
	ctx := suite.T().Context()
	jobID := suite.addJob(ctx)
	workerID := kernel.NewUUID()

	earning, err := wallet.NewTransaction(kernel.NewUUID(), &workerID, wallet.Earning,
		kernel.MustMoneyFromCents(8500), jobID, "Job earnings")
	suite.Require().NoError(err)
	fee, err := wallet.NewTransaction(kernel.NewUUID(), nil, wallet.Commission,
		kernel.MustMoneyFromCents(1500), jobID, "Platform commission")
	suite.Require().NoError(err)

	suite.Require().NoError(suite.transactions.Add(ctx, earning))
	suite.Require().NoError(suite.transactions.Add(ctx, fee))

	var rows []walletrepo.TransactionDTO
	suite.Require().NoError(suite.db.Order("amount_cents DESC").Find(&rows, "job_id = ?", jobID.Bytes()).Error)
	suite.Require().Len(rows, 2)
	suite.Equal("earning", rows[0].Type)
	suite.Require().NotNil(rows[0].UserID)
	suite.Equal(workerID.Bytes(), *rows[0].UserID)
	suite.Equal("commission", rows[1].Type)
	suite.Nil(rows[1].UserID)

	again, err := wallet.NewTransaction(kernel.NewUUID(), &workerID, wallet.Earning,
		kernel.MustMoneyFromCents(8500), jobID, "Job earnings")
	suite.Require().NoError(err)
	suite.Require().Error(suite.transactions.Add(ctx, again), "a job is settled at most once")
}

func (suite *WalletRepositoryIntegrationTestSuite) addJob(ctx context.Context) kernel.UUID {
	j, err := job.NewJob(kernel.NewUUID(), kernel.NewUUID(), job.Details{
		ServiceType:   "plumbing",
		Price:         kernel.MustMoneyFromCents(10000),
		WorkersNeeded: 1,
		Location:      kernel.MustNewGeoPoint(1, 1),
		Address:       "1 Main St",
	})
	suite.Require().NoError(err)

	tracker := new(MockAggregateTracker)
	tracker.On("TrackAggregate", j.ID(), j).Once()
	suite.Require().NoError(jobrepo.NewGormJobRepository(suite.db, tracker).Add(ctx, j))
	return j.ID()
}

func TestWalletRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(WalletRepositoryIntegrationTestSuite))
}
