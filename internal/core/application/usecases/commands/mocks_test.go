package commands_test

import (
	"context"
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/emergency"
	"marketplace/internal/core/domain/model/job"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/wallet"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockJobRepository struct{ mock.Mock }

func (m *MockJobRepository) Add(ctx context.Context, j *job.Job) error {
	args := m.Called(ctx, j)
	return args.Error(0)
}

func (m *MockJobRepository) Update(ctx context.Context, j *job.Job) error {
	args := m.Called(ctx, j)
	return args.Error(0)
}

func (m *MockJobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

type MockWalletRepository struct{ mock.Mock }

func (m *MockWalletRepository) Ensure(ctx context.Context, userID kernel.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockWalletRepository) GetByUserIDForUpdate(ctx context.Context, userID kernel.UUID) (*wallet.Wallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*wallet.Wallet), args.Error(1)
}

func (m *MockWalletRepository) Update(ctx context.Context, w *wallet.Wallet) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

type MockTransactionRepository struct{ mock.Mock }

func (m *MockTransactionRepository) Add(ctx context.Context, entry *wallet.Transaction) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

type MockPanicAlertRepository struct{ mock.Mock }

func (m *MockPanicAlertRepository) Add(ctx context.Context, alert *emergency.Alert) error {
	args := m.Called(ctx, alert)
	return args.Error(0)
}

func (m *MockPanicAlertRepository) Get(ctx context.Context, id kernel.UUID) (*emergency.Alert, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*emergency.Alert), args.Error(1)
}

// MockUoW satisfies every narrow unit of work the handlers depend on.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) JobRepository() ports.JobRepository {
	args := m.Called()
	return args.Get(0).(ports.JobRepository)
}

func (m *MockUoW) WalletRepository() ports.WalletRepository {
	args := m.Called()
	return args.Get(0).(ports.WalletRepository)
}

func (m *MockUoW) TransactionRepository() ports.TransactionRepository {
	args := m.Called()
	return args.Get(0).(ports.TransactionRepository)
}

func (m *MockUoW) PanicAlertRepository() ports.PanicAlertRepository {
	args := m.Called()
	return args.Get(0).(ports.PanicAlertRepository)
}

type MockJobUoWFactory struct{ mock.Mock }

func (m *MockJobUoWFactory) Create() commands.JobUoW {
	args := m.Called()
	return args.Get(0).(commands.JobUoW)
}

type MockSettlementUoWFactory struct{ mock.Mock }

func (m *MockSettlementUoWFactory) Create() commands.SettlementUoW {
	args := m.Called()
	return args.Get(0).(commands.SettlementUoW)
}

type MockPanicUoWFactory struct{ mock.Mock }

func (m *MockPanicUoWFactory) Create() commands.PanicUoW {
	args := m.Called()
	return args.Get(0).(commands.PanicUoW)
}

type MockCenterFinder struct{ mock.Mock }

func (m *MockCenterFinder) FindNearest(ctx context.Context, point kernel.GeoPoint) (*emergency.Center, error) {
	args := m.Called(ctx, point)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*emergency.Center), args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) SendTo(ctx context.Context, userID kernel.UUID, n ports.Notification) {
	m.Called(ctx, userID, n)
}

func (m *MockNotifier) Broadcast(ctx context.Context, n ports.Notification) {
	m.Called(ctx, n)
}

func mustCaller(t *testing.T, role kernel.Role) kernel.Caller {
	t.Helper()
	caller, err := kernel.NewCaller(kernel.NewUUID(), role)
	require.NoError(t, err)
	return caller
}

func testDetails() job.Details {
	return job.Details{
		ServiceType:   "plumbing",
		Description:   "kitchen sink leaks",
		Price:         kernel.MustMoneyFromCents(10000),
		WorkersNeeded: 1,
		Location:      kernel.MustNewGeoPoint(12.9716, 77.5946),
		Address:       "12 MG Road, Bengaluru",
	}
}

func searchingJob(t *testing.T, customerID kernel.UUID) *job.Job {
	t.Helper()
	j, err := job.NewJob(kernel.NewUUID(), customerID, testDetails())
	require.NoError(t, err)
	j.MarkPersisted()
	j.ClearDomainEvents()
	return j
}

// jobIn returns a job owned by customerID that worker has driven to status.
func jobIn(t *testing.T, customerID kernel.UUID, worker kernel.Caller, status job.Status) *job.Job {
	t.Helper()
	j := searchingJob(t, customerID)
	if status == job.Searching {
		return j
	}

	require.NoError(t, j.Accept(worker))
	for _, next := range []job.Status{job.Arrived, job.Started} {
		if j.Status() == status {
			break
		}
		require.NoError(t, j.AdvanceStatus(worker.ID(), next))
	}
	require.Equal(t, status, j.Status())
	j.MarkPersisted()
	j.ClearDomainEvents()
	return j
}
