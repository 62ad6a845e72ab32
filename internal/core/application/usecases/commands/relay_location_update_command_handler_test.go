package commands_test

import (
	"encoding/json"
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/job"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRelayLocationUpdateCommandHandler_Handle(t *testing.T) {
	worker := mustCaller(t, kernel.RoleWorker)
	customerID := kernel.NewUUID()
	payload := json.RawMessage(`{"lat":12.97,"lng":77.59,"heading":90}`)

	t.Run("worker to customer", func(t *testing.T) {
		ctx := t.Context()
		j := jobIn(t, customerID, worker, job.Accepted)

		cmd, err := commands.NewRelayLocationUpdateCommand(worker.ID(), j.ID(), payload)
		require.NoError(t, err)

		jobRepo := new(MockJobRepository)
		uow := new(MockUoW)
		factory := new(MockJobUoWFactory)
		notifier := new(MockNotifier)

		mock.InOrder(
			factory.On("Create").Return(uow).Once(),
			uow.On("JobRepository").Return(jobRepo).Once(),
			jobRepo.On("Get", ctx, j.ID()).Return(j, nil).Once(),
			notifier.On("SendTo", ctx, customerID, mock.MatchedBy(func(n ports.Notification) bool {
				raw, ok := n.Data.(json.RawMessage)
				return n.Type == commands.LocationUpdateType &&
					n.JobID != nil && n.JobID.IsEqual(j.ID()) &&
					ok && string(raw) == string(payload)
			})).Once(),
		)

		handler := commands.NewRelayLocationUpdateCommandHandler(factory, notifier)
		require.NoError(t, handler.Handle(ctx, cmd))

		notifier.AssertExpectations(t)
		uow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("customer to worker", func(t *testing.T) {
		ctx := t.Context()
		j := jobIn(t, customerID, worker, job.Started)

		cmd, err := commands.NewRelayLocationUpdateCommand(customerID, j.ID(), payload)
		require.NoError(t, err)

		jobRepo := new(MockJobRepository)
		uow := new(MockUoW)
		factory := new(MockJobUoWFactory)
		notifier := new(MockNotifier)

		factory.On("Create").Return(uow).Once()
		uow.On("JobRepository").Return(jobRepo).Once()
		jobRepo.On("Get", ctx, j.ID()).Return(j, nil).Once()
		notifier.On("SendTo", ctx, worker.ID(), mock.Anything).Once()

		handler := commands.NewRelayLocationUpdateCommandHandler(factory, notifier)
		require.NoError(t, handler.Handle(ctx, cmd))

		notifier.AssertExpectations(t)
	})

	t.Run("outsider is dropped", func(t *testing.T) {
		ctx := t.Context()
		j := jobIn(t, customerID, worker, job.Accepted)

		cmd, err := commands.NewRelayLocationUpdateCommand(kernel.NewUUID(), j.ID(), payload)
		require.NoError(t, err)

		jobRepo := new(MockJobRepository)
		uow := new(MockUoW)
		factory := new(MockJobUoWFactory)
		notifier := new(MockNotifier)

		factory.On("Create").Return(uow).Once()
		uow.On("JobRepository").Return(jobRepo).Once()
		jobRepo.On("Get", ctx, j.ID()).Return(j, nil).Once()

		handler := commands.NewRelayLocationUpdateCommandHandler(factory, notifier)
		err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrForbidden)
		notifier.AssertNotCalled(t, "SendTo", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("searching job has no counterparty", func(t *testing.T) {
		ctx := t.Context()
		j := searchingJob(t, customerID)

		cmd, err := commands.NewRelayLocationUpdateCommand(customerID, j.ID(), payload)
		require.NoError(t, err)

		jobRepo := new(MockJobRepository)
		uow := new(MockUoW)
		factory := new(MockJobUoWFactory)
		notifier := new(MockNotifier)

		factory.On("Create").Return(uow).Once()
		uow.On("JobRepository").Return(jobRepo).Once()
		jobRepo.On("Get", ctx, j.ID()).Return(j, nil).Once()

		handler := commands.NewRelayLocationUpdateCommandHandler(factory, notifier)
		err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, commands.ErrNoCounterparty)
		notifier.AssertNotCalled(t, "SendTo", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown job", func(t *testing.T) {
		ctx := t.Context()
		jobID := kernel.NewUUID()

		cmd, err := commands.NewRelayLocationUpdateCommand(worker.ID(), jobID, payload)
		require.NoError(t, err)

		jobRepo := new(MockJobRepository)
		uow := new(MockUoW)
		factory := new(MockJobUoWFactory)
		notifier := new(MockNotifier)

		factory.On("Create").Return(uow).Once()
		uow.On("JobRepository").Return(jobRepo).Once()
		jobRepo.On("Get", ctx, jobID).Return(nil, errs.NewObjectNotFoundError("job", jobID)).Once()

		handler := commands.NewRelayLocationUpdateCommandHandler(factory, notifier)
		err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Empty(t, notifier.Calls)
	})
}
