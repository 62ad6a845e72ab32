package job_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/job"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDetails() job.Details {
	return job.Details{
		ServiceType:   "deep_cleaning",
		Description:   "two bedroom flat",
		Price:         kernel.MustMoneyFromCents(10000),
		WorkersNeeded: 2,
		Location:      kernel.MustNewGeoPoint(12.9716, 77.5946),
		Address:       "12 MG Road",
	}
}

func mustCaller(t *testing.T, role kernel.Role) kernel.Caller {
	t.Helper()
	c, err := kernel.NewCaller(kernel.NewUUID(), role)
	require.NoError(t, err)
	return c
}

func newSearchingJob(t *testing.T) *job.Job {
	t.Helper()
	j, err := job.NewJob(kernel.NewUUID(), kernel.NewUUID(), validDetails())
	require.NoError(t, err)
	j.ClearDomainEvents()
	return j
}

// newJobIn walks a job through the real transitions up to the requested status.
func newJobIn(t *testing.T, status job.Status) (*job.Job, kernel.Caller) {
	t.Helper()
	j := newSearchingJob(t)
	worker := mustCaller(t, kernel.RoleWorker)
	if status == job.Searching {
		return j, worker
	}
	require.NoError(t, j.Accept(worker))
	for _, next := range []job.Status{job.Arrived, job.Started} {
		if j.Status() == status {
			break
		}
		require.NoError(t, j.AdvanceStatus(worker.ID(), next))
	}
	if status == job.Completed {
		require.NoError(t, j.VerifyOtpAndComplete(worker.ID(), j.OTP().String()))
	}
	require.Equal(t, status, j.Status())
	j.ClearDomainEvents()
	return j, worker
}

func TestNewJob(t *testing.T) {
	t.Run("opens a searching job", func(t *testing.T) {
		id := kernel.NewUUID()
		customerID := kernel.NewUUID()

		j, err := job.NewJob(id, customerID, validDetails())

		require.NoError(t, err)
		require.NoError(t, j.Validate())
		assert.True(t, j.ID().IsEqual(id))
		assert.True(t, j.CustomerID().IsEqual(customerID))
		assert.Equal(t, job.Searching, j.Status())
		assert.Equal(t, job.Searching, j.PersistedStatus())
		assert.Nil(t, j.WorkerID())
		assert.Nil(t, j.AcceptedAt())
		assert.Nil(t, j.CompletedAt())
		assert.Len(t, j.OTP().String(), job.OTPLength)
		assert.WithinDuration(t, time.Now(), j.CreatedAt(), time.Second)

		events := j.DomainEvents()
		require.Len(t, events, 1)
		created, ok := events[0].(job.CreatedEvent)
		require.True(t, ok)
		assert.Equal(t, job.EventCreated, created.EventName())
		assert.True(t, created.CustomerID.IsEqual(customerID))
	})

	t.Run("collects every validation problem", func(t *testing.T) {
		details := validDetails()
		details.ServiceType = " "
		details.Address = ""
		details.WorkersNeeded = 0
		details.Price = kernel.Zero
		details.Location = kernel.GeoPoint{}

		_, err := job.NewJob(kernel.UUID{}, kernel.NewUUID(), details)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "serviceType")
		assert.Contains(t, err.Error(), "address")
		assert.Contains(t, err.Error(), "workersNeeded")
		assert.Contains(t, err.Error(), "price")
	})
}

func TestJob_ZeroValue(t *testing.T) {
	var j job.Job
	require.ErrorIs(t, j.Validate(), job.ErrJobIsNotConstructed)

	var nilJob *job.Job
	require.ErrorIs(t, nilJob.Validate(), job.ErrJobIsNotConstructed)
}

func TestJob_Accept(t *testing.T) {
	t.Run("worker wins a searching job", func(t *testing.T) {
		j := newSearchingJob(t)
		worker := mustCaller(t, kernel.RoleWorker)

		require.NoError(t, j.Accept(worker))

		assert.Equal(t, job.Accepted, j.Status())
		assert.Equal(t, job.Searching, j.PersistedStatus())
		require.NotNil(t, j.WorkerID())
		assert.True(t, j.WorkerID().IsEqual(worker.ID()))
		assert.NotNil(t, j.AcceptedAt())

		events := j.DomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, job.EventAccepted, events[0].EventName())
	})

	t.Run("agency partner may accept", func(t *testing.T) {
		j := newSearchingJob(t)
		require.NoError(t, j.Accept(mustCaller(t, kernel.RoleAgencyPartner)))
	})

	t.Run("customer is forbidden", func(t *testing.T) {
		j := newSearchingJob(t)

		err := j.Accept(mustCaller(t, kernel.RoleCustomer))

		require.ErrorIs(t, err, errs.ErrForbidden)
		assert.Equal(t, job.Searching, j.Status())
		assert.Nil(t, j.WorkerID())
		assert.Empty(t, j.DomainEvents())
	})

	t.Run("admin is forbidden", func(t *testing.T) {
		j := newSearchingJob(t)
		require.ErrorIs(t, j.Accept(mustCaller(t, kernel.RoleAdmin)), errs.ErrForbidden)
	})

	t.Run("taken job is a conflict even for customers", func(t *testing.T) {
		j, _ := newJobIn(t, job.Accepted)
		previousWorker := *j.WorkerID()

		require.ErrorIs(t, j.Accept(mustCaller(t, kernel.RoleWorker)), errs.ErrConflict)
		require.ErrorIs(t, j.Accept(mustCaller(t, kernel.RoleCustomer)), errs.ErrConflict)
		assert.True(t, j.WorkerID().IsEqual(previousWorker))
	})

	t.Run("unconstructed caller", func(t *testing.T) {
		j := newSearchingJob(t)
		require.ErrorIs(t, j.Accept(kernel.Caller{}), kernel.ErrCallerIsNotConstructed)
	})
}

func TestJob_AdvanceStatus(t *testing.T) {
	t.Run("assigned worker walks the table", func(t *testing.T) {
		j, worker := newJobIn(t, job.Accepted)

		require.NoError(t, j.AdvanceStatus(worker.ID(), job.Arrived))
		require.NoError(t, j.AdvanceStatus(worker.ID(), job.Started))

		assert.Equal(t, job.Started, j.Status())
		events := j.DomainEvents()
		require.Len(t, events, 2)
		changed := events[1].(job.StatusChangedEvent)
		assert.Equal(t, job.Arrived, changed.From)
		assert.Equal(t, job.Started, changed.To)
	})

	t.Run("other users are forbidden", func(t *testing.T) {
		j, _ := newJobIn(t, job.Accepted)

		require.ErrorIs(t, j.AdvanceStatus(kernel.NewUUID(), job.Arrived), errs.ErrForbidden)
		require.ErrorIs(t, j.AdvanceStatus(j.CustomerID(), job.Arrived), errs.ErrForbidden)
		assert.Equal(t, job.Accepted, j.Status())
	})

	t.Run("searching to started is always an invalid transition", func(t *testing.T) {
		j := newSearchingJob(t)

		require.ErrorIs(t, j.AdvanceStatus(kernel.NewUUID(), job.Started), errs.ErrTransitionIsInvalid)
		require.ErrorIs(t, j.AdvanceStatus(j.CustomerID(), job.Started), errs.ErrTransitionIsInvalid)
		assert.Equal(t, job.Searching, j.Status())
	})

	t.Run("skipping a step is an invalid transition", func(t *testing.T) {
		j, worker := newJobIn(t, job.Accepted)
		require.ErrorIs(t, j.AdvanceStatus(worker.ID(), job.Started), errs.ErrTransitionIsInvalid)
	})

	t.Run("completed requires the otp operation", func(t *testing.T) {
		j, worker := newJobIn(t, job.Started)
		require.ErrorIs(t, j.AdvanceStatus(worker.ID(), job.Completed), errs.ErrTransitionIsInvalid)
		assert.Equal(t, job.Started, j.Status())
	})
}

func TestJob_VerifyOtpAndComplete(t *testing.T) {
	t.Run("matching otp completes", func(t *testing.T) {
		j, worker := newJobIn(t, job.Started)

		require.NoError(t, j.VerifyOtpAndComplete(worker.ID(), j.OTP().String()))

		assert.Equal(t, job.Completed, j.Status())
		assert.NotNil(t, j.CompletedAt())
		events := j.DomainEvents()
		require.Len(t, events, 1)
		completed := events[0].(job.CompletedEvent)
		assert.Equal(t, j.Price(), completed.Price)
	})

	t.Run("wrong otp leaves the job untouched", func(t *testing.T) {
		j, worker := newJobIn(t, job.Started)
		wrong := "0000"
		if j.OTP().String() == wrong {
			wrong = "1111"
		}

		err := j.VerifyOtpAndComplete(worker.ID(), wrong)

		require.ErrorIs(t, err, errs.ErrOtpIsInvalid)
		assert.Equal(t, job.Started, j.Status())
		assert.Nil(t, j.CompletedAt())
		assert.Empty(t, j.DomainEvents())
	})

	t.Run("not started yet", func(t *testing.T) {
		j, worker := newJobIn(t, job.Arrived)
		err := j.VerifyOtpAndComplete(worker.ID(), j.OTP().String())
		require.ErrorIs(t, err, errs.ErrTransitionIsInvalid)
	})

	t.Run("only the assigned worker", func(t *testing.T) {
		j, _ := newJobIn(t, job.Started)
		err := j.VerifyOtpAndComplete(j.CustomerID(), j.OTP().String())
		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("completed job cannot be completed twice", func(t *testing.T) {
		j, worker := newJobIn(t, job.Completed)
		err := j.VerifyOtpAndComplete(worker.ID(), j.OTP().String())
		require.ErrorIs(t, err, errs.ErrTransitionIsInvalid)
	})
}

func TestJob_Cancel(t *testing.T) {
	t.Run("customer cancels a searching job", func(t *testing.T) {
		j := newSearchingJob(t)

		require.NoError(t, j.Cancel(j.CustomerID()))

		assert.Equal(t, job.Cancelled, j.Status())
		assert.Nil(t, j.WorkerID())
		cancelled := j.DomainEvents()[0].(job.CancelledEvent)
		assert.Nil(t, cancelled.WorkerID)
	})

	t.Run("customer cancels an accepted job", func(t *testing.T) {
		j, worker := newJobIn(t, job.Accepted)

		require.NoError(t, j.Cancel(j.CustomerID()))

		cancelled := j.DomainEvents()[0].(job.CancelledEvent)
		require.NotNil(t, cancelled.WorkerID)
		assert.True(t, cancelled.WorkerID.IsEqual(worker.ID()))
	})

	t.Run("worker cannot cancel", func(t *testing.T) {
		j, worker := newJobIn(t, job.Accepted)
		require.ErrorIs(t, j.Cancel(worker.ID()), errs.ErrForbidden)
	})

	t.Run("started job cannot be cancelled", func(t *testing.T) {
		j, _ := newJobIn(t, job.Started)
		require.ErrorIs(t, j.Cancel(j.CustomerID()), errs.ErrTransitionIsInvalid)
	})
}

func TestJob_Participants(t *testing.T) {
	j, worker := newJobIn(t, job.Accepted)
	stranger := kernel.NewUUID()

	role, err := j.ParticipantRole(j.CustomerID())
	require.NoError(t, err)
	assert.Equal(t, job.ParticipantCustomer, role)

	role, err = j.ParticipantRole(worker.ID())
	require.NoError(t, err)
	assert.Equal(t, job.ParticipantWorker, role)

	_, err = j.ParticipantRole(stranger)
	require.ErrorIs(t, err, errs.ErrForbidden)

	other, ok := j.Counterparty(j.CustomerID())
	require.True(t, ok)
	assert.True(t, other.IsEqual(worker.ID()))

	other, ok = j.Counterparty(worker.ID())
	require.True(t, ok)
	assert.True(t, other.IsEqual(j.CustomerID()))

	_, ok = j.Counterparty(stranger)
	assert.False(t, ok)

	assert.Equal(t, j.OTP().String(), j.VisibleOTP(j.CustomerID()))
	assert.Empty(t, j.VisibleOTP(worker.ID()))
}

func TestJob_CounterpartyWhileSearching(t *testing.T) {
	j := newSearchingJob(t)

	_, ok := j.Counterparty(j.CustomerID())

	assert.False(t, ok)
}

func TestRestoreJob(t *testing.T) {
	now := time.Now().UTC()
	workerID := kernel.NewUUID()

	base := func() job.Snapshot {
		return job.Snapshot{
			ID:         kernel.NewUUID(),
			CustomerID: kernel.NewUUID(),
			Status:     job.Searching,
			OTP:        "1234",
			Details:    validDetails(),
			CreatedAt:  now,
		}
	}

	tests := []struct {
		name    string
		mutate  func(s *job.Snapshot)
		wantErr error
	}{
		{name: "searching", mutate: func(*job.Snapshot) {}},
		{name: "started", mutate: func(s *job.Snapshot) {
			s.Status, s.WorkerID, s.AcceptedAt = job.Started, &workerID, &now
		}},
		{name: "completed", mutate: func(s *job.Snapshot) {
			s.Status, s.WorkerID, s.AcceptedAt, s.CompletedAt = job.Completed, &workerID, &now, &now
		}},
		{name: "cancelled while searching", mutate: func(s *job.Snapshot) { s.Status = job.Cancelled }},
		{name: "searching with worker", wantErr: errs.ErrValueIsInvalid, mutate: func(s *job.Snapshot) {
			s.WorkerID, s.AcceptedAt = &workerID, &now
		}},
		{name: "accepted without worker", wantErr: errs.ErrValueIsRequired, mutate: func(s *job.Snapshot) {
			s.Status = job.Accepted
		}},
		{name: "worker without acceptedAt", wantErr: errs.ErrValueIsInvalid, mutate: func(s *job.Snapshot) {
			s.Status, s.WorkerID = job.Accepted, &workerID
		}},
		{name: "completed without completedAt", wantErr: errs.ErrValueIsInvalid, mutate: func(s *job.Snapshot) {
			s.Status, s.WorkerID, s.AcceptedAt = job.Completed, &workerID, &now
		}},
		{name: "bad otp", wantErr: errs.ErrValueIsInvalid, mutate: func(s *job.Snapshot) { s.OTP = "12" }},
		{name: "bad status", wantErr: errs.ErrValueIsInvalid, mutate: func(s *job.Snapshot) { s.Status = "lost" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := base()
			tt.mutate(&s)

			j, err := job.RestoreJob(s)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, s.Status, j.Status())
			assert.Equal(t, s.Status, j.PersistedStatus())
			assert.Empty(t, j.DomainEvents())
		})
	}
}
