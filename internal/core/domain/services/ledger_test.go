package services_test

import (
	"testing"

	"marketplace/internal/core/domain/model/job"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/wallet"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jobWithPrice(t *testing.T, cents int64) (*job.Job, kernel.UUID) {
	t.Helper()
	j, err := job.NewJob(kernel.NewUUID(), kernel.NewUUID(), job.Details{
		ServiceType:   "deep_cleaning",
		Price:         kernel.MustMoneyFromCents(cents),
		WorkersNeeded: 1,
		Location:      kernel.MustNewGeoPoint(12.97, 77.59),
		Address:       "12 MG Road",
	})
	require.NoError(t, err)

	worker, err := kernel.NewCaller(kernel.NewUUID(), kernel.RoleWorker)
	require.NoError(t, err)
	require.NoError(t, j.Accept(worker))
	return j, worker.ID()
}

func completedJob(t *testing.T, cents int64) (*job.Job, kernel.UUID) {
	t.Helper()
	j, workerID := jobWithPrice(t, cents)
	require.NoError(t, j.AdvanceStatus(workerID, job.Arrived))
	require.NoError(t, j.AdvanceStatus(workerID, job.Started))
	require.NoError(t, j.VerifyOtpAndComplete(workerID, j.OTP().String()))
	return j, workerID
}

func TestLedger_Settle(t *testing.T) {
	ledger := services.NewLedger()

	t.Run("price 100.00 splits 85.00 / 15.00", func(t *testing.T) {
		j, workerID := completedJob(t, 10000)
		w, err := wallet.NewWallet(kernel.NewUUID(), workerID)
		require.NoError(t, err)

		s, err := ledger.Settle(j, w)

		require.NoError(t, err)
		assert.Equal(t, int64(8500), s.WorkerShare.Cents())
		assert.Equal(t, int64(1500), s.Commission.Cents())

		assert.Equal(t, wallet.Earning, s.Earning.Type())
		assert.True(t, s.Earning.UserID().IsEqual(workerID))
		assert.Equal(t, int64(8500), s.Earning.Amount().Cents())
		assert.Equal(t, services.EarningDescription, s.Earning.Description())

		assert.Equal(t, wallet.Commission, s.PlatformFee.Type())
		assert.Nil(t, s.PlatformFee.UserID())
		assert.Equal(t, int64(1500), s.PlatformFee.Amount().Cents())
		assert.True(t, s.PlatformFee.JobID().IsEqual(j.ID()))

		assert.Equal(t, int64(8500), w.Balance().Cents())
		assert.Equal(t, int64(8500), w.TotalEarnings().Cents())
	})

	t.Run("shares always add up to the price", func(t *testing.T) {
		for _, cents := range []int64{1, 3, 7, 10, 333, 9999, 123457} {
			workerShare, commission, err := ledger.Split(kernel.MustMoneyFromCents(cents))
			require.NoError(t, err)
			assert.Equal(t, cents, workerShare.Cents()+commission.Cents(), "price %d", cents)
			assert.Positive(t, workerShare.Cents())
		}
	})

	t.Run("job must be completed", func(t *testing.T) {
		j, workerID := jobWithPrice(t, 10000)
		w, err := wallet.NewWallet(kernel.NewUUID(), workerID)
		require.NoError(t, err)

		_, err = ledger.Settle(j, w)

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.True(t, w.Balance().IsZero())
	})

	t.Run("wallet must belong to the worker", func(t *testing.T) {
		j, _ := completedJob(t, 10000)
		w, err := wallet.NewWallet(kernel.NewUUID(), kernel.NewUUID())
		require.NoError(t, err)

		_, err = ledger.Settle(j, w)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.True(t, w.Balance().IsZero())
	})
}
