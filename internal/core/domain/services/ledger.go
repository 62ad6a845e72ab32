package services

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/job"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/wallet"
	"marketplace/internal/pkg/errs"
)

const (
	// CommissionPercent is the platform's share of every completed job.
	CommissionPercent = 15

	EarningDescription    = "Job earnings"
	CommissionDescription = "Platform commission"
)

// Settlement is the result of splitting a completed job's price.
type Settlement struct {
	WorkerShare kernel.Money
	Commission  kernel.Money
	Earning     *wallet.Transaction
	PlatformFee *wallet.Transaction
}

// Ledger splits a completed job's price between the worker and the platform.
//
// The commission is rounded half up to the cent and the worker receives the
// remainder, so the two entries always add up to the job price.
//
// Settle mutates the worker's wallet in memory and builds the two ledger entries;
// the caller persists the job, the wallet and the entries in one transaction.
type Ledger struct{}

func NewLedger() Ledger {
	return Ledger{}
}

// Split returns (workerShare, commission) for price.
func (l Ledger) Split(price kernel.Money) (kernel.Money, kernel.Money, error) {
	commission := price.Percent(CommissionPercent)
	workerShare, err := price.Sub(commission)
	if err != nil {
		return kernel.Money{}, kernel.Money{}, err
	}
	return workerShare, commission, nil
}

// Settle credits workerWallet and returns the earning and commission entries.
func (l Ledger) Settle(j *job.Job, workerWallet *wallet.Wallet) (Settlement, error) {
	if err := errors.Join(j.Validate(), workerWallet.Validate()); err != nil {
		return Settlement{}, err
	}
	if j.Status() != job.Completed {
		return Settlement{}, errs.NewConflictError("job", fmt.Sprintf("cannot settle a %s job", j.Status()))
	}
	workerID := j.WorkerID()
	if workerID == nil || !workerID.IsEqual(workerWallet.UserID()) {
		return Settlement{}, errs.NewValueIsInvalidErrorWithCause("wallet",
			errors.New("wallet does not belong to the assigned worker"))
	}

	workerShare, commission, err := l.Split(j.Price())
	if err != nil {
		return Settlement{}, err
	}

	if err = workerWallet.Credit(workerShare, j.ID()); err != nil {
		return Settlement{}, err
	}

	earning, err := wallet.NewTransaction(kernel.NewUUID(), workerID, wallet.Earning, workerShare, j.ID(), EarningDescription)
	if err != nil {
		return Settlement{}, err
	}
	platformFee, err := wallet.NewTransaction(kernel.NewUUID(), nil, wallet.Commission, commission, j.ID(), CommissionDescription)
	if err != nil {
		return Settlement{}, err
	}

	return Settlement{
		WorkerShare: workerShare,
		Commission:  commission,
		Earning:     earning,
		PlatformFee: platformFee,
	}, nil
}
