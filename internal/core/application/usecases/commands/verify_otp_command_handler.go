package commands

import (
	"context"

	"marketplace/internal/core/domain/model/job"
	"marketplace/internal/core/domain/services"
)

// VerifyOtpResult is the completed job and how its price was split.
type VerifyOtpResult struct {
	Job        *job.Job
	Settlement services.Settlement
}

// VerifyOtpCommandHandler completes a job and settles it in one transaction.
//
// Steps, all inside a single unit of work:
//  1. load the job and verify the OTP (no write happens on mismatch)
//  2. write the completed status, conditioned on the job still being started
//  3. make sure the worker has a wallet, then lock it
//  4. credit the wallet and append the earning and commission entries
//  5. commit once
//
// Any failure rolls back the status change together with the ledger writes.
type VerifyOtpCommandHandler struct {
	uowFactory SettlementUoWFactory
	ledger     services.Ledger
}

func NewVerifyOtpCommandHandler(uowFactory SettlementUoWFactory) VerifyOtpCommandHandler {
	return VerifyOtpCommandHandler{
		uowFactory: uowFactory,
		ledger:     services.NewLedger(),
	}
}

func (h VerifyOtpCommandHandler) Handle(ctx context.Context, cmd VerifyOtpCommand) (VerifyOtpResult, error) {
	if err := cmd.Validate(); err != nil {
		return VerifyOtpResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return VerifyOtpResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobRepo := uow.JobRepository()
	walletRepo := uow.WalletRepository()
	txRepo := uow.TransactionRepository()

	j, err := jobRepo.Get(ctx, cmd.JobID())
	if err != nil {
		return VerifyOtpResult{}, err
	}

	if err = j.VerifyOtpAndComplete(cmd.CallerID(), cmd.OTP()); err != nil {
		return VerifyOtpResult{}, err
	}

	// the compare-and-swap goes first so a double submit fails before the wallet lock
	if err = jobRepo.Update(ctx, j); err != nil {
		return VerifyOtpResult{}, err
	}

	workerID := *j.WorkerID()
	if err = walletRepo.Ensure(ctx, workerID); err != nil {
		return VerifyOtpResult{}, err
	}

	w, err := walletRepo.GetByUserIDForUpdate(ctx, workerID)
	if err != nil {
		return VerifyOtpResult{}, err
	}

	settlement, err := h.ledger.Settle(j, w)
	if err != nil {
		return VerifyOtpResult{}, err
	}

	if err = walletRepo.Update(ctx, w); err != nil {
		return VerifyOtpResult{}, err
	}

	if err = txRepo.Add(ctx, settlement.Earning); err != nil {
		return VerifyOtpResult{}, err
	}

	if err = txRepo.Add(ctx, settlement.PlatformFee); err != nil {
		return VerifyOtpResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return VerifyOtpResult{}, err
	}

	return VerifyOtpResult{Job: j, Settlement: settlement}, nil
}
