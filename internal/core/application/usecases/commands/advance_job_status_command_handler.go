package commands

import (
	"context"

	"marketplace/internal/core/domain/model/job"
)

// AdvanceJobStatusCommandHandler applies accepted -> arrived and
// arrived -> started. Completion goes through VerifyOtpCommandHandler.
type AdvanceJobStatusCommandHandler struct {
	uowFactory JobUoWFactory
}

func NewAdvanceJobStatusCommandHandler(uowFactory JobUoWFactory) AdvanceJobStatusCommandHandler {
	return AdvanceJobStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h AdvanceJobStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceJobStatusCommand) (*job.Job, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobRepo := uow.JobRepository()

	j, err := jobRepo.Get(ctx, cmd.JobID())
	if err != nil {
		return nil, err
	}

	if err = j.AdvanceStatus(cmd.CallerID(), cmd.Status()); err != nil {
		return nil, err
	}

	if err = jobRepo.Update(ctx, j); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return j, nil
}
