package commands

import (
	"context"

	"marketplace/internal/core/domain/model/job"
)

type CancelJobCommandHandler struct {
	uowFactory JobUoWFactory
}

func NewCancelJobCommandHandler(uowFactory JobUoWFactory) CancelJobCommandHandler {
	return CancelJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle cancels the job for its customer. A concurrent accept that commits
// first turns a cancel from searching into a cancel from accepted; one that
// commits later loses its compare-and-swap.
func (h CancelJobCommandHandler) Handle(ctx context.Context, cmd CancelJobCommand) (*job.Job, error) {
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

	if err = j.Cancel(cmd.CallerID()); err != nil {
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
