package commands

import (
	"context"

	"marketplace/internal/core/domain/model/job"
)

// AcceptJobCommandHandler assigns a searching job to the calling worker.
//
// Under concurrent accepts exactly one request wins: the update is
// conditioned on the row still being searching, every other request gets a
// Conflict either from the aggregate (it already saw the new status) or from
// the repository (it lost the compare-and-swap).
//
// Example:
//
//	cmd, _ := NewAcceptJobCommand(jobID, caller)
//	accepted, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrConflict):
//	    // someone else was faster
//	case errors.Is(err, errs.ErrForbidden):
//	    // the caller's role cannot accept jobs
//	}
type AcceptJobCommandHandler struct {
	uowFactory JobUoWFactory
}

func NewAcceptJobCommandHandler(uowFactory JobUoWFactory) AcceptJobCommandHandler {
	return AcceptJobCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h AcceptJobCommandHandler) Handle(ctx context.Context, cmd AcceptJobCommand) (*job.Job, error) {
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

	if err = j.Accept(cmd.Caller()); err != nil {
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
