package commands

import (
	"context"

	"marketplace/internal/core/domain/model/job"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// CreateJobCommandHandler persists a new searching job. The job.created event
// is published after commit and fans out as a new_job notification.
type CreateJobCommandHandler struct {
	uowFactory JobUoWFactory
}

func NewCreateJobCommandHandler(uowFactory JobUoWFactory) CreateJobCommandHandler {
	return CreateJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns Forbidden for anyone but a customer.
func (h CreateJobCommandHandler) Handle(ctx context.Context, cmd CreateJobCommand) (*job.Job, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if cmd.Caller().Role() != kernel.RoleCustomer {
		return nil, errs.NewForbiddenError("job", "only customers can create jobs")
	}

	created, err := job.NewJob(cmd.JobID(), cmd.Caller().ID(), cmd.Details())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.JobRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
