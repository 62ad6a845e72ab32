package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/job"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrAdvanceJobStatusCommandIsNotConstructed = errors.New(
	"AdvanceJobStatusCommand must be created via NewAdvanceJobStatusCommand constructor",
)

// AdvanceJobStatusCommand moves a job one step forward on behalf of its worker.
// Only syntactically valid statuses are accepted here; whether the step is
// allowed is decided by the aggregate.
type AdvanceJobStatusCommand struct { //nolint:recvcheck //using for validation
	jobID    kernel.UUID
	callerID kernel.UUID
	status   job.Status

	guard guard.ConstructorGuard
}

func NewAdvanceJobStatusCommand(jobID, callerID kernel.UUID, status job.Status) (AdvanceJobStatusCommand, error) {
	command := AdvanceJobStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setJobID(jobID),
		command.setCallerID(callerID),
		command.setStatus(status),
	); err != nil {
		return AdvanceJobStatusCommand{}, err
	}

	return command, nil
}

func (c AdvanceJobStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceJobStatusCommandIsNotConstructed)
}

func (c AdvanceJobStatusCommand) JobID() kernel.UUID {
	return c.jobID
}

func (c AdvanceJobStatusCommand) CallerID() kernel.UUID {
	return c.callerID
}

func (c AdvanceJobStatusCommand) Status() job.Status {
	return c.status
}

func (c *AdvanceJobStatusCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *AdvanceJobStatusCommand) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return err
	}

	c.callerID = callerID
	return nil
}

func (c *AdvanceJobStatusCommand) setStatus(status job.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
