package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrAcceptJobCommandIsNotConstructed = errors.New(
	"AcceptJobCommand must be created via NewAcceptJobCommand constructor",
)

// AcceptJobCommand lets a worker claim a searching job.
type AcceptJobCommand struct { //nolint:recvcheck //using for validation
	jobID  kernel.UUID
	caller kernel.Caller

	guard guard.ConstructorGuard
}

func NewAcceptJobCommand(jobID kernel.UUID, caller kernel.Caller) (AcceptJobCommand, error) {
	command := AcceptJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setJobID(jobID),
		command.setCaller(caller),
	); err != nil {
		return AcceptJobCommand{}, err
	}

	return command, nil
}

func (c AcceptJobCommand) Validate() error {
	return c.guard.Validate(ErrAcceptJobCommandIsNotConstructed)
}

func (c AcceptJobCommand) JobID() kernel.UUID {
	return c.jobID
}

func (c AcceptJobCommand) Caller() kernel.Caller {
	return c.caller
}

func (c *AcceptJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *AcceptJobCommand) setCaller(caller kernel.Caller) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}
