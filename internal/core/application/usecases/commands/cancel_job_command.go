package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrCancelJobCommandIsNotConstructed = errors.New(
	"CancelJobCommand must be created via NewCancelJobCommand constructor",
)

// CancelJobCommand withdraws a job that has not started yet.
type CancelJobCommand struct { //nolint:recvcheck //using for validation
	jobID    kernel.UUID
	callerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCancelJobCommand(jobID, callerID kernel.UUID) (CancelJobCommand, error) {
	command := CancelJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setJobID(jobID),
		command.setCallerID(callerID),
	); err != nil {
		return CancelJobCommand{}, err
	}

	return command, nil
}

func (c CancelJobCommand) Validate() error {
	return c.guard.Validate(ErrCancelJobCommandIsNotConstructed)
}

func (c CancelJobCommand) JobID() kernel.UUID {
	return c.jobID
}

func (c CancelJobCommand) CallerID() kernel.UUID {
	return c.callerID
}

func (c *CancelJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *CancelJobCommand) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return err
	}

	c.callerID = callerID
	return nil
}
