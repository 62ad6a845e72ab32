package commands

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/job"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCreateJobCommandIsNotConstructed = errors.New(
	"CreateJobCommand must be created via NewCreateJobCommand constructor",
)

// CreateJobCommand opens a new job on behalf of a customer.
//
// Example:
//
//	cmd, err := NewCreateJobCommand(caller, job.Details{
//	    ServiceType:   "deep_cleaning",
//	    Price:         price,
//	    WorkersNeeded: 1,
//	    Location:      site,
//	    Address:       "12 MG Road",
//	})
//	if err != nil {
//	    return err
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateJobCommand struct { //nolint:recvcheck //using for validation
	jobID   kernel.UUID
	caller  kernel.Caller
	details job.Details

	guard guard.ConstructorGuard
}

// NewCreateJobCommand validates the request shape. Business rules such as the
// price and crew size bounds are enforced again by job.NewJob.
func NewCreateJobCommand(caller kernel.Caller, details job.Details) (CreateJobCommand, error) {
	command := CreateJobCommand{
		jobID: kernel.NewUUID(),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCaller(caller),
		command.setDetails(details),
	); err != nil {
		return CreateJobCommand{}, err
	}

	return command, nil
}

func (c CreateJobCommand) Validate() error {
	return c.guard.Validate(ErrCreateJobCommandIsNotConstructed)
}

func (c CreateJobCommand) JobID() kernel.UUID {
	return c.jobID
}

func (c CreateJobCommand) Caller() kernel.Caller {
	return c.caller
}

func (c CreateJobCommand) Details() job.Details {
	return c.details
}

func (c *CreateJobCommand) setCaller(caller kernel.Caller) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *CreateJobCommand) setDetails(details job.Details) error {
	details.ServiceType = strings.TrimSpace(details.ServiceType)
	details.Address = strings.TrimSpace(details.Address)
	details.Description = strings.TrimSpace(details.Description)

	var problems []error
	if details.ServiceType == "" {
		problems = append(problems, errs.NewValueIsRequiredError("serviceType"))
	}
	if details.Address == "" {
		problems = append(problems, errs.NewValueIsRequiredError("address"))
	}
	if err := details.Location.Validate(); err != nil {
		problems = append(problems, err)
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}

	c.details = details
	return nil
}
