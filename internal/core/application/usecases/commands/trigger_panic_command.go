package commands

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrTriggerPanicCommandIsNotConstructed = errors.New(
	"TriggerPanicCommand must be created via NewTriggerPanicCommand constructor",
)

// TriggerPanicCommand raises an emergency alert for a job. Location is optional
// and defaults to the job site.
type TriggerPanicCommand struct { //nolint:recvcheck //using for validation
	jobID    kernel.UUID
	callerID kernel.UUID
	location *kernel.GeoPoint
	notes    string

	guard guard.ConstructorGuard
}

func NewTriggerPanicCommand(
	jobID, callerID kernel.UUID,
	location *kernel.GeoPoint,
	notes string,
) (TriggerPanicCommand, error) {
	command := TriggerPanicCommand{
		notes: strings.TrimSpace(notes),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setJobID(jobID),
		command.setCallerID(callerID),
		command.setLocation(location),
	); err != nil {
		return TriggerPanicCommand{}, err
	}

	return command, nil
}

func (c TriggerPanicCommand) Validate() error {
	return c.guard.Validate(ErrTriggerPanicCommandIsNotConstructed)
}

func (c TriggerPanicCommand) JobID() kernel.UUID {
	return c.jobID
}

func (c TriggerPanicCommand) CallerID() kernel.UUID {
	return c.callerID
}

// Location returns the reported position or nil when the caller sent none.
func (c TriggerPanicCommand) Location() *kernel.GeoPoint {
	return c.location
}

func (c TriggerPanicCommand) Notes() string {
	return c.notes
}

func (c *TriggerPanicCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *TriggerPanicCommand) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return err
	}

	c.callerID = callerID
	return nil
}

func (c *TriggerPanicCommand) setLocation(location *kernel.GeoPoint) error {
	if location == nil {
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}
