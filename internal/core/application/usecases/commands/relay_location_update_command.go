package commands

import (
	"encoding/json"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// LocationUpdateType is the relay message type for live positions.
const LocationUpdateType = "location_update"

var ErrRelayLocationUpdateCommandIsNotConstructed = errors.New(
	"RelayLocationUpdateCommand must be created via NewRelayLocationUpdateCommand constructor",
)

// RelayLocationUpdateCommand forwards a participant's live position to the
// other side of the job. The payload is opaque and forwarded byte for byte.
type RelayLocationUpdateCommand struct { //nolint:recvcheck //using for validation
	senderID kernel.UUID
	jobID    kernel.UUID
	data     json.RawMessage

	guard guard.ConstructorGuard
}

func NewRelayLocationUpdateCommand(
	senderID, jobID kernel.UUID,
	data json.RawMessage,
) (RelayLocationUpdateCommand, error) {
	command := RelayLocationUpdateCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setSenderID(senderID),
		command.setJobID(jobID),
		command.setData(data),
	); err != nil {
		return RelayLocationUpdateCommand{}, err
	}

	return command, nil
}

func (c RelayLocationUpdateCommand) Validate() error {
	return c.guard.Validate(ErrRelayLocationUpdateCommandIsNotConstructed)
}

func (c RelayLocationUpdateCommand) SenderID() kernel.UUID {
	return c.senderID
}

func (c RelayLocationUpdateCommand) JobID() kernel.UUID {
	return c.jobID
}

func (c RelayLocationUpdateCommand) Data() json.RawMessage {
	return c.data
}

func (c *RelayLocationUpdateCommand) setSenderID(senderID kernel.UUID) error {
	if err := senderID.Validate(); err != nil {
		return err
	}

	c.senderID = senderID
	return nil
}

func (c *RelayLocationUpdateCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *RelayLocationUpdateCommand) setData(data json.RawMessage) error {
	if len(data) == 0 || !json.Valid(data) {
		return errs.NewValueIsInvalidError("data")
	}

	c.data = data
	return nil
}
