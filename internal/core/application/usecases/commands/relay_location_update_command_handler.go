package commands

import (
	"context"

	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// ErrNoCounterparty is returned when the job has nobody to relay to yet.
var ErrNoCounterparty = errs.NewConflictError("job", "no counterparty to relay to")

// RelayLocationUpdateCommandHandler routes a location update to the sender's
// counterparty on the job. It only reads the job, no transaction is opened.
//
// Every failure is for the session to log and drop: the sender never learns
// whether the message was delivered.
type RelayLocationUpdateCommandHandler struct {
	uowFactory JobUoWFactory
	notifier   ports.Notifier
}

func NewRelayLocationUpdateCommandHandler(
	uowFactory JobUoWFactory,
	notifier ports.Notifier,
) RelayLocationUpdateCommandHandler {
	return RelayLocationUpdateCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

func (h RelayLocationUpdateCommandHandler) Handle(ctx context.Context, cmd RelayLocationUpdateCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	j, err := h.uowFactory.Create().JobRepository().Get(ctx, cmd.JobID())
	if err != nil {
		return err
	}

	if _, err = j.ParticipantRole(cmd.SenderID()); err != nil {
		return err
	}

	recipient, ok := j.Counterparty(cmd.SenderID())
	if !ok {
		return ErrNoCounterparty
	}

	jobID := j.ID()
	h.notifier.SendTo(ctx, recipient, ports.Notification{
		Type:  LocationUpdateType,
		JobID: &jobID,
		Data:  cmd.Data(),
	})
	return nil
}
