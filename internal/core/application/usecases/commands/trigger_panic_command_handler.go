package commands

import (
	"context"
	"log/slog"

	"marketplace/internal/core/domain/model/emergency"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
)

// PanicRoutedMessage is returned with every accepted panic alert.
const PanicRoutedMessage = "Emergency alert created and routed to the nearest center (if available)."

// TriggerPanicResult carries the stored alert and the routing outcome.
// EmergencyCenterID is informational and is never written to the alert.
type TriggerPanicResult struct {
	AlertID           kernel.UUID
	JobID             kernel.UUID
	EmergencyCenterID *kernel.UUID
	Message           string
}

// TriggerPanicCommandHandler stores a panic alert and routes it to the nearest
// qualifying emergency center.
//
// The alert is committed before routing starts, so it survives any routing
// failure. A routing error is logged and reported as "no center".
type TriggerPanicCommandHandler struct {
	uowFactory PanicUoWFactory
	finder     ports.CenterFinder
	logger     *slog.Logger
}

func NewTriggerPanicCommandHandler(
	uowFactory PanicUoWFactory,
	finder ports.CenterFinder,
	logger *slog.Logger,
) TriggerPanicCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return TriggerPanicCommandHandler{
		uowFactory: uowFactory,
		finder:     finder,
		logger:     logger.With("component", "trigger_panic"),
	}
}

func (h TriggerPanicCommandHandler) Handle(ctx context.Context, cmd TriggerPanicCommand) (TriggerPanicResult, error) {
	if err := cmd.Validate(); err != nil {
		return TriggerPanicResult{}, err
	}

	alert, err := h.storeAlert(ctx, cmd)
	if err != nil {
		return TriggerPanicResult{}, err
	}

	result := TriggerPanicResult{
		AlertID: alert.ID(),
		JobID:   alert.JobID(),
		Message: PanicRoutedMessage,
	}

	center, err := h.finder.FindNearest(ctx, alert.Location())
	switch {
	case err != nil:
		h.logger.Error("route panic alert", "error", err, "alert_id", alert.ID().String())
	case center == nil:
		h.logger.Warn("no emergency center covers alert", "alert_id", alert.ID().String(),
			"lat", alert.Location().Latitude(), "lon", alert.Location().Longitude())
	default:
		centerID := center.ID()
		result.EmergencyCenterID = &centerID
		h.logger.Info("panic alert routed", "alert_id", alert.ID().String(), "center_id", centerID.String())
	}

	return result, nil
}

func (h TriggerPanicCommandHandler) storeAlert(ctx context.Context, cmd TriggerPanicCommand) (*emergency.Alert, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	j, err := uow.JobRepository().Get(ctx, cmd.JobID())
	if err != nil {
		return nil, err
	}

	alert, err := emergency.TriggerAlert(kernel.NewUUID(), j, cmd.CallerID(), cmd.Location(), cmd.Notes())
	if err != nil {
		return nil, err
	}

	if err = uow.PanicAlertRepository().Add(ctx, alert); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return alert, nil
}
