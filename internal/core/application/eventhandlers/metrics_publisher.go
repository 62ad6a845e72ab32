package eventhandlers

import (
	"context"

	"marketplace/internal/core/domain/model/emergency"
	"marketplace/internal/core/domain/model/job"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/observability"
)

// MetricsPublisher counts committed events.
type MetricsPublisher struct{}

func NewMetricsPublisher() MetricsPublisher {
	return MetricsPublisher{}
}

func (MetricsPublisher) Publish(_ context.Context, events ...kernel.DomainEvent) error {
	for _, event := range events {
		observability.JobEventsTotal.WithLabelValues(event.EventName()).Inc()

		switch e := event.(type) {
		case job.CompletedEvent:
			observability.SettledJobsTotal.Inc()
			observability.SettledAmountCents.Add(float64(e.Price.Cents()))
		case emergency.TriggeredEvent:
			observability.PanicAlertsTotal.WithLabelValues(string(e.RoleAtTime)).Inc()
		}
	}
	return nil
}
