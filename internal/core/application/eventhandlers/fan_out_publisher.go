package eventhandlers

import (
	"context"
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/observability"
)

// Sink is a named event publisher.
type Sink struct {
	Name      string
	Publisher ports.EventPublisher
}

// FanOutPublisher hands every batch to all sinks in order. A failing sink
// does not stop the others; failures are joined into the returned error.
type FanOutPublisher struct {
	sinks []Sink
}

func NewFanOutPublisher(sinks ...Sink) *FanOutPublisher {
	active := make([]Sink, 0, len(sinks))
	for _, s := range sinks {
		if s.Publisher != nil {
			active = append(active, s)
		}
	}
	return &FanOutPublisher{sinks: active}
}

func (p *FanOutPublisher) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	var errs []error
	for _, s := range p.sinks {
		if err := s.Publisher.Publish(ctx, events...); err != nil {
			observability.EventPublishFailures.WithLabelValues(s.Name).Inc()
			errs = append(errs, fmt.Errorf("%s: %w", s.Name, err))
		}
	}
	return errors.Join(errs...)
}
