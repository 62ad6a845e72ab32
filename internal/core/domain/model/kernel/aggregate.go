package kernel

import (
	"time"
)

// DomainEvent is a fact recorded by an aggregate. Events are collected by the
// unit of work and published after the transaction commits.
type DomainEvent interface {
	EventID() UUID
	EventName() string
	AggregateID() UUID
	OccurredAt() time.Time
}

// AggregateRoot is implemented by every aggregate that records domain events.
type AggregateRoot interface {
	ID() UUID
	DomainEvents() []DomainEvent
	ClearDomainEvents()
}

// BaseEvent carries the envelope fields shared by all domain events.
// Concrete events embed it and add their own exported payload fields.
type BaseEvent struct {
	eventID     UUID
	name        string
	aggregateID UUID
	occurredAt  time.Time
}

// NewBaseEvent stamps a new event with a fresh id and the current UTC time.
func NewBaseEvent(name string, aggregateID UUID) BaseEvent {
	return BaseEvent{
		eventID:     NewUUID(),
		name:        name,
		aggregateID: aggregateID,
		occurredAt:  time.Now().UTC(),
	}
}

func (e BaseEvent) EventID() UUID {
	return e.eventID
}

func (e BaseEvent) EventName() string {
	return e.name
}

func (e BaseEvent) AggregateID() UUID {
	return e.aggregateID
}

func (e BaseEvent) OccurredAt() time.Time {
	return e.occurredAt
}

// EventRecorder is embedded into aggregates to collect raised events.
type EventRecorder struct {
	events []DomainEvent
}

// RaiseDomainEvent appends an event.
func (r *EventRecorder) RaiseDomainEvent(event DomainEvent) {
	r.events = append(r.events, event)
}

// DomainEvents returns a copy of the recorded events.
func (r *EventRecorder) DomainEvents() []DomainEvent {
	out := make([]DomainEvent, len(r.events))
	copy(out, r.events)
	return out
}

// ClearDomainEvents drops recorded events once they were dispatched.
func (r *EventRecorder) ClearDomainEvents() {
	r.events = nil
}
