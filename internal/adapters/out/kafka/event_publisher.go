// Package kafka ships committed domain events to Kafka topics.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/segmentio/kafka-go"
)

const writeTimeout = 2 * time.Second

// Envelope is the message value written for every event.
type Envelope struct {
	EventID     kernel.UUID     `json:"eventId"`
	EventName   string          `json:"eventName"`
	AggregateID kernel.UUID     `json:"aggregateId"`
	OccurredAt  time.Time       `json:"occurredAt"`
	Payload     json.RawMessage `json:"payload"`
}

// MessageWriter is the part of *kafka.Writer the publisher uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Topics routes events by name prefix. Panic events go to their own topic so
// the ops consumers do not read the job stream.
type Topics struct {
	JobEvents   string
	PanicEvents string
}

func (t Topics) For(eventName string) string {
	if strings.HasPrefix(eventName, "panic.") {
		return t.PanicEvents
	}
	return t.JobEvents
}

// EventPublisher implements ports.EventPublisher on top of a kafka-go writer.
// Messages are keyed by aggregate id so events of one job stay ordered
// within a partition.
type EventPublisher struct {
	writer MessageWriter
	topics Topics
}

// NewWriter builds a writer without a default topic; every message carries
// its own.
func NewWriter(brokers []string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
}

func NewEventPublisher(writer MessageWriter, topics Topics) (*EventPublisher, error) {
	if writer == nil {
		return nil, errors.New("kafka writer is required")
	}
	if topics.JobEvents == "" || topics.PanicEvents == "" {
		return nil, errors.New("kafka topics are required")
	}
	return &EventPublisher{writer: writer, topics: topics}, nil
}

func (p *EventPublisher) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(events))
	for _, event := range events {
		msg, err := p.message(event)
		if err != nil {
			return err
		}
		msgs = append(msgs, msg)
	}

	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("write %d events: %w", len(msgs), err)
	}
	return nil
}

func (p *EventPublisher) message(event kernel.DomainEvent) (kafka.Message, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("marshal %s payload: %w", event.EventName(), err)
	}
	value, err := json.Marshal(Envelope{
		EventID:     event.EventID(),
		EventName:   event.EventName(),
		AggregateID: event.AggregateID(),
		OccurredAt:  event.OccurredAt(),
		Payload:     payload,
	})
	if err != nil {
		return kafka.Message{}, fmt.Errorf("marshal %s envelope: %w", event.EventName(), err)
	}

	return kafka.Message{
		Topic: p.topics.For(event.EventName()),
		Key:   []byte(event.AggregateID().String()),
		Value: value,
		Time:  event.OccurredAt(),
		Headers: []kafka.Header{
			{Key: "event-name", Value: []byte(event.EventName())},
		},
	}, nil
}

func (p *EventPublisher) Close() error {
	return p.writer.Close()
}
