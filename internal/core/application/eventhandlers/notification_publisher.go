// Package eventhandlers reacts to committed domain events: live notifications
// to connected users, metrics and fan-out to several sinks.
package eventhandlers

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/job"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/wallet"
	"marketplace/internal/core/ports"
)

// Notification types pushed over the relay.
const (
	NewJobType          = "new_job"
	JobAcceptedType     = "job_accepted"
	JobStatusUpdateType = "job_status_update"
	JobCancelledType    = "job_cancelled"
	PaymentReceivedType = "payment_received"
)

var ErrNotificationPublisherIsNotConstructed = errors.New("NotificationPublisher must be created via NewNotificationPublisher")

type statusUpdate struct {
	Status job.Status `json:"status"`
}

// NotificationPublisher turns job and wallet events into relay notifications.
// Events without an audience are ignored.
type NotificationPublisher struct {
	notifier ports.Notifier
}

func NewNotificationPublisher(notifier ports.Notifier) (*NotificationPublisher, error) {
	if notifier == nil {
		return nil, ErrNotificationPublisherIsNotConstructed
	}
	return &NotificationPublisher{notifier: notifier}, nil
}

func (p *NotificationPublisher) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	for _, event := range events {
		p.notify(ctx, event)
	}
	return nil
}

func (p *NotificationPublisher) notify(ctx context.Context, event kernel.DomainEvent) {
	switch e := event.(type) {
	case job.CreatedEvent:
		p.notifier.Broadcast(ctx, ports.Notification{Type: NewJobType, JobID: &e.JobID, Data: e})

	case job.AcceptedEvent:
		p.notifier.SendTo(ctx, e.CustomerID, ports.Notification{Type: JobAcceptedType, JobID: &e.JobID, Data: e})

	case job.StatusChangedEvent:
		p.notifier.SendTo(ctx, e.CustomerID, ports.Notification{
			Type:  JobStatusUpdateType,
			JobID: &e.JobID,
			Data:  statusUpdate{Status: e.To},
		})

	case job.CompletedEvent:
		p.notifier.SendTo(ctx, e.CustomerID, ports.Notification{
			Type:  JobStatusUpdateType,
			JobID: &e.JobID,
			Data:  statusUpdate{Status: job.Completed},
		})

	case job.CancelledEvent:
		if e.WorkerID != nil {
			p.notifier.SendTo(ctx, *e.WorkerID, ports.Notification{Type: JobCancelledType, JobID: &e.JobID, Data: e})
		}

	case wallet.CreditedEvent:
		p.notifier.SendTo(ctx, e.UserID, ports.Notification{Type: PaymentReceivedType, JobID: &e.JobID, Data: e})
	}
}
