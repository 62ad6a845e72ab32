package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
)

// EventPublisher delivers domain events after the transaction that produced
// them has committed. Delivery is best effort; a failure never undoes the
// committed change.
type EventPublisher interface {
	Publish(ctx context.Context, events ...kernel.DomainEvent) error
}

// Notification is a message pushed to connected clients.
type Notification struct {
	Type  string       `json:"type"`
	JobID *kernel.UUID `json:"jobId,omitempty"`
	Data  any          `json:"data"`
}

// Notifier pushes notifications to live client connections. Sending to a user
// with no connections is a no-op; failed deliveries are handled by the
// implementation and never reported to the caller.
type Notifier interface {
	SendTo(ctx context.Context, userID kernel.UUID, n Notification)
	Broadcast(ctx context.Context, n Notification)
}
