package job

import (
	"marketplace/internal/core/domain/model/kernel"
)

const (
	EventCreated       = "job.created"
	EventAccepted      = "job.accepted"
	EventStatusChanged = "job.status_changed"
	EventCompleted     = "job.completed"
	EventCancelled     = "job.cancelled"
)

// CreatedEvent is raised when a customer opens a new job.
type CreatedEvent struct {
	kernel.BaseEvent
	JobID       kernel.UUID  `json:"jobId"`
	CustomerID  kernel.UUID  `json:"customerId"`
	ServiceType string       `json:"serviceType"`
	Price       kernel.Money `json:"price"`
	Latitude    float64      `json:"latitude"`
	Longitude   float64      `json:"longitude"`
	Address     string       `json:"address"`
}

// AcceptedEvent is raised when a worker wins the job.
type AcceptedEvent struct {
	kernel.BaseEvent
	JobID      kernel.UUID `json:"jobId"`
	CustomerID kernel.UUID `json:"customerId"`
	WorkerID   kernel.UUID `json:"workerId"`
}

// StatusChangedEvent is raised for worker-driven progress (arrived, started).
type StatusChangedEvent struct {
	kernel.BaseEvent
	JobID      kernel.UUID `json:"jobId"`
	CustomerID kernel.UUID `json:"customerId"`
	WorkerID   kernel.UUID `json:"workerId"`
	From       Status      `json:"from"`
	To         Status      `json:"to"`
}

// CompletedEvent is raised when the OTP was verified and the job settled.
type CompletedEvent struct {
	kernel.BaseEvent
	JobID      kernel.UUID  `json:"jobId"`
	CustomerID kernel.UUID  `json:"customerId"`
	WorkerID   kernel.UUID  `json:"workerId"`
	Price      kernel.Money `json:"price"`
}

// CancelledEvent is raised when the customer withdraws the job.
type CancelledEvent struct {
	kernel.BaseEvent
	JobID      kernel.UUID  `json:"jobId"`
	CustomerID kernel.UUID  `json:"customerId"`
	WorkerID   *kernel.UUID `json:"workerId,omitempty"`
}
