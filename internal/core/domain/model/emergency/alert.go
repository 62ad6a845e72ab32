package emergency

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/job"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

const EventAlertTriggered = "panic.triggered"

// AlertStatus is the handling state of an alert. Values are persisted.
type AlertStatus string

const (
	AlertOpen       AlertStatus = "open"
	AlertInProgress AlertStatus = "in_progress"
	AlertResolved   AlertStatus = "resolved"
)

func (s AlertStatus) Validate() error {
	switch s {
	case AlertOpen, AlertInProgress, AlertResolved:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not an alert status", string(s)))
	}
}

var ErrAlertIsNotConstructed = errors.New("Alert must be created via TriggerAlert or RestoreAlert")

// TriggeredEvent is raised when a participant presses the panic button.
// It is the hook for downstream ops notification.
type TriggeredEvent struct {
	kernel.BaseEvent
	AlertID     kernel.UUID     `json:"alertId"`
	JobID       kernel.UUID     `json:"jobId"`
	TriggeredBy kernel.UUID     `json:"triggeredBy"`
	RoleAtTime  job.Participant `json:"roleAtTime"`
	Latitude    float64         `json:"latitude"`
	Longitude   float64         `json:"longitude"`
	Notes       string          `json:"notes,omitempty"`
}

// Alert is immutable evidence that a participant asked for help. Routing to a
// center is informational and is not stored on the alert.
type Alert struct {
	kernel.EventRecorder

	id          kernel.UUID
	jobID       kernel.UUID
	triggeredBy kernel.UUID
	roleAtTime  job.Participant
	location    kernel.GeoPoint
	status      AlertStatus
	notes       string
	createdAt   time.Time
	resolvedAt  *time.Time

	isConstructed bool
}

// TriggerAlert creates an open alert for j raised by callerID.
//
// The caller must be the job's customer or its assigned worker; the role at
// the time is derived from that, never taken from the client. When location is
// nil the job site is used.
func TriggerAlert(id kernel.UUID, j *job.Job, callerID kernel.UUID, location *kernel.GeoPoint, notes string) (*Alert, error) {
	if err := errors.Join(id.Validate(), j.Validate(), callerID.Validate()); err != nil {
		return nil, err
	}

	role, err := j.ParticipantRole(callerID)
	if err != nil {
		return nil, err
	}

	where := j.Location()
	if location != nil {
		if err = location.Validate(); err != nil {
			return nil, err
		}
		where = *location
	}

	a := &Alert{
		id:            id,
		jobID:         j.ID(),
		triggeredBy:   callerID,
		roleAtTime:    role,
		location:      where,
		status:        AlertOpen,
		notes:         notes,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	a.RaiseDomainEvent(TriggeredEvent{
		BaseEvent:   kernel.NewBaseEvent(EventAlertTriggered, id),
		AlertID:     id,
		JobID:       a.jobID,
		TriggeredBy: callerID,
		RoleAtTime:  role,
		Latitude:    where.Latitude(),
		Longitude:   where.Longitude(),
		Notes:       notes,
	})
	return a, nil
}

// AlertSnapshot is the persisted shape of an alert.
type AlertSnapshot struct {
	ID          kernel.UUID
	JobID       kernel.UUID
	TriggeredBy kernel.UUID
	RoleAtTime  job.Participant
	Location    kernel.GeoPoint
	Status      AlertStatus
	Notes       string
	CreatedAt   time.Time
	ResolvedAt  *time.Time
}

// RestoreAlert rebuilds an alert from storage.
func RestoreAlert(s AlertSnapshot) (*Alert, error) {
	problems := []error{
		s.ID.Validate(), s.JobID.Validate(), s.TriggeredBy.Validate(),
		s.Location.Validate(), s.Status.Validate(),
	}
	if s.RoleAtTime != job.ParticipantCustomer && s.RoleAtTime != job.ParticipantWorker {
		problems = append(problems, errs.NewValueIsInvalidError("roleAtTime"))
	}
	if (s.Status == AlertResolved) != (s.ResolvedAt != nil) {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("resolvedAt",
			errors.New("must be set exactly when resolved")))
	}
	if err := errors.Join(problems...); err != nil {
		return nil, err
	}

	return &Alert{
		id:            s.ID,
		jobID:         s.JobID,
		triggeredBy:   s.TriggeredBy,
		roleAtTime:    s.RoleAtTime,
		location:      s.Location,
		status:        s.Status,
		notes:         s.Notes,
		createdAt:     s.CreatedAt,
		resolvedAt:    s.ResolvedAt,
		isConstructed: true,
	}, nil
}

func (a *Alert) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAlertIsNotConstructed
	}
	return nil
}

func (a *Alert) ID() kernel.UUID {
	return a.id
}

func (a *Alert) JobID() kernel.UUID {
	return a.jobID
}

func (a *Alert) TriggeredBy() kernel.UUID {
	return a.triggeredBy
}

func (a *Alert) RoleAtTime() job.Participant {
	return a.roleAtTime
}

func (a *Alert) Location() kernel.GeoPoint {
	return a.location
}

func (a *Alert) Status() AlertStatus {
	return a.status
}

func (a *Alert) Notes() string {
	return a.notes
}

func (a *Alert) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Alert) ResolvedAt() *time.Time {
	return a.resolvedAt
}
