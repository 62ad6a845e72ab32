package job

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

const (
	// MinWorkersNeeded is the smallest crew a job can ask for.
	MinWorkersNeeded = 1
	// MaxWorkersNeeded caps the crew size a single job can ask for.
	MaxWorkersNeeded = 50
)

var (
	// ErrJobIsNotConstructed is returned when a Job was not created through NewJob or RestoreJob.
	ErrJobIsNotConstructed = errors.New("Job must be created via NewJob or RestoreJob constructor")
)

// Participant is the side of a job a user is on.
type Participant string

const (
	ParticipantCustomer Participant = "customer"
	ParticipantWorker   Participant = "worker"
)

// Details is what the customer asks for when opening a job.
type Details struct {
	ServiceType   string
	Description   string
	Price         kernel.Money
	WorkersNeeded int
	Location      kernel.GeoPoint
	Address       string
}

func (d Details) validate() error {
	var problems []error
	if strings.TrimSpace(d.ServiceType) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("serviceType"))
	}
	if d.Price.IsZero() {
		problems = append(problems, errs.NewValueIsOutOfRangeError("price", d.Price.String(), "0.01", "unbounded"))
	}
	if d.WorkersNeeded < MinWorkersNeeded || d.WorkersNeeded > MaxWorkersNeeded {
		problems = append(problems,
			errs.NewValueIsOutOfRangeError("workersNeeded", d.WorkersNeeded, MinWorkersNeeded, MaxWorkersNeeded))
	}
	if err := d.Location.Validate(); err != nil {
		problems = append(problems, err)
	}
	if strings.TrimSpace(d.Address) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("address"))
	}
	return errors.Join(problems...)
}

// Job is the aggregate root of the booking lifecycle.
//
// Invariants:
//   - worker is nil while searching and set once the job has been accepted
//   - acceptedAt is set exactly when a worker was assigned
//   - completedAt is set exactly when the status is completed
//   - only the assigned worker moves the job forward; only the customer cancels it
//   - the OTP is consulted only by VerifyOtpAndComplete
//
// A job cancelled while searching keeps a nil worker.
type Job struct {
	kernel.EventRecorder

	id          kernel.UUID
	customerID  kernel.UUID
	workerID    *kernel.UUID
	status      Status
	otp         OTP
	details     Details
	createdAt   time.Time
	acceptedAt  *time.Time
	completedAt *time.Time

	// persistedStatus is the status the job had when it was loaded. Repositories
	// use it as the compare-and-swap condition of their update.
	persistedStatus Status

	isConstructed bool
}

// NewJob opens a job in the searching status with a freshly generated OTP.
//
// Example:
//
//	site, _ := kernel.NewGeoPoint(12.97, 77.59)
//	j, err := job.NewJob(kernel.NewUUID(), customerID, job.Details{
//	    ServiceType:   "deep_cleaning",
//	    Price:         kernel.MustMoneyFromCents(10000),
//	    WorkersNeeded: 2,
//	    Location:      site,
//	    Address:       "12 MG Road",
//	})
func NewJob(id, customerID kernel.UUID, details Details) (*Job, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		details.validate(),
	); err != nil {
		return nil, err
	}

	otp, err := GenerateOTP()
	if err != nil {
		return nil, err
	}

	j := &Job{
		id:              id,
		customerID:      customerID,
		status:          Searching,
		otp:             otp,
		details:         details,
		createdAt:       time.Now().UTC(),
		persistedStatus: Searching,
		isConstructed:   true,
	}

	j.RaiseDomainEvent(CreatedEvent{
		BaseEvent:   kernel.NewBaseEvent(EventCreated, id),
		JobID:       id,
		CustomerID:  customerID,
		ServiceType: details.ServiceType,
		Price:       details.Price,
		Latitude:    details.Location.Latitude(),
		Longitude:   details.Location.Longitude(),
		Address:     details.Address,
	})

	return j, nil
}

// Snapshot is the persisted shape of a job, used by RestoreJob.
type Snapshot struct {
	ID          kernel.UUID
	CustomerID  kernel.UUID
	WorkerID    *kernel.UUID
	Status      Status
	OTP         string
	Details     Details
	CreatedAt   time.Time
	AcceptedAt  *time.Time
	CompletedAt *time.Time
}

// RestoreJob rebuilds a job from storage and re-checks the aggregate invariants,
// so a corrupted row surfaces as an error instead of a half-valid aggregate.
func RestoreJob(s Snapshot) (*Job, error) {
	otp, otpErr := RestoreOTP(s.OTP)
	if err := errors.Join(
		s.ID.Validate(),
		s.CustomerID.Validate(),
		s.Status.Validate(),
		otpErr,
		s.Details.validate(),
	); err != nil {
		return nil, err
	}

	if err := validateLifecycleFields(s); err != nil {
		return nil, err
	}

	return &Job{
		id:              s.ID,
		customerID:      s.CustomerID,
		workerID:        s.WorkerID,
		status:          s.Status,
		otp:             otp,
		details:         s.Details,
		createdAt:       s.CreatedAt,
		acceptedAt:      s.AcceptedAt,
		completedAt:     s.CompletedAt,
		persistedStatus: s.Status,
		isConstructed:   true,
	}, nil
}

func validateLifecycleFields(s Snapshot) error {
	hasWorker := s.WorkerID != nil
	switch {
	case s.Status == Searching && hasWorker:
		return errs.NewValueIsInvalidErrorWithCause("workerId", errors.New("searching job cannot have a worker"))
	case s.Status.RequiresWorker() && !hasWorker:
		return errs.NewValueIsRequiredErrorWithCause("workerId", fmt.Errorf("%s job must have a worker", s.Status))
	case hasWorker != (s.AcceptedAt != nil):
		return errs.NewValueIsInvalidErrorWithCause("acceptedAt", errors.New("must be set exactly when a worker is assigned"))
	case (s.Status == Completed) != (s.CompletedAt != nil):
		return errs.NewValueIsInvalidErrorWithCause("completedAt", errors.New("must be set exactly when completed"))
	}
	return nil
}

// Validate ensures the job was created via NewJob or RestoreJob.
func (j *Job) Validate() error {
	if j == nil || !j.isConstructed {
		return ErrJobIsNotConstructed
	}
	return nil
}

func (j *Job) ID() kernel.UUID {
	return j.id
}

func (j *Job) CustomerID() kernel.UUID {
	return j.customerID
}

// WorkerID returns the assigned worker or nil while the job is unassigned.
func (j *Job) WorkerID() *kernel.UUID {
	return j.workerID
}

func (j *Job) Status() Status {
	return j.status
}

// PersistedStatus returns the status the job had when it was created or loaded.
func (j *Job) PersistedStatus() Status {
	return j.persistedStatus
}

// MarkPersisted records that the current status was written. Repositories call
// it after a successful update so later writes in the same unit of work compare
// against the new value.
func (j *Job) MarkPersisted() {
	j.persistedStatus = j.status
}

func (j *Job) OTP() OTP {
	return j.otp
}

func (j *Job) Details() Details {
	return j.details
}

func (j *Job) Price() kernel.Money {
	return j.details.Price
}

func (j *Job) Location() kernel.GeoPoint {
	return j.details.Location
}

func (j *Job) CreatedAt() time.Time {
	return j.createdAt
}

func (j *Job) AcceptedAt() *time.Time {
	return j.acceptedAt
}

func (j *Job) CompletedAt() *time.Time {
	return j.completedAt
}

// VisibleOTP returns the code only to the customer; workers learn it from the
// customer on site.
func (j *Job) VisibleOTP(viewerID kernel.UUID) string {
	if viewerID.IsEqual(j.customerID) {
		return j.otp.String()
	}
	return ""
}

// IsAssignedWorker reports whether userID is the accepted worker.
func (j *Job) IsAssignedWorker(userID kernel.UUID) bool {
	return j.workerID != nil && j.workerID.IsEqual(userID)
}

// ParticipantRole returns which side of the job userID is on, or a Forbidden
// error for anyone else.
func (j *Job) ParticipantRole(userID kernel.UUID) (Participant, error) {
	switch {
	case userID.IsEqual(j.customerID):
		return ParticipantCustomer, nil
	case j.IsAssignedWorker(userID):
		return ParticipantWorker, nil
	default:
		return "", errs.NewForbiddenError("job", "caller is not a participant of this job")
	}
}

// Counterparty returns the other participant of the job for userID. It reports
// false when userID is not a participant or the other side is not known yet.
func (j *Job) Counterparty(userID kernel.UUID) (kernel.UUID, bool) {
	switch {
	case userID.IsEqual(j.customerID):
		if j.workerID == nil {
			return kernel.UUID{}, false
		}
		return *j.workerID, true
	case j.IsAssignedWorker(userID):
		return j.customerID, true
	default:
		return kernel.UUID{}, false
	}
}

// Accept assigns the job to worker.
//
// Checks, in order:
//   - the job is still searching (Conflict otherwise)
//   - the caller's role may accept jobs (Forbidden otherwise)
//
// The status check comes first so that losers of a race learn the job is gone
// regardless of their role.
func (j *Job) Accept(worker kernel.Caller) error {
	if err := worker.Validate(); err != nil {
		return err
	}

	next, err := j.status.Accept()
	if err != nil {
		return err
	}

	if !worker.Role().CanAcceptJobs() {
		return errs.NewForbiddenError("job", fmt.Sprintf("role %s cannot accept jobs", worker.Role()))
	}
	if worker.ID().IsEqual(j.customerID) {
		return errs.NewForbiddenError("job", "customers cannot accept their own job")
	}

	now := time.Now().UTC()
	workerID := worker.ID()
	j.workerID = &workerID
	j.acceptedAt = &now
	j.status = next

	j.RaiseDomainEvent(AcceptedEvent{
		BaseEvent:  kernel.NewBaseEvent(EventAccepted, j.id),
		JobID:      j.id,
		CustomerID: j.customerID,
		WorkerID:   workerID,
	})
	return nil
}

// AdvanceStatus applies a worker-requested transition (accepted -> arrived,
// arrived -> started). Only the assigned worker may call it.
//
// Like Accept, the state machine is consulted before the caller, so a request
// outside the table is always reported as an invalid transition.
func (j *Job) AdvanceStatus(callerID kernel.UUID, to Status) error {
	from := j.status
	next, err := from.Advance(to)
	if err != nil {
		return err
	}

	if !j.IsAssignedWorker(callerID) {
		return errs.NewForbiddenError("job", "only the assigned worker may update the status")
	}
	j.status = next

	j.RaiseDomainEvent(StatusChangedEvent{
		BaseEvent:  kernel.NewBaseEvent(EventStatusChanged, j.id),
		JobID:      j.id,
		CustomerID: j.customerID,
		WorkerID:   *j.workerID,
		From:       from,
		To:         next,
	})
	return nil
}

// VerifyOtpAndComplete finishes a started job when the supplied code matches.
// On any failure the job is left untouched. Settlement is the caller's duty and
// must happen in the same transaction as persisting the completed job.
func (j *Job) VerifyOtpAndComplete(callerID kernel.UUID, suppliedOTP string) error {
	next, err := j.status.Complete()
	if err != nil {
		return err
	}

	if !j.IsAssignedWorker(callerID) {
		return errs.NewForbiddenError("job", "only the assigned worker may complete the job")
	}

	if !j.otp.Matches(suppliedOTP) {
		return errs.NewOtpIsInvalidError("otp")
	}

	now := time.Now().UTC()
	j.completedAt = &now
	j.status = next

	j.RaiseDomainEvent(CompletedEvent{
		BaseEvent:  kernel.NewBaseEvent(EventCompleted, j.id),
		JobID:      j.id,
		CustomerID: j.customerID,
		WorkerID:   *j.workerID,
		Price:      j.details.Price,
	})
	return nil
}

// Cancel withdraws a job that has not started yet. Only the customer may cancel.
func (j *Job) Cancel(callerID kernel.UUID) error {
	if !callerID.IsEqual(j.customerID) {
		return errs.NewForbiddenError("job", "only the customer may cancel the job")
	}

	next, err := j.status.Cancel()
	if err != nil {
		return err
	}
	j.status = next

	j.RaiseDomainEvent(CancelledEvent{
		BaseEvent:  kernel.NewBaseEvent(EventCancelled, j.id),
		JobID:      j.id,
		CustomerID: j.customerID,
		WorkerID:   j.workerID,
	})
	return nil
}
