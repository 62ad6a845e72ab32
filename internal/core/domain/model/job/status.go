package job

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status is the lifecycle state of a job. The string values are persisted and
// sent to clients; they must never change.
//
// State transitions:
//
//	searching ──accept──> accepted ──> arrived ──> started ──otp──> completed
//	    │                    │
//	    └──────cancel────────┴──> cancelled
type Status string

const (
	Searching Status = "searching"
	Accepted  Status = "accepted"
	Arrived   Status = "arrived"
	Started   Status = "started"
	Completed Status = "completed"
	Cancelled Status = "cancelled"
)

// advanceTable lists what a worker may request through a plain status update.
// Acceptance and completion have their own operations.
//
//nolint:exhaustive // only the worker-driven steps are listed
var advanceTable = map[Status]Status{
	Accepted: Arrived,
	Arrived:  Started,
}

// Validate rejects values that are not one of the six known statuses.
func (s Status) Validate() error {
	switch s {
	case Searching, Accepted, Arrived, Started, Completed, Cancelled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid job status", string(s)))
	}
}

func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// RequiresWorker reports whether a job in this status must have a worker assigned.
// Cancelled jobs may or may not have one depending on when they were cancelled.
func (s Status) RequiresWorker() bool {
	return s == Accepted || s == Arrived || s == Started || s == Completed
}

// Accept moves a searching job to accepted. Any other status means the job
// was already taken or closed, which is a conflict rather than a bad request.
func (s Status) Accept() (Status, error) {
	if s != Searching {
		return s, errs.NewConflictError("job", fmt.Sprintf("is no longer available (status %s)", s))
	}
	return Accepted, nil
}

// Advance applies a worker-requested transition.
//
// Allowed:
//   - accepted -> arrived
//   - arrived  -> started
//
// started -> completed needs the OTP and is rejected here.
func (s Status) Advance(to Status) (Status, error) {
	if err := to.Validate(); err != nil {
		return s, err
	}
	if next, ok := advanceTable[s]; !ok || next != to {
		return s, errs.NewTransitionIsInvalidError("job status", s, to)
	}
	return to, nil
}

// Complete moves a started job to completed.
func (s Status) Complete() (Status, error) {
	if s != Started {
		return s, errs.NewTransitionIsInvalidError("job status", s, Completed)
	}
	return Completed, nil
}

// Cancel closes a job that has not started yet.
func (s Status) Cancel() (Status, error) {
	if s != Searching && s != Accepted {
		return s, errs.NewTransitionIsInvalidError("job status", s, Cancelled)
	}
	return Cancelled, nil
}
