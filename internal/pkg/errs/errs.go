package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound      = errors.New("object not found")
	ErrValueIsInvalid      = errors.New("value is invalid")
	ErrValueIsOutOfRange   = errors.New("value is out of range")
	ErrValueIsRequired     = errors.New("value is required")
	ErrForbidden           = errors.New("access is forbidden")
	ErrConflict            = errors.New("state conflict")
	ErrTransitionIsInvalid = errors.New("transition is invalid")
	ErrOtpIsInvalid        = errors.New("otp is invalid")
)

func sanitize(input string) string {
	return strings.ReplaceAll(input, "\n", " ")
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %s)", msg, sanitize(cause.Error()))
}

// ObjectNotFoundError reports that an entity referenced by ID does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return withCause(
			fmt.Sprintf("%s: param is: %s, ID is: %s", ErrObjectNotFound, sanitize(e.ParamName), sanitize(fmt.Sprintf("%s", e.ID))),
			e.Cause,
		)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(fmt.Sprintf("%s", e.ID)))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports a malformed input value.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, sanitize(e.ParamName)), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside of [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid,
		sanitize(fmt.Sprintf("%v", e.Value)),
		sanitize(e.ParamName),
		e.Min,
		e.Max,
	)
	return withCause(msg, e.Cause)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports a missing mandatory value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, sanitize(e.ParamName)), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ForbiddenError reports that the caller lacks the role or ownership an operation needs.
type ForbiddenError struct {
	ParamName string
	Reason    string
}

func NewForbiddenError(paramName, reason string) *ForbiddenError {
	return &ForbiddenError{ParamName: paramName, Reason: reason}
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("%s: %s, %s", ErrForbidden, sanitize(e.ParamName), sanitize(e.Reason))
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// ConflictError reports a violated state precondition, for example a job that
// was taken by someone else between read and write.
type ConflictError struct {
	ParamName string
	Reason    string
}

func NewConflictError(paramName, reason string) *ConflictError {
	return &ConflictError{ParamName: paramName, Reason: reason}
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s, %s", ErrConflict, sanitize(e.ParamName), sanitize(e.Reason))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// TransitionIsInvalidError reports a state change that the state machine does not allow.
type TransitionIsInvalidError struct {
	ParamName string
	From      any
	To        any
}

func NewTransitionIsInvalidError(paramName string, from, to any) *TransitionIsInvalidError {
	return &TransitionIsInvalidError{ParamName: paramName, From: from, To: to}
}

func (e *TransitionIsInvalidError) Error() string {
	return fmt.Sprintf("%s: %s cannot move from %v to %v",
		ErrTransitionIsInvalid,
		sanitize(e.ParamName),
		sanitize(fmt.Sprintf("%v", e.From)),
		sanitize(fmt.Sprintf("%v", e.To)),
	)
}

func (e *TransitionIsInvalidError) Unwrap() error {
	return ErrTransitionIsInvalid
}

// OtpIsInvalidError reports a one-time code that does not match.
type OtpIsInvalidError struct {
	ParamName string
}

func NewOtpIsInvalidError(paramName string) *OtpIsInvalidError {
	return &OtpIsInvalidError{ParamName: paramName}
}

func (e *OtpIsInvalidError) Error() string {
	return fmt.Sprintf("%s: %s", ErrOtpIsInvalid, sanitize(e.ParamName))
}

func (e *OtpIsInvalidError) Unwrap() error {
	return ErrOtpIsInvalid
}
