// Package errs provides standardized error types for the marketplace service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for validation and for business rule violations:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: malformed input
//   - ObjectNotFoundError: a referenced entity does not exist
//   - ForbiddenError: the caller lacks the role or ownership for an operation
//   - ConflictError: a state precondition no longer holds (e.g. job already taken)
//   - TransitionIsInvalidError: a status change the state machine does not allow
//   - OtpIsInvalidError: a one-time code mismatch
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions (with a WithCause variant where a cause makes sense)
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is works through wrapping
//
// Transport adapters map sentinels to response codes; nothing in the core
// inspects error strings.
package errs
