// Package guard holds ConstructorGuard, a marker that distinguishes values built
// through their constructor from zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller did not
// supply a more specific error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded into commands, queries and value objects that
// must only be created through a constructor. The zero value fails Validate.
//
// Example:
//
//	var ErrAcceptJobCommandIsNotConstructed = errors.New("AcceptJobCommand must be created via NewAcceptJobCommand")
//
//	type AcceptJobCommand struct {
//	    jobID kernel.UUID
//	    guard guard.ConstructorGuard
//	}
//
//	func (c AcceptJobCommand) Validate() error {
//	    return c.guard.Validate(ErrAcceptJobCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
