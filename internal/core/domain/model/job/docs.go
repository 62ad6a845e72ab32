// Package job contains the Job aggregate: a bookable service engagement between a
// customer and the worker who accepts it.
//
// The aggregate owns its status and its one-time code. Every mutation goes
// through a method that checks the caller, the state machine and the OTP, and
// records a domain event describing what happened.
package job
