package commands

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrVerifyOtpCommandIsNotConstructed = errors.New(
	"VerifyOtpCommand must be created via NewVerifyOtpCommand constructor",
)

// VerifyOtpCommand completes a started job when the worker presents the code
// the customer gave them on site.
type VerifyOtpCommand struct { //nolint:recvcheck //using for validation
	jobID    kernel.UUID
	callerID kernel.UUID
	otp      string

	guard guard.ConstructorGuard
}

// NewVerifyOtpCommand only checks that a code was supplied. A code of the
// wrong shape is reported as InvalidOtp by the aggregate, like any mismatch.
func NewVerifyOtpCommand(jobID, callerID kernel.UUID, otp string) (VerifyOtpCommand, error) {
	command := VerifyOtpCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setJobID(jobID),
		command.setCallerID(callerID),
		command.setOTP(otp),
	); err != nil {
		return VerifyOtpCommand{}, err
	}

	return command, nil
}

func (c VerifyOtpCommand) Validate() error {
	return c.guard.Validate(ErrVerifyOtpCommandIsNotConstructed)
}

func (c VerifyOtpCommand) JobID() kernel.UUID {
	return c.jobID
}

func (c VerifyOtpCommand) CallerID() kernel.UUID {
	return c.callerID
}

func (c VerifyOtpCommand) OTP() string {
	return c.otp
}

func (c *VerifyOtpCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *VerifyOtpCommand) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return err
	}

	c.callerID = callerID
	return nil
}

func (c *VerifyOtpCommand) setOTP(otp string) error {
	otp = strings.TrimSpace(otp)
	if otp == "" {
		return errs.NewValueIsRequiredError("otp")
	}

	c.otp = otp
	return nil
}
