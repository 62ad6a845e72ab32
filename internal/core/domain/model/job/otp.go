package job

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"

	"marketplace/internal/pkg/errs"
)

// OTPLength is the number of decimal digits in a job code.
const OTPLength = 4

var otpSpace = big.NewInt(10_000)

// OTP is the code the customer reads out to the worker to prove the handoff.
// Codes are per job; equal codes on different jobs are fine.
type OTP struct {
	code string
}

// GenerateOTP draws a uniformly random 4-digit code, zero padded.
func GenerateOTP() (OTP, error) {
	n, err := rand.Int(rand.Reader, otpSpace)
	if err != nil {
		return OTP{}, fmt.Errorf("generate otp: %w", err)
	}
	return OTP{code: fmt.Sprintf("%0*d", OTPLength, n.Int64())}, nil
}

// RestoreOTP validates a persisted code.
func RestoreOTP(code string) (OTP, error) {
	if len(code) != OTPLength {
		return OTP{}, errs.NewValueIsInvalidErrorWithCause("otp", fmt.Errorf("must have %d digits", OTPLength))
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return OTP{}, errs.NewValueIsInvalidErrorWithCause("otp", fmt.Errorf("must contain digits only"))
		}
	}
	return OTP{code: code}, nil
}

// Matches compares in constant time.
func (o OTP) Matches(candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(o.code), []byte(candidate)) == 1
}

// String returns the code.
func (o OTP) String() string {
	return o.code
}

// Validate reports whether the code was generated or restored.
func (o OTP) Validate() error {
	if o.code == "" {
		return errs.NewValueIsRequiredError("otp")
	}
	return nil
}
