package ecc

import "fmt"

// VerifyError reports why a signature was rejected.
// Malformed distinguishes inputs that never reached the curve equation
// (range violations, bad digests, bad public keys) from well-formed
// signatures that simply do not match.
type VerifyError struct {
	Reason    string
	Malformed bool
	Err       error
}

func (e *VerifyError) Error() string {
	kind := "invalid"
	if e.Malformed {
		kind = "malformed"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s signature: %s: %v", kind, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s signature: %s", kind, e.Reason)
}

// Unwrap exposes the underlying cause.
func (e *VerifyError) Unwrap() error {
	return e.Err
}

// Is reports ErrInvalidSignature for every VerifyError so callers that only
// care about pass/fail can match a single sentinel.
func (e *VerifyError) Is(target error) bool {
	return target == ErrInvalidSignature
}

// NewVerifyError creates a new VerifyError.
func NewVerifyError(reason string, malformed bool, err error) *VerifyError {
	return &VerifyError{
		Reason:    reason,
		Malformed: malformed,
		Err:       err,
	}
}
