package registration

import (
	"errors"
	"fmt"
)

// ErrRulesNotAccepted is returned when the visitor did not tick the rules
// checkbox.  The row store is not contacted.
var ErrRulesNotAccepted = errors.New("rules not accepted")

// StoreError reports a failure at the row-store boundary: network, auth,
// quota or a timeout.  The visitor may retry; nothing was appended.
type StoreError struct {
	Op  string // operation that failed, e.g. "append"
	Err error  // underlying error
}

func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("row store: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("row store: %s", e.Op)
}

func (e *StoreError) Unwrap() error { return e.Err }

// IsStoreError reports whether err is (or wraps) a *StoreError.
func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}

// Outcome classifies the result of a submission for user feedback.
type Outcome string

const (
	Success            Outcome = "success"
	ValidationFailed   Outcome = "validation_failed"
	ExternalStoreError Outcome = "external_store_error"
)

// OutcomeOf maps an error returned by Submit to an Outcome.  Errors that
// are neither validation nor store failures are reported as store errors
// since they can only originate below the submitter.
func OutcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return Success
	case errors.Is(err, ErrRulesNotAccepted):
		return ValidationFailed
	default:
		return ExternalStoreError
	}
}
