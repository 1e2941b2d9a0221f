package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
)

// TransientError wraps a store-level conflict that is safe to retry, such as a
// deadlock between two concurrent SKU allocations. It implements the
// retry.RetryableError contract so retry.DoIfRetryable will re-run the
// operation instead of failing the request.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("transient store conflict: %v", e.Err)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// IsRetryable marks the error as transient for the retry package.
func (e *TransientError) IsRetryable() bool {
	return true
}
