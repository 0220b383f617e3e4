package errs

import (
	"errors"
)

var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("not found")
	ErrBookingCancelled  = errors.New("booking is cancelled")
	ErrDatesNotAvailable = errors.New("booking dates not available")
	ErrStaleVersion      = errors.New("booking updated by another transaction")
	ErrLockTimeout       = errors.New("lock acquisition timed out")
)

// Retryable reports whether an error is worth retrying after backoff.
// Only failures to acquire the range lock qualify: validation, availability
// and version conflicts would reproduce the same outcome.
func Retryable(err error) bool {
	return errors.Is(err, ErrLockTimeout)
}
