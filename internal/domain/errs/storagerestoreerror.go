package errs

import "fmt"

// StorageRestoreError reports a failed restore after a failed write. It wraps
// the original write error so neither failure is lost.
type StorageRestoreError struct {
	message string
	cause   error
}

func (e *StorageRestoreError) Error() string {
	if e.cause == nil {
		return e.message
	}
	return fmt.Sprintf("%s: %v", e.message, e.cause)
}

func (e *StorageRestoreError) Unwrap() error {
	return e.cause
}

func StorageRestoreErrorf(cause error, format string, args ...any) *StorageRestoreError {
	return &StorageRestoreError{
		message: fmt.Sprintf(format, args...),
		cause:   cause,
	}
}

var _ error = &StorageRestoreError{}
