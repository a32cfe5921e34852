package errs

import "fmt"

type StorageWriteError struct {
	message string
	cause   error
}

func (e *StorageWriteError) Error() string {
	if e.cause == nil {
		return e.message
	}
	return fmt.Sprintf("%s: %v", e.message, e.cause)
}

func (e *StorageWriteError) Unwrap() error {
	return e.cause
}

func StorageWriteErrorf(cause error, format string, args ...any) *StorageWriteError {
	return &StorageWriteError{
		message: fmt.Sprintf(format, args...),
		cause:   cause,
	}
}

var _ error = &StorageWriteError{}
