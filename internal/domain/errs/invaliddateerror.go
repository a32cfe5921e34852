package errs

import "fmt"

type InvalidDateError struct {
	message string
}

func (e *InvalidDateError) Error() string {
	return e.message
}

func InvalidDateErrorf(format string, args ...any) *InvalidDateError {
	return &InvalidDateError{
		message: fmt.Sprintf(format, args...),
	}
}

var _ error = &InvalidDateError{}
