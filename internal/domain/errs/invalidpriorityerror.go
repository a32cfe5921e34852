package errs

import "fmt"

type InvalidPriorityError struct {
	message string
}

func (e *InvalidPriorityError) Error() string {
	return e.message
}

func InvalidPriorityErrorf(format string, args ...any) *InvalidPriorityError {
	return &InvalidPriorityError{
		message: fmt.Sprintf(format, args...),
	}
}

var _ error = &InvalidPriorityError{}
