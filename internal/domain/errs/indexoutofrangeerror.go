package errs

import "fmt"

type IndexOutOfRangeError struct {
	message string
}

func (e *IndexOutOfRangeError) Error() string {
	return e.message
}

func IndexOutOfRangeErrorf(format string, args ...any) *IndexOutOfRangeError {
	return &IndexOutOfRangeError{
		message: fmt.Sprintf(format, args...),
	}
}

var _ error = &IndexOutOfRangeError{}
