package errs

import "fmt"

type EmptyTitleError struct {
	message string
}

func (e *EmptyTitleError) Error() string {
	return e.message
}

func EmptyTitleErrorf(format string, args ...any) *EmptyTitleError {
	return &EmptyTitleError{
		message: fmt.Sprintf(format, args...),
	}
}

var _ error = &EmptyTitleError{}
