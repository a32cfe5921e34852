package errs

import "fmt"

type DuplicateTitleError struct {
	message string
}

func (e *DuplicateTitleError) Error() string {
	return e.message
}

func DuplicateTitleErrorf(format string, args ...any) *DuplicateTitleError {
	return &DuplicateTitleError{
		message: fmt.Sprintf(format, args...),
	}
}

var _ error = &DuplicateTitleError{}
