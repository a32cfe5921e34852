package errs

import "fmt"

type EmptyCategoryError struct {
	message string
}

func (e *EmptyCategoryError) Error() string {
	return e.message
}

func EmptyCategoryErrorf(format string, args ...any) *EmptyCategoryError {
	return &EmptyCategoryError{
		message: fmt.Sprintf(format, args...),
	}
}

var _ error = &EmptyCategoryError{}
