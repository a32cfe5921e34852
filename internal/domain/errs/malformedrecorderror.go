package errs

import "fmt"

type MalformedRecordError struct {
	message string
}

func (e *MalformedRecordError) Error() string {
	return e.message
}

func MalformedRecordErrorf(format string, args ...any) *MalformedRecordError {
	return &MalformedRecordError{
		message: fmt.Sprintf(format, args...),
	}
}

var _ error = &MalformedRecordError{}
