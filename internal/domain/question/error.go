package question

import (
	"errors"
)

var (
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrNotFound           = errors.New("record not found")
	ErrBackendRejected    = errors.New("backend rejected request")
	ErrBackendUnavailable = errors.New("backend unavailable")
)

// BackendError carries a failure reported by (or on the way to) the record
// store. Kind is one of the sentinel errors above, so callers match it with
// errors.Is.
type BackendError struct {
	Kind    error
	Status  int
	Type    string
	Message string
}

func (e *BackendError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Kind.Error()
}

func (e *BackendError) Unwrap() error {
	return e.Kind
}
