// Package apierror renders every API failure as {"error": ..., "details": ...}.
package apierror

import (
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"questiondesk/internal/domain/question"
)

// Error is the JSON error body. It implements huma.StatusError so handlers
// can return it directly.
type Error struct {
	status  int
	Label   string `json:"error" doc:"Short description of what failed"`
	Details string `json:"details" doc:"Underlying error message"`
}

func (e *Error) Error() string {
	if e.Details == "" {
		return e.Label
	}
	return e.Label + ": " + e.Details
}

func (e *Error) GetStatus() int {
	return e.status
}

func New(status int, label string, err error) *Error {
	e := &Error{status: status, Label: label}
	if err != nil {
		e.Details = message(err)
	}
	return e
}

// FromDomain maps a service error to a response: invalid input is the
// caller's fault (400), everything else is reported as a failure of the
// operation named by label (500).
func FromDomain(label string, err error) *Error {
	if errors.Is(err, question.ErrInvalidArgument) {
		return New(http.StatusBadRequest, "Invalid request", err)
	}
	return New(http.StatusInternalServerError, label, err)
}

// message prefers the backend's own wording over our wrapping.
func message(err error) string {
	var be *question.BackendError
	if errors.As(err, &be) {
		return be.Error()
	}
	return err.Error()
}

// Install makes huma use Error for the failures it detects itself
// (malformed JSON, schema violations). Schema violations become 400.
func Install() {
	huma.NewError = func(status int, msg string, errs ...error) huma.StatusError {
		if status == http.StatusUnprocessableEntity {
			status = http.StatusBadRequest
		}

		details := make([]string, 0, len(errs))
		for _, err := range errs {
			if err != nil {
				details = append(details, err.Error())
			}
		}

		return &Error{
			status:  status,
			Label:   msg,
			Details: strings.Join(details, "; "),
		}
	}
}
